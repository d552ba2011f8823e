// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"testing"
	"time"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name     string
		startsAt *time.Time
		endsAt   *time.Time
		stored   string
		want     string
	}{
		{"active no window", nil, nil, StatusActive, StatusActive},
		{"stored closed wins", nil, nil, StatusClosed, StatusClosed},
		{"stored closed wins over open window", &before, &after, StatusClosed, StatusClosed},
		{"before start", &after, nil, StatusActive, StatusClosed},
		{"after end", nil, &before, StatusActive, StatusClosed},
		{"inside window", &before, &after, StatusActive, StatusActive},
		{"exactly at end", nil, &now, StatusActive, StatusClosed},
		{"exactly at start", &now, nil, StatusActive, StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveStatus(now, tt.startsAt, tt.endsAt, tt.stored)
			if got != tt.want {
				t.Errorf("EffectiveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElectionIsOpen(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	e := Election{Status: StatusActive}
	if !e.IsOpen(now) {
		t.Error("active election with no window should be open")
	}

	e.EndsAt = &past
	if e.IsOpen(now) {
		t.Error("election past its end should not be open")
	}
}
