// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// EffectiveStatus derives an election's status at a point in time.
// The stored status only ever holds "active" or "closed"; the voting
// window, if set, narrows it further. The result is never written back.
func EffectiveStatus(now time.Time, startsAt, endsAt *time.Time, stored string) string {
	if stored == StatusClosed {
		return StatusClosed
	}
	if startsAt != nil && now.Before(*startsAt) {
		return StatusClosed
	}
	if endsAt != nil && !now.Before(*endsAt) {
		return StatusClosed
	}
	return StatusActive
}

// IsOpen reports whether votes may be cast on the election at the
// given time.
func (e *Election) IsOpen(now time.Time) bool {
	return EffectiveStatus(now, e.StartsAt, e.EndsAt, e.Status) == StatusActive
}
