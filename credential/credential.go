// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package credential

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Byte widths for generated values. Hex encoding doubles them:
// voter IDs are 8 characters, voter keys 12, voting tokens 16.
const (
	voterIDBytes  = 4
	voterKeyBytes = 6
	tokenBytes    = 8
)

// Generate creates a one-time credential pair for a voter.
// Both values are uppercase hex so they can be read over the phone
// without case confusion.
func Generate() (voterID, voterKey string, err error) {
	voterID, err = randomHex(voterIDBytes)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate voter ID: %w", err)
	}
	voterKey, err = randomHex(voterKeyBytes)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate voter key: %w", err)
	}
	return strings.ToUpper(voterID), strings.ToUpper(voterKey), nil
}

// GenerateToken creates the public voting token for an election.
// Global uniqueness is enforced by the store, not here.
func GenerateToken() (string, error) {
	token, err := randomHex(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate voting token: %w", err)
	}
	return token, nil
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	return randomHex(byteLen)
}

func randomHex(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
