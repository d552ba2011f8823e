// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/closed-ballot/models"
)

// Verify checks a credential pair against an election's roster without
// touching anything. It lets a client confirm identity before showing
// the ballot; it is not a reservation, and CastVote re-validates from
// scratch.
func (s *Store) Verify(token, voterID, voterKey string) (models.VoterPublicView, error) {
	var view models.VoterPublicView

	var electionID, status string
	var startsAt, endsAt *time.Time
	err := s.db.QueryRow(`
		SELECT id, status, starts_at, ends_at FROM election WHERE voting_token = $1
	`, token).Scan(&electionID, &status, &startsAt, &endsAt)
	if err == sql.ErrNoRows {
		return view, ErrNotFound
	}
	if err != nil {
		return view, fmt.Errorf("failed to query election: %w", err)
	}

	if models.EffectiveStatus(time.Now(), startsAt, endsAt, status) != models.StatusActive {
		return view, ErrElectionClosed
	}

	// Exact, case-sensitive match on both halves of the credential.
	var name string
	var hasVoted bool
	err = s.db.QueryRow(`
		SELECT name, has_voted
		FROM voter
		WHERE election_id = $1 AND voter_id = $2 AND voter_key = $3
	`, electionID, voterID, voterKey).Scan(&name, &hasVoted)
	if err == sql.ErrNoRows {
		return view, ErrInvalidCredentials
	}
	if err != nil {
		return view, fmt.Errorf("failed to query voter: %w", err)
	}

	if hasVoted {
		return view, ErrAlreadyVoted
	}

	view.Name = name
	view.VoterID = voterID
	return view, nil
}

// CastVote redeems a credential for exactly one vote. The whole
// operation runs in a single transaction; the voted flag and the
// nominee counter move together or not at all.
//
// The race window is the check-then-act on has_voted. It is closed by
// a conditional update: the UPDATE only matches while has_voted is
// still FALSE, so of any number of concurrent casts for the same voter
// exactly one observes a row change and every other caller gets
// ErrAlreadyVoted. The commit, not the HTTP response, is the point at
// which the vote counts.
func (s *Store) CastVote(token, voterID, voterKey, nomineeID string) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var electionID, status string
	var startsAt, endsAt *time.Time
	err = tx.QueryRow(`
		SELECT id, status, starts_at, ends_at FROM election WHERE voting_token = $1
	`, token).Scan(&electionID, &status, &startsAt, &endsAt)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query election: %w", err)
	}

	if models.EffectiveStatus(time.Now(), startsAt, endsAt, status) != models.StatusActive {
		return "", ErrElectionClosed
	}

	var credentialOK bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM voter
			WHERE election_id = $1 AND voter_id = $2 AND voter_key = $3
		)
	`, electionID, voterID, voterKey).Scan(&credentialOK)
	if err != nil {
		return "", fmt.Errorf("failed to verify credentials: %w", err)
	}
	if !credentialOK {
		return "", ErrInvalidCredentials
	}

	// The nominee must belong to this election; an ID from another
	// election is rejected even if it exists.
	var nomineeName string
	err = tx.QueryRow(`
		SELECT name FROM nominee WHERE id = $1 AND election_id = $2
	`, nomineeID, electionID).Scan(&nomineeName)
	if err == sql.ErrNoRows {
		return "", ErrInvalidNominee
	}
	if err != nil {
		return "", fmt.Errorf("failed to query nominee: %w", err)
	}

	// Atomic check-and-flip. Zero rows affected means another cast got
	// here first; nothing has been mutated and the deferred rollback
	// discards the transaction.
	res, err := tx.Exec(`
		UPDATE voter
		SET has_voted = TRUE
		WHERE election_id = $1 AND voter_id = $2 AND voter_key = $3 AND has_voted = FALSE
	`, electionID, voterID, voterKey)
	if err != nil {
		return "", fmt.Errorf("failed to mark voter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return "", ErrAlreadyVoted
	}

	_, err = tx.Exec(`
		UPDATE nominee SET vote_count = vote_count + 1 WHERE id = $1 AND election_id = $2
	`, nomineeID, electionID)
	if err != nil {
		return "", fmt.Errorf("failed to increment tally: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit vote: %w", err)
	}

	return nomineeName, nil
}
