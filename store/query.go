// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/closed-ballot/models"
)

// PublicBallot is the voting-page projection: election text and the
// nominee list in display order. No voter data, no vote counts.
func (s *Store) PublicBallot(token string) (models.PublicBallot, error) {
	var ballot models.PublicBallot

	var electionID, status string
	var startsAt, endsAt *time.Time
	err := s.db.QueryRow(`
		SELECT id, title, description, status, starts_at, ends_at
		FROM election
		WHERE voting_token = $1
	`, token).Scan(&electionID, &ballot.Title, &ballot.Description, &status, &startsAt, &endsAt)
	if err == sql.ErrNoRows {
		return ballot, ErrNotFound
	}
	if err != nil {
		return ballot, fmt.Errorf("failed to query election: %w", err)
	}

	ballot.Status = models.EffectiveStatus(time.Now(), startsAt, endsAt, status)

	rows, err := s.db.Query(`
		SELECT id, name FROM nominee WHERE election_id = $1 ORDER BY position
	`, electionID)
	if err != nil {
		return ballot, fmt.Errorf("failed to query nominees: %w", err)
	}
	defer rows.Close()

	ballot.Nominees = []models.BallotNominee{}
	for rows.Next() {
		var n models.BallotNominee
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return ballot, fmt.Errorf("failed to scan nominee: %w", err)
		}
		ballot.Nominees = append(ballot.Nominees, n)
	}
	if err := rows.Err(); err != nil {
		return ballot, fmt.Errorf("failed to read nominees: %w", err)
	}

	return ballot, nil
}

// Results is the live tally projection: per-nominee counts plus
// turnout. Aggregate counts only - no per-voter identity leaves the
// store through this path.
func (s *Store) Results(electionID string) (models.Results, error) {
	var results models.Results

	tx, err := s.db.Begin()
	if err != nil {
		return results, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		SELECT title, description, created_at FROM election WHERE id = $1
	`, electionID).Scan(&results.Title, &results.Description, &results.CreatedAt)
	if err == sql.ErrNoRows {
		return results, ErrNotFound
	}
	if err != nil {
		return results, fmt.Errorf("failed to query election: %w", err)
	}

	rows, err := tx.Query(`
		SELECT name, vote_count FROM nominee WHERE election_id = $1 ORDER BY position
	`, electionID)
	if err != nil {
		return results, fmt.Errorf("failed to query tallies: %w", err)
	}
	defer rows.Close()

	results.Nominees = []models.NomineeTally{}
	for rows.Next() {
		var t models.NomineeTally
		if err := rows.Scan(&t.Name, &t.VoteCount); err != nil {
			return results, fmt.Errorf("failed to scan tally: %w", err)
		}
		results.Nominees = append(results.Nominees, t)
	}
	if err := rows.Err(); err != nil {
		return results, fmt.Errorf("failed to read tallies: %w", err)
	}

	err = tx.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN has_voted THEN 1 ELSE 0 END), 0)
		FROM voter
		WHERE election_id = $1
	`, electionID).Scan(&results.TotalVoters, &results.VotedCount)
	if err != nil {
		return results, fmt.Errorf("failed to count turnout: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return results, fmt.Errorf("failed to commit read: %w", err)
	}

	return results, nil
}

// Summary lists the creator's elections with turnout counts, newest
// first. VotingURL is left for the caller to fill in from its
// configured base URL.
func (s *Store) Summary(creatorID string) ([]models.ElectionSummary, error) {
	rows, err := s.db.Query(`
		SELECT e.id, e.title, e.description, e.voting_token, e.created_at,
		       (SELECT COUNT(*) FROM voter v WHERE v.election_id = e.id),
		       (SELECT COUNT(*) FROM voter v WHERE v.election_id = e.id AND v.has_voted)
		FROM election e
		WHERE e.creator_id = $1
		ORDER BY e.created_at DESC
	`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query elections: %w", err)
	}
	defer rows.Close()

	summaries := []models.ElectionSummary{}
	for rows.Next() {
		var sum models.ElectionSummary
		err := rows.Scan(&sum.ID, &sum.Title, &sum.Description, &sum.VotingToken,
			&sum.CreatedAt, &sum.VotersCount, &sum.VotedCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summaries: %w", err)
	}

	return summaries, nil
}
