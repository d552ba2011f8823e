// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/closed-ballot/credential"
	"github.com/danielhkuo/closed-ballot/models"
)

// Retry budgets for random-value generation. Collisions at these byte
// widths are vanishingly rare; exhausting the budget surfaces as
// ErrConflict rather than looping forever.
const (
	tokenRetries      = 5
	credentialRetries = 5
)

// Generation goes through vars so tests can force collisions.
var (
	generateCredentials = credential.Generate
	generateVotingToken = credential.GenerateToken
)

// Store owns all election state. Elections, nominees, and voters are
// only ever read or written through it.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateElection persists a complete election aggregate: metadata, the
// nominee list in display order, and a voter roster with freshly
// generated credentials. Everything happens in one transaction - a
// failed creation leaves no partial roster behind.
func (s *Store) CreateElection(title, description, creatorID string, nominees []string, voters []models.VoterInput, startsAt, endsAt *time.Time) (*models.Election, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(nominees) == 0 {
		return nil, fmt.Errorf("%w: at least one nominee is required", ErrValidation)
	}
	for _, name := range nominees {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: nominee name cannot be empty", ErrValidation)
		}
	}
	for _, v := range voters {
		if strings.TrimSpace(v.Email) == "" {
			return nil, fmt.Errorf("%w: voter email cannot be empty", ErrValidation)
		}
	}
	if startsAt != nil && endsAt != nil && !endsAt.After(*startsAt) {
		return nil, fmt.Errorf("%w: voting window must end after it starts", ErrValidation)
	}

	token, err := s.uniqueToken()
	if err != nil {
		return nil, err
	}

	election := &models.Election{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
		VotingToken: token,
		Status:      models.StatusActive,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		CreatedAt:   time.Now().UTC(),
	}

	for _, name := range nominees {
		nomineeID, err := credential.GenerateID(6)
		if err != nil {
			return nil, fmt.Errorf("failed to generate nominee ID: %w", err)
		}
		election.Nominees = append(election.Nominees, models.Nominee{
			ID:   nomineeID,
			Name: name,
		})
	}

	roster, err := generateRoster(voters)
	if err != nil {
		return nil, err
	}
	election.Voters = roster

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO election (id, title, description, creator_id, voting_token, status, starts_at, ends_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, election.ID, election.Title, election.Description, election.CreatorID,
		election.VotingToken, election.Status, election.StartsAt, election.EndsAt, election.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: voting token collided", ErrConflict)
		}
		return nil, fmt.Errorf("failed to insert election: %w", err)
	}

	for i, n := range election.Nominees {
		_, err = tx.Exec(`
			INSERT INTO nominee (id, election_id, name, position, vote_count)
			VALUES ($1, $2, $3, $4, 0)
		`, n.ID, election.ID, n.Name, i)
		if err != nil {
			return nil, fmt.Errorf("failed to insert nominee: %w", err)
		}
	}

	for _, v := range election.Voters {
		_, err = tx.Exec(`
			INSERT INTO voter (election_id, voter_id, voter_key, name, email, has_voted)
			VALUES ($1, $2, $3, $4, $5, FALSE)
		`, election.ID, v.VoterID, v.VoterKey, v.Name, v.Email)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("%w: voter ID collided", ErrConflict)
			}
			return nil, fmt.Errorf("failed to insert voter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit election: %w", err)
	}

	return election, nil
}

// generateRoster produces credential pairs for every roster entry,
// regenerating on voter-ID collision within the roster. The store
// enforces per-election voter_id uniqueness, so a silent collision
// would otherwise fail the whole creation.
func generateRoster(voters []models.VoterInput) ([]models.Voter, error) {
	roster := make([]models.Voter, 0, len(voters))
	seen := make(map[string]bool, len(voters))

	for _, v := range voters {
		var voterID, voterKey string
		var err error
		for attempt := 0; ; attempt++ {
			voterID, voterKey, err = generateCredentials()
			if err != nil {
				return nil, fmt.Errorf("failed to generate credentials: %w", err)
			}
			if !seen[voterID] {
				break
			}
			if attempt+1 >= credentialRetries {
				return nil, fmt.Errorf("%w: voter ID space exhausted", ErrConflict)
			}
		}
		seen[voterID] = true

		roster = append(roster, models.Voter{
			VoterID:  voterID,
			VoterKey: voterKey,
			Name:     v.Name,
			Email:    v.Email,
			HasVoted: false,
		})
	}

	return roster, nil
}

// uniqueToken generates a voting token and retries on global collision.
// The UNIQUE constraint on election.voting_token is the backstop for
// the check-then-insert window.
func (s *Store) uniqueToken() (string, error) {
	for attempt := 0; attempt < tokenRetries; attempt++ {
		token, err := generateVotingToken()
		if err != nil {
			return "", fmt.Errorf("failed to generate voting token: %w", err)
		}

		var exists bool
		err = s.db.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM election WHERE voting_token = $1)
		`, token).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("failed to check token uniqueness: %w", err)
		}
		if !exists {
			return token, nil
		}
	}
	return "", fmt.Errorf("%w: voting token space exhausted", ErrConflict)
}

// FindByToken loads the full aggregate identified by its public voting
// token.
func (s *Store) FindByToken(token string) (*models.Election, error) {
	return s.loadElection("voting_token", token)
}

// FindByID loads the full aggregate by election ID.
func (s *Store) FindByID(id string) (*models.Election, error) {
	return s.loadElection("id", id)
}

// loadElection reads an election with its nominees and roster inside a
// single transaction, so the caller sees one consistent snapshot and
// never a partially applied vote.
func (s *Store) loadElection(column, value string) (*models.Election, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var e models.Election
	err = tx.QueryRow(`
		SELECT id, title, description, creator_id, voting_token, status, starts_at, ends_at, created_at
		FROM election
		WHERE `+column+` = $1
	`, value).Scan(
		&e.ID, &e.Title, &e.Description, &e.CreatorID, &e.VotingToken,
		&e.Status, &e.StartsAt, &e.EndsAt, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query election: %w", err)
	}

	rows, err := tx.Query(`
		SELECT id, name, vote_count
		FROM nominee
		WHERE election_id = $1
		ORDER BY position
	`, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query nominees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n models.Nominee
		if err := rows.Scan(&n.ID, &n.Name, &n.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan nominee: %w", err)
		}
		e.Nominees = append(e.Nominees, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nominees: %w", err)
	}

	voterRows, err := tx.Query(`
		SELECT voter_id, voter_key, name, email, has_voted
		FROM voter
		WHERE election_id = $1
		ORDER BY voter_id
	`, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer voterRows.Close()

	for voterRows.Next() {
		var v models.Voter
		if err := voterRows.Scan(&v.VoterID, &v.VoterKey, &v.Name, &v.Email, &v.HasVoted); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		e.Voters = append(e.Voters, v)
	}
	if err := voterRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read voters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit read: %w", err)
	}

	return &e, nil
}

// FindByCreator returns the creator's elections, newest first, without
// rosters.
func (s *Store) FindByCreator(creatorID string) ([]models.Election, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, creator_id, voting_token, status, starts_at, ends_at, created_at
		FROM election
		WHERE creator_id = $1
		ORDER BY created_at DESC
	`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query elections: %w", err)
	}
	defer rows.Close()

	elections := []models.Election{}
	for rows.Next() {
		var e models.Election
		err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.CreatorID, &e.VotingToken,
			&e.Status, &e.StartsAt, &e.EndsAt, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read elections: %w", err)
	}

	return elections, nil
}

// DeleteByID removes an election and its embedded roster and tallies as
// one unit. Only the creator may delete.
func (s *Store) DeleteByID(id, requesterID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var creatorID string
	err = tx.QueryRow(`SELECT creator_id FROM election WHERE id = $1`, id).Scan(&creatorID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query election: %w", err)
	}

	if creatorID != requesterID {
		return ErrForbidden
	}

	// Children removed explicitly rather than leaning on CASCADE, which
	// SQLite only honors with foreign keys enabled.
	for _, stmt := range []string{
		`DELETE FROM voter WHERE election_id = $1`,
		`DELETE FROM nominee WHERE election_id = $1`,
		`DELETE FROM election WHERE id = $1`,
	} {
		if _, err := tx.Exec(stmt, id); err != nil {
			return fmt.Errorf("failed to delete election: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}

// isUniqueViolation detects unique-constraint errors from either
// driver by message. Neither driver exports a typed error for this.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
