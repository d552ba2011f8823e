// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// DriverName maps a configured database type to its database/sql
// driver name. Supported types are "postgres" (lib/pq) and "sqlite"
// (modernc.org/sqlite).
func DriverName(databaseType string) (string, error) {
	switch databaseType {
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type: %q", databaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to
// the subset both Postgres and SQLite accept: no server-side time
// defaults, timestamps always written by the application.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Elections
CREATE TABLE IF NOT EXISTS election (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    creator_id TEXT NOT NULL,
    voting_token TEXT NOT NULL UNIQUE,
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'closed')),
    starts_at TIMESTAMP,
    ends_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_election_voting_token ON election(voting_token);
CREATE INDEX IF NOT EXISTS idx_election_creator ON election(creator_id);

-- Nominees
CREATE TABLE IF NOT EXISTS nominee (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    vote_count INTEGER NOT NULL DEFAULT 0 CHECK (vote_count >= 0)
);

CREATE INDEX IF NOT EXISTS idx_nominee_election_id ON nominee(election_id);

-- Voter roster
CREATE TABLE IF NOT EXISTS voter (
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    voter_key TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    PRIMARY KEY (election_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_voter_election_id ON voter(election_id);
`
