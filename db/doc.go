// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles driver selection and database schema creation.

# Drivers

DriverName maps the configured database type to a registered driver:

	driver, err := db.DriverName(cfg.DatabaseType) // "postgres" or "sqlite"

Postgres uses github.com/lib/pq, SQLite uses modernc.org/sqlite (pure
Go, no cgo).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The DDL is written in the dialect subset both drivers accept.

# Tables

  - election: one row per election; unique voting_token is the public entry point
  - nominee: display name, insertion position, running vote_count
  - voter: roster entry keyed (election_id, voter_id), has_voted flag

# Relationships

	election 1──* nominee
	election 1──* voter

All foreign keys use ON DELETE CASCADE, so deleting an election removes
its roster and tallies as one unit.

# Invariant

For every election, SUM(nominee.vote_count) equals the number of voter
rows with has_voted = TRUE. The casting transaction in the store
package is the only writer of either side.
*/
package db
