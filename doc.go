// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Closed Ballot API server.

Closed Ballot runs closed-roster elections: an organizer defines
nominees and a fixed voter roster, every voter receives a one-time
(voter ID, voter key) credential pair, and each credential can be
redeemed for exactly one vote. Tallies and turnout are queryable live.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run main.go

Or with flags:

	go run main.go -p 3318 -d ballots.db -t sqlite

A .env file in the working directory is loaded at startup if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 3318)
  - BASE_URL (-base-url): public base URL used in voting links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: the system of record and the vote-casting engine
  - handlers: HTTP request handlers (elections, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the election aggregate
  - credential: voter credential and voting token generation
  - notify: credential delivery (console placeholder)
  - db: driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
