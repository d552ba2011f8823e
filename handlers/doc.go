// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Closed Ballot API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - ElectionHandler: Election lifecycle (create, list, delete) and results
  - VotingHandler: Ballot retrieval, credential verification, vote casting

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(s, cfg, notifier)
	votingHandler := handlers.NewVotingHandler(s, cfg)

# Organizer Flow

Organizer endpoints trust the X-Creator-ID header; the admin gateway in
front of this server is responsible for authenticating it.

	POST   /elections              → CreateElection (returns credentials once)
	GET    /elections/mine         → ListMyElections
	DELETE /elections/{id}         → DeleteElection (creator only)
	GET    /elections/{id}/results → GetResults (public, live tally)

# Voting Flow

Voter endpoints are keyed only by possession of the voting token and a
credential pair:

	GET  /vote/{token}        → GetBallot
	POST /vote/{token}/verify → Verify
	POST /vote/{token}/cast   → CastVote

Handlers upper-case incoming credentials before calling the store; the
store compares exactly.

# Error Mapping

Store sentinel errors map to statuses in writeStoreError: not found →
404, invalid credentials / invalid nominee / validation → 400, already
voted / closed / conflict → 409, forbidden → 403.
*/
package handlers
