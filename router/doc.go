// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Closed Ballot API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(s, cfg, notifier)

# Endpoints

Health:

	GET /health

Election management (organizer, requires X-Creator-ID):

	POST   /elections      - Create election with nominees and roster
	GET    /elections/mine - List own elections with turnout
	DELETE /elections/{id} - Delete election (creator only)

Results (public):

	GET /elections/{id}/results - Live tally and turnout

Voting (public, uses the voting token):

	GET  /vote/{token}        - Ballot view
	POST /vote/{token}/verify - Verify credentials
	POST /vote/{token}/cast   - Cast a vote

# Handler Initialization

The router creates handler instances with dependency injection:

	electionHandler := handlers.NewElectionHandler(s, cfg, notifier)
	votingHandler := handlers.NewVotingHandler(s, cfg)

All handlers receive the election store and configuration.
*/
package router
