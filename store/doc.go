// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the system of record for elections and the home of the
vote-casting engine.

# Election Store

CRUD over the election aggregate (metadata + nominees + voter roster):

	s := store.New(dbConn)
	election, err := s.CreateElection(title, desc, creatorID, nominees, voters, startsAt, endsAt)
	election, err = s.FindByToken(token)
	election, err = s.FindByID(id)
	list, err := s.FindByCreator(creatorID)
	err = s.DeleteByID(id, requesterID)

Creation generates every voter's credential pair and the election's
voting token, and persists the whole aggregate in one transaction.
Aggregate reads also run in one transaction so callers always see a
consistent snapshot.

# Casting Engine

	view, err := s.Verify(token, voterID, voterKey)
	name, err := s.CastVote(token, voterID, voterKey, nomineeID)

Verify is read-only. CastVote is the critical path: a single
transaction resolves the election, re-validates the credential, checks
the nominee, then performs the atomic check-and-flip

	UPDATE voter SET has_voted = TRUE
	WHERE election_id = $1 AND voter_id = $2 AND voter_key = $3
	  AND has_voted = FALSE

followed by the nominee counter increment. RowsAffected() == 0 means
the voter already voted and nothing is mutated. Under any interleaving
of concurrent casts, each voter's flag flips at most once and the sum
of nominee counters equals the number of flipped flags.

CastVote is deliberately not idempotent: a retry after success returns
ErrAlreadyVoted rather than double-counting.

# Query Layer

Read-only projections:

	ballot, err := s.PublicBallot(token)    // voting page, no counts
	results, err := s.Results(electionID)   // live tally + turnout
	list, err := s.Summary(creatorID)       // organizer dashboard

# Errors

All errors are sentinel values checked with errors.Is: ErrNotFound,
ErrInvalidCredentials, ErrAlreadyVoted, ErrInvalidNominee,
ErrElectionClosed, ErrForbidden, ErrValidation, ErrConflict.
*/
package store
