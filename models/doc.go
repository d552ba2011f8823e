// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateElectionRequest: title, description, nominees, voters, optional voting window
  - VerifyRequest: voter_id, voter_key
  - CastVoteRequest: voter_id, voter_key, nominee_id

# Response Types

Types for JSON responses:

  - CreateElectionResponse: election metadata, voting_url, generated credentials
  - VerifyResponse: message, voter public view
  - CastVoteResponse: message, voted_for
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Election: the aggregate - metadata, nominees, voter roster
  - Nominee: display name and running vote count
  - Voter: roster entry with credentials and voted flag
  - VoterPublicView: {name, voter_id} returned by verify

Voter keys, voter emails, and creator IDs carry `json:"-"` so they can
never leak through a serialized aggregate. The only outward path for a
voter key is CredentialPair in the create-election response.

# Query Projections

Read-only shapes derived from the aggregate:

  - PublicBallot: what the voting page sees (no counts, no roster)
  - Results: per-nominee tallies plus turnout counts
  - ElectionSummary: organizer dashboard line item

# Status

Stored status is "active" or "closed". EffectiveStatus derives the
status at a point in time from the optional voting window; it is a pure
function and never persisted.
*/
package models
