// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

// Every store error reflects a caller-input problem and is terminal:
// nothing here is retried internally. Write contention inside CastVote
// resolves to either success or ErrAlreadyVoted, never to an error of
// its own.
var (
	ErrNotFound           = errors.New("election not found")
	ErrInvalidCredentials = errors.New("invalid voter credentials")
	ErrAlreadyVoted       = errors.New("voter has already voted")
	ErrInvalidNominee     = errors.New("invalid nominee for this election")
	ErrElectionClosed     = errors.New("election is not open for voting")
	ErrForbidden          = errors.New("not authorized for this election")
	ErrValidation         = errors.New("invalid election input")
	ErrConflict           = errors.New("could not generate a unique value")
)
