// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/closed-ballot/middleware"
	"github.com/danielhkuo/closed-ballot/store"
)

// writeStoreError maps store sentinel errors to HTTP statuses. The
// message names the failing input specifically so clients can tell a
// bad credential from a missing election, without exposing anyone
// else's data.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
	case errors.Is(err, store.ErrInvalidCredentials):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid voter credentials")
	case errors.Is(err, store.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted in this election")
	case errors.Is(err, store.ErrInvalidNominee):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid nominee selected")
	case errors.Is(err, store.ErrElectionClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "Election is not open for voting")
	case errors.Is(err, store.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Not authorized for this election")
	case errors.Is(err, store.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
