// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/closed-ballot/cliparse"
	"github.com/danielhkuo/closed-ballot/middleware"
	"github.com/danielhkuo/closed-ballot/models"
	"github.com/danielhkuo/closed-ballot/store"
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(s *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: s, cfg: cfg}
}

// GetBallot handles GET /vote/{token}
// Returns the voting-page view: election text and nominees, no voter
// data, no counts.
func (h *VotingHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voting token is required")
		return
	}

	ballot, err := h.store.PublicBallot(token)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"election": ballot,
	})
}

// Verify handles POST /vote/{token}/verify
// Read-only credential check before the ballot is presented. Not a
// reservation: casting re-validates everything.
func (h *VotingHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voting token is required")
		return
	}

	var req models.VerifyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.VoterID == "" || req.VoterKey == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id and voter_key are required")
		return
	}

	// Credentials are issued uppercase; the store compares exactly, so
	// normalize here.
	voter, err := h.store.Verify(token, strings.ToUpper(req.VoterID), strings.ToUpper(req.VoterKey))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VerifyResponse{
		Message: "Voter verified successfully",
		Voter:   voter,
	})
}

// CastVote handles POST /vote/{token}/cast
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voting token is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.VoterID == "" || req.VoterKey == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id and voter_key are required")
		return
	}
	if req.NomineeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nominee_id is required")
		return
	}

	votedFor, err := h.store.CastVote(token,
		strings.ToUpper(req.VoterID), strings.ToUpper(req.VoterKey), req.NomineeID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	// No voter identity here: logging who picked whom would create the
	// ballot-secrecy leak every other surface strips out.
	slog.Info("vote cast", "token", token)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Message:  "Vote cast successfully",
		VotedFor: votedFor,
	})
}
