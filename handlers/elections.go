// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/closed-ballot/cliparse"
	"github.com/danielhkuo/closed-ballot/middleware"
	"github.com/danielhkuo/closed-ballot/models"
	"github.com/danielhkuo/closed-ballot/notify"
	"github.com/danielhkuo/closed-ballot/store"
)

type ElectionHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	notifier notify.Notifier
}

func NewElectionHandler(s *store.Store, cfg cliparse.Config, n notify.Notifier) *ElectionHandler {
	return &ElectionHandler{store: s, cfg: cfg, notifier: n}
}

// creatorID reads the organizer identity the admin gateway established.
// The gateway authenticates; this server trusts the header.
func creatorID(r *http.Request) string {
	return r.Header.Get("X-Creator-ID")
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	creator := creatorID(r)
	if creator == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Creator-ID header required")
		return
	}

	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	election, err := h.store.CreateElection(req.Title, req.Description, creator,
		req.Nominees, req.Voters, req.StartsAt, req.EndsAt)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	votingLink := h.cfg.VotingLink(election.VotingToken)

	// The election is committed; delivery failure must not undo that.
	if err := h.notifier.ElectionCreated(election, votingLink); err != nil {
		slog.Warn("credential delivery failed", "election_id", election.ID, "error", err)
	}

	// The response is the only time credentials leave the system in
	// bulk; the organizer is responsible for distributing them.
	credentials := make([]models.CredentialPair, 0, len(election.Voters))
	for _, v := range election.Voters {
		credentials = append(credentials, models.CredentialPair{
			Name:     v.Name,
			Email:    v.Email,
			VoterID:  v.VoterID,
			VoterKey: v.VoterKey,
		})
	}

	slog.Info("election created",
		"election_id", election.ID,
		"creator", creator,
		"nominees", len(election.Nominees),
		"voters", len(election.Voters),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		ID:          election.ID,
		Title:       election.Title,
		Description: election.Description,
		VotingURL:   votingLink,
		Status:      election.Status,
		Nominees:    election.Nominees,
		Credentials: credentials,
	})
}

// ListMyElections handles GET /elections/mine
func (h *ElectionHandler) ListMyElections(w http.ResponseWriter, r *http.Request) {
	creator := creatorID(r)
	if creator == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Creator-ID header required")
		return
	}

	summaries, err := h.store.Summary(creator)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	for i := range summaries {
		summaries[i].VotingURL = h.cfg.VotingLink(summaries[i].VotingToken)
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"elections": summaries,
	})
}

// DeleteElection handles DELETE /elections/{id}
func (h *ElectionHandler) DeleteElection(w http.ResponseWriter, r *http.Request) {
	creator := creatorID(r)
	if creator == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Creator-ID header required")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	if err := h.store.DeleteByID(id, creator); err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("election deleted", "election_id", id, "creator", creator)

	w.WriteHeader(http.StatusNoContent)
}

// GetResults handles GET /elections/{id}/results
// Publicly readable: aggregate tallies and turnout only.
func (h *ElectionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	results, err := h.store.Results(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"election": results,
	})
}
