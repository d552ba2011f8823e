// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/closed-ballot/cliparse"
	"github.com/danielhkuo/closed-ballot/handlers"
	"github.com/danielhkuo/closed-ballot/middleware"
	"github.com/danielhkuo/closed-ballot/notify"
	"github.com/danielhkuo/closed-ballot/store"
)

func NewRouter(s *store.Store, cfg cliparse.Config, notifier notify.Notifier) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(s, cfg, notifier)
	votingHandler := handlers.NewVotingHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election management (organizer operations, via admin gateway)
	mux.HandleFunc("POST /elections", middleware.WithLogging(electionHandler.CreateElection))
	mux.HandleFunc("GET /elections/mine", middleware.WithLogging(electionHandler.ListMyElections))
	mux.HandleFunc("DELETE /elections/{id}", middleware.WithLogging(electionHandler.DeleteElection))

	// Results retrieval (public)
	mux.HandleFunc("GET /elections/{id}/results", middleware.WithLogging(electionHandler.GetResults))

	// Voting operations (public, keyed by token possession)
	mux.HandleFunc("GET /vote/{token}", middleware.WithLogging(votingHandler.GetBallot))
	mux.HandleFunc("POST /vote/{token}/verify", middleware.WithLogging(votingHandler.Verify))
	mux.HandleFunc("POST /vote/{token}/cast", middleware.WithLogging(votingHandler.CastVote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("closed-ballot API v1"))
	})

	return mux
}
