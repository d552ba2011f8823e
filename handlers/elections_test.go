// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/closed-ballot/models"
	"github.com/danielhkuo/closed-ballot/notify"
	"github.com/danielhkuo/closed-ballot/store"
	"github.com/danielhkuo/closed-ballot/testutil"
)

func newTestElectionHandler(t *testing.T) (*ElectionHandler, *store.Store) {
	t.Helper()

	s := store.New(testutil.SetupTestDB(t))
	cfg := testutil.GetTestConfig()
	return NewElectionHandler(s, cfg, &notify.Console{Out: io.Discard}), s
}

func TestCreateElection_HTTP(t *testing.T) {
	h, _ := newTestElectionHandler(t)

	req := testutil.MakeRequest("POST", "/elections", models.CreateElectionRequest{
		Title:       "Treasurer Election",
		Description: "Pick a treasurer",
		Nominees:    []string{"Alice", "Bob"},
		Voters:      testutil.TwoVoters(),
	}, map[string]string{"X-Creator-ID": "org-1"})
	w := httptest.NewRecorder()

	h.CreateElection(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateElectionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.ID == "" {
		t.Error("Expected an election ID")
	}
	if !strings.HasPrefix(resp.VotingURL, "http://localhost:3000/vote/") {
		t.Errorf("Expected voting URL under the configured base, got %q", resp.VotingURL)
	}
	if resp.Status != models.StatusActive {
		t.Errorf("Expected active status, got %q", resp.Status)
	}
	if len(resp.Nominees) != 2 {
		t.Errorf("Expected 2 nominees, got %d", len(resp.Nominees))
	}
	if len(resp.Credentials) != 2 {
		t.Fatalf("Expected 2 credential pairs, got %d", len(resp.Credentials))
	}
	for _, c := range resp.Credentials {
		if len(c.VoterID) != 8 || len(c.VoterKey) != 12 {
			t.Errorf("Malformed credential pair: %+v", c)
		}
	}
}

func TestCreateElectionRequiresCreator(t *testing.T) {
	h, _ := newTestElectionHandler(t)

	req := testutil.MakeRequest("POST", "/elections", models.CreateElectionRequest{
		Title:    "No owner",
		Nominees: []string{"Alice"},
	}, nil)
	w := httptest.NewRecorder()

	h.CreateElection(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestCreateElectionRejectsEmptyNominees(t *testing.T) {
	h, _ := newTestElectionHandler(t)

	req := testutil.MakeRequest("POST", "/elections", models.CreateElectionRequest{
		Title:    "No candidates",
		Nominees: []string{},
	}, map[string]string{"X-Creator-ID": "org-1"})
	w := httptest.NewRecorder()

	h.CreateElection(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCreateElectionInvalidJSON(t *testing.T) {
	h, _ := newTestElectionHandler(t)

	req := httptest.NewRequest("POST", "/elections", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Creator-ID", "org-1")
	w := httptest.NewRecorder()

	h.CreateElection(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListMyElections(t *testing.T) {
	h, s := newTestElectionHandler(t)

	if _, err := s.CreateElection("Mine", "", "org-1", []string{"Alice"}, testutil.TwoVoters(), nil, nil); err != nil {
		t.Fatalf("CreateElection failed: %v", err)
	}
	if _, err := s.CreateElection("Not mine", "", "org-2", []string{"Bob"}, nil, nil, nil); err != nil {
		t.Fatalf("CreateElection failed: %v", err)
	}

	req := testutil.MakeRequest("GET", "/elections/mine", nil,
		map[string]string{"X-Creator-ID": "org-1"})
	w := httptest.NewRecorder()

	h.ListMyElections(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp struct {
		Elections []models.ElectionSummary `json:"elections"`
	}
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Elections) != 1 {
		t.Fatalf("Expected 1 election, got %d", len(resp.Elections))
	}
	sum := resp.Elections[0]
	if sum.Title != "Mine" {
		t.Errorf("Expected own election, got %q", sum.Title)
	}
	if !strings.HasPrefix(sum.VotingURL, "http://localhost:3000/vote/") {
		t.Errorf("Expected filled voting URL, got %q", sum.VotingURL)
	}
	if sum.VotersCount != 2 || sum.VotedCount != 0 {
		t.Errorf("Expected 2 enrolled / 0 voted, got %d / %d", sum.VotersCount, sum.VotedCount)
	}
}

func TestListMyElectionsRequiresCreator(t *testing.T) {
	h, _ := newTestElectionHandler(t)

	req := testutil.MakeRequest("GET", "/elections/mine", nil, nil)
	w := httptest.NewRecorder()

	h.ListMyElections(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestDeleteElection_HTTP(t *testing.T) {
	h, s := newTestElectionHandler(t)

	election, err := s.CreateElection("Doomed", "", "org-1", []string{"Alice"}, nil, nil, nil)
	if err != nil {
		t.Fatalf("CreateElection failed: %v", err)
	}

	req := testutil.MakeRequest("DELETE", "/elections/"+election.ID, nil,
		map[string]string{"X-Creator-ID": "org-1"})
	req.SetPathValue("id", election.ID)
	w := httptest.NewRecorder()

	h.DeleteElection(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	if _, err := s.FindByID(election.ID); err != store.ErrNotFound {
		t.Errorf("Expected election to be gone, got %v", err)
	}
}

func TestDeleteElectionForbidden(t *testing.T) {
	h, s := newTestElectionHandler(t)

	election, err := s.CreateElection("Protected", "", "org-1", []string{"Alice"}, nil, nil, nil)
	if err != nil {
		t.Fatalf("CreateElection failed: %v", err)
	}

	req := testutil.MakeRequest("DELETE", "/elections/"+election.ID, nil,
		map[string]string{"X-Creator-ID": "org-2"})
	req.SetPathValue("id", election.ID)
	w := httptest.NewRecorder()

	h.DeleteElection(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)
}

func TestDeleteElectionNotFound(t *testing.T) {
	h, _ := newTestElectionHandler(t)

	req := testutil.MakeRequest("DELETE", "/elections/no-such-id", nil,
		map[string]string{"X-Creator-ID": "org-1"})
	req.SetPathValue("id", "no-such-id")
	w := httptest.NewRecorder()

	h.DeleteElection(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetResults_HTTP(t *testing.T) {
	h, s := newTestElectionHandler(t)

	election, err := s.CreateElection("Tallied", "", "org-1", []string{"Alice", "Bob"}, testutil.TwoVoters(), nil, nil)
	if err != nil {
		t.Fatalf("CreateElection failed: %v", err)
	}
	voter := election.Voters[0]
	if _, err := s.CastVote(election.VotingToken, voter.VoterID, voter.VoterKey, election.Nominees[1].ID); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	// Results are public; no creator header needed.
	req := testutil.MakeRequest("GET", "/elections/"+election.ID+"/results", nil, nil)
	req.SetPathValue("id", election.ID)
	w := httptest.NewRecorder()

	h.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp struct {
		Election models.Results `json:"election"`
	}
	testutil.AssertJSON(t, w, &resp)

	if resp.Election.Title != "Tallied" {
		t.Errorf("Expected results title, got %q", resp.Election.Title)
	}
	if len(resp.Election.Nominees) != 2 {
		t.Fatalf("Expected 2 tallies, got %d", len(resp.Election.Nominees))
	}
	if resp.Election.Nominees[1].VoteCount != 1 {
		t.Errorf("Expected tally 1 for Bob, got %d", resp.Election.Nominees[1].VoteCount)
	}
	if resp.Election.TotalVoters != 2 || resp.Election.VotedCount != 1 {
		t.Errorf("Expected 2 enrolled / 1 voted, got %d / %d",
			resp.Election.TotalVoters, resp.Election.VotedCount)
	}
}
