// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/closed-ballot/cliparse"
	"github.com/danielhkuo/closed-ballot/credential"
	"github.com/danielhkuo/closed-ballot/db"
	"github.com/danielhkuo/closed-ballot/models"
	"github.com/google/uuid"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. The pool is pinned to one connection so SQLite's single-writer
// model never surfaces as a busy error; concurrent requests serialize at
// the pool instead.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		BaseURL:      "http://localhost:3000",
	}
}

// CreateTestElection inserts an election row directly and returns its ID
// and voting token. status should be "active" or "closed".
func CreateTestElection(t *testing.T, conn *sql.DB, creatorID, status string) (electionID, votingToken string) {
	t.Helper()

	electionID = uuid.NewString()
	votingToken, err := credential.GenerateToken()
	if err != nil {
		t.Fatalf("Failed to generate voting token: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO election (id, title, description, creator_id, voting_token, status, created_at)
		VALUES ($1, 'Test Election', 'A test election', $2, $3, $4, $5)
	`, electionID, creatorID, votingToken, status, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	return electionID, votingToken
}

// AddTestNominee adds a nominee to an election and returns the nominee ID
func AddTestNominee(t *testing.T, conn *sql.DB, electionID, name string, position int) string {
	t.Helper()

	nomineeID, err := credential.GenerateID(6)
	if err != nil {
		t.Fatalf("Failed to generate nominee ID: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO nominee (id, election_id, name, position, vote_count)
		VALUES ($1, $2, $3, $4, 0)
	`, nomineeID, electionID, name, position)
	if err != nil {
		t.Fatalf("Failed to create test nominee: %v", err)
	}

	return nomineeID
}

// AddTestVoter enrolls a voter with fresh credentials and returns the pair
func AddTestVoter(t *testing.T, conn *sql.DB, electionID, name, email string) (voterID, voterKey string) {
	t.Helper()

	voterID, voterKey, err := credential.Generate()
	if err != nil {
		t.Fatalf("Failed to generate credentials: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO voter (election_id, voter_id, voter_key, name, email, has_voted)
		VALUES ($1, $2, $3, $4, $5, FALSE)
	`, electionID, voterID, voterKey, name, email)
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return voterID, voterKey
}

// TwoVoters is a convenience roster for the common two-voter scenario.
func TwoVoters() []models.VoterInput {
	return []models.VoterInput{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Grace", Email: "grace@example.com"},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CountVoted returns how many roster entries have voted.
func CountVoted(t *testing.T, conn *sql.DB, electionID string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM voter WHERE election_id = $1 AND has_voted
	`, electionID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count voted: %v", err)
	}
	return n
}

// SumVoteCounts returns the sum of all nominee counters for an election.
func SumVoteCounts(t *testing.T, conn *sql.DB, electionID string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`
		SELECT COALESCE(SUM(vote_count), 0) FROM nominee WHERE election_id = $1
	`, electionID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to sum vote counts: %v", err)
	}
	return n
}
