package models

import "time"

// Election status constants
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// Request types

type VoterInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateElectionRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Nominees    []string     `json:"nominees"`
	Voters      []VoterInput `json:"voters"`
	StartsAt    *time.Time   `json:"starts_at,omitempty"`
	EndsAt      *time.Time   `json:"ends_at,omitempty"`
}

type VerifyRequest struct {
	VoterID  string `json:"voter_id"`
	VoterKey string `json:"voter_key"`
}

type CastVoteRequest struct {
	VoterID   string `json:"voter_id"`
	VoterKey  string `json:"voter_key"`
	NomineeID string `json:"nominee_id"`
}

// Response types

// CredentialPair is the one place a voter key crosses the wire: the
// create-election response hands the generated roster credentials back
// to the organizer for delivery.
type CredentialPair struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	VoterID  string `json:"voter_id"`
	VoterKey string `json:"voter_key"`
}

type CreateElectionResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	VotingURL   string           `json:"voting_url"`
	Status      string           `json:"status"`
	Nominees    []Nominee        `json:"nominees"`
	Credentials []CredentialPair `json:"credentials"`
}

type VerifyResponse struct {
	Message string          `json:"message"`
	Voter   VoterPublicView `json:"voter"`
}

type CastVoteResponse struct {
	Message  string `json:"message"`
	VotedFor string `json:"voted_for"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Election struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatorID   string     `json:"-"` // Never expose in JSON
	VotingToken string     `json:"voting_token"`
	Status      string     `json:"status"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Nominees    []Nominee  `json:"nominees"`
	Voters      []Voter    `json:"voters,omitempty"`
}

type Nominee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	VoteCount int    `json:"vote_count"`
}

type Voter struct {
	VoterID  string `json:"voter_id"`
	VoterKey string `json:"-"` // Never expose in JSON
	Name     string `json:"name"`
	Email    string `json:"-"` // Never expose in JSON
	HasVoted bool   `json:"has_voted"`
}

// VoterPublicView is what verify returns: enough for the client to
// greet the voter, nothing it did not already possess.
type VoterPublicView struct {
	Name    string `json:"name"`
	VoterID string `json:"voter_id"`
}

// Query projections

type BallotNominee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PublicBallot struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Nominees    []BallotNominee `json:"nominees"`
}

type NomineeTally struct {
	Name      string `json:"name"`
	VoteCount int    `json:"vote_count"`
}

type Results struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Nominees    []NomineeTally `json:"nominees"`
	TotalVoters int            `json:"total_voters"`
	VotedCount  int            `json:"voted_count"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ElectionSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VotingToken string    `json:"-"`
	VotingURL   string    `json:"voting_url"`
	VotersCount int       `json:"voters_count"`
	VotedCount  int       `json:"voted_count"`
	CreatedAt   time.Time `json:"created_at"`
}
