// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/closed-ballot/models"
)

// Notifier delivers freshly generated voter credentials. Delivery is a
// side channel: a failed notification never fails election creation.
type Notifier interface {
	ElectionCreated(election *models.Election, votingLink string) error
}

// Console writes credential blocks to a writer, one per voter. It
// stands in for a real mail sender during development and testing.
type Console struct {
	Out io.Writer
}

func NewConsole() *Console {
	return &Console{Out: os.Stdout}
}

func (c *Console) ElectionCreated(election *models.Election, votingLink string) error {
	slog.Info("delivering voter credentials",
		"election_id", election.ID,
		"roster_size", humanize.Comma(int64(len(election.Voters))),
	)

	fmt.Fprintf(c.Out, "Election created: %s\n", election.Title)
	fmt.Fprintf(c.Out, "Voting link: %s\n\n", votingLink)

	for _, v := range election.Voters {
		fmt.Fprintf(c.Out, "========================================\n")
		fmt.Fprintf(c.Out, "VOTER CREDENTIALS for %s\n", election.Title)
		fmt.Fprintf(c.Out, "========================================\n")
		fmt.Fprintf(c.Out, "Name:      %s\n", v.Name)
		fmt.Fprintf(c.Out, "Email:     %s\n", v.Email)
		fmt.Fprintf(c.Out, "Voter ID:  %s\n", v.VoterID)
		fmt.Fprintf(c.Out, "Voter Key: %s\n", v.VoterKey)
		fmt.Fprintf(c.Out, "========================================\n\n")
	}

	return nil
}
