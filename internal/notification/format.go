package notification

import (
	"fmt"
	"strings"

	"namada_governance_bot/internal/db/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ProposalNotFound = "Proposal not found"

	activeMark = "(Active)"
)

// FormatNotification renders the announcement sent when voting opens.
func FormatNotification(proposal models.Proposal) string {
	return fmt.Sprintf(
		"Proposal #%d is up for voting now!\nTitle:\n%s\n\nVoting ends on start of epoch %d\n\n",
		proposal.ID,
		proposal.Content.Title,
		proposal.VotingEndsAt(),
	)
}

// FormatSummary renders the one line listing entry for a proposal.
func FormatSummary(proposal models.Proposal, epoch int64) string {
	return fmt.Sprintf(
		"#%d (ends on start of epoch %d): %s\n\n",
		proposal.ID,
		proposal.VotingEndsAt(),
		title(proposal, epoch),
	)
}

func FormatDetails(proposal models.Proposal, epoch int64) string {
	var text strings.Builder

	fmt.Fprintf(&text, "Proposal #%d\nTitle:\n%s\n\n", proposal.ID, title(proposal, epoch))
	fmt.Fprintf(&text, "Type: %s\n\n", proposalType(proposal.Type))
	writeSection(&text, "Abstract", proposal.Content.Abstract)
	writeSection(&text, "Motivation", proposal.Content.Motivation)
	writeSection(&text, "Details", proposal.Content.Details)
	fmt.Fprintf(&text, "Author:\n%s\n\n", proposal.Author)
	writeSection(&text, "Authors", proposal.Content.Authors)
	writeSection(&text, "Discussion", proposal.Content.Discussion)
	writeSection(&text, "License", proposal.Content.License)
	fmt.Fprintf(&text, "Voting period: epochs %d-%d\n", proposal.StartEpoch, proposal.EndEpoch)
	fmt.Fprintf(&text, "Ends on start of epoch %d\n\n", proposal.VotingEndsAt())

	return text.String()
}

func ActiveListingHeader(epoch int64) string {
	return fmt.Sprintf("Current epoch: %d; Active proposals:\n\n", epoch)
}

func NoActiveProposals(epoch int64) string {
	return fmt.Sprintf("There are no active proposals in the current (%d) epoch", epoch)
}

func title(proposal models.Proposal, epoch int64) string {
	if proposal.ActiveAt(epoch) {
		return proposal.Content.Title + activeMark
	}
	return proposal.Content.Title
}

// A Caser keeps state between calls, so a new one is made per use.
func proposalType(value string) string {
	return cases.Title(language.English, cases.NoLower).String(value)
}

func writeSection(text *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(text, "%s:\n%s\n\n", name, value)
}
