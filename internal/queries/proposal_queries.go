package queries

import (
	"strconv"
	"strings"

	"namada_governance_bot/internal/db/models"
	"namada_governance_bot/internal/notification"
)

type Store interface {
	ActiveAt(epoch int64) []models.Proposal
	FindByID(id int64) (models.Proposal, bool)
}

// ProposalQueries renders the read-only views offered to chat users.
type ProposalQueries struct {
	store Store
	limit int
}

func NewProposalQueries(store Store, limit int) *ProposalQueries {
	return &ProposalQueries{
		store: store,
		limit: limit,
	}
}

// ListActive returns the proposals active in epoch, split into messages that
// fit the transport limit.
func (q *ProposalQueries) ListActive(epoch int64) []string {
	active := q.store.ActiveAt(epoch)
	if len(active) == 0 {
		return []string{notification.NoActiveProposals(epoch)}
	}

	items := make([]string, 0, len(active)+1)
	items = append(items, notification.ActiveListingHeader(epoch))
	for _, proposal := range active {
		items = append(items, notification.FormatSummary(proposal, epoch))
	}

	return notification.Batch(items, q.limit)
}

// GetByID renders the details of the proposal with the given textual id.
func (q *ProposalQueries) GetByID(target string, epoch int64) string {
	id, err := strconv.ParseInt(strings.TrimSpace(target), 10, 64)
	if err != nil {
		return notification.ProposalNotFound
	}

	proposal, ok := q.store.FindByID(id)
	if !ok {
		return notification.ProposalNotFound
	}

	return notification.FormatDetails(proposal, epoch)
}
