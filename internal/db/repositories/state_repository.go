package repositories

import (
	"context"

	"namada_governance_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type stateRepository struct {
	repository
}

type StateRepository interface {
	Load() (*models.State, error)
	Save(state *models.State) error
}

func NewStateRepository(db *pg.DB) StateRepository {
	return &stateRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *stateRepository) Load() (*models.State, error) {
	state := &models.State{}

	err := r.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		known := make([]models.KnownProposal, 0)
		if err := tx.Model(&known).OrderExpr("id ASC").Select(); err != nil {
			return err
		}

		proposals := make([]models.Proposal, 0)
		if err := tx.Model(&proposals).OrderExpr("id ASC").Select(); err != nil {
			return err
		}

		notified := make([]models.NotifiedProposal, 0)
		if err := tx.Model(&notified).OrderExpr("proposal_id ASC").Select(); err != nil {
			return err
		}

		subscribers := make([]models.Subscriber, 0)
		if err := tx.Model(&subscribers).OrderExpr("telegram_id ASC").Select(); err != nil {
			return err
		}

		for _, k := range known {
			state.KnownIDs = append(state.KnownIDs, k.ID)
		}
		state.Proposals = proposals
		for _, n := range notified {
			state.NotifiedIDs = append(state.NotifiedIDs, n.ProposalID)
		}
		for _, s := range subscribers {
			state.Subscribers = append(state.Subscribers, s.TelegramID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Save writes the whole state in one transaction. Every collection only ever
// grows, so rows that already exist are left untouched.
func (r *stateRepository) Save(state *models.State) error {
	return r.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		if len(state.KnownIDs) > 0 {
			known := make([]models.KnownProposal, 0, len(state.KnownIDs))
			for _, id := range state.KnownIDs {
				known = append(known, models.KnownProposal{ID: id})
			}
			if _, err := tx.Model(&known).OnConflict("DO NOTHING").Insert(); err != nil {
				return err
			}
		}

		if len(state.Proposals) > 0 {
			proposals := append([]models.Proposal(nil), state.Proposals...)
			if _, err := tx.Model(&proposals).OnConflict("DO NOTHING").Insert(); err != nil {
				return err
			}
		}

		if len(state.NotifiedIDs) > 0 {
			notified := make([]models.NotifiedProposal, 0, len(state.NotifiedIDs))
			for _, id := range state.NotifiedIDs {
				notified = append(notified, models.NotifiedProposal{ProposalID: id})
			}
			if _, err := tx.Model(&notified).OnConflict("DO NOTHING").Insert(); err != nil {
				return err
			}
		}

		if len(state.Subscribers) > 0 {
			subscribers := make([]models.Subscriber, 0, len(state.Subscribers))
			for _, id := range state.Subscribers {
				subscribers = append(subscribers, models.Subscriber{TelegramID: id})
			}
			if _, err := tx.Model(&subscribers).OnConflict("DO NOTHING").Insert(); err != nil {
				return err
			}
		}

		return nil
	})
}
