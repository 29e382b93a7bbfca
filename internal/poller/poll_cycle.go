package poller

import (
	"context"
	"errors"
	"fmt"

	"namada_governance_bot/internal/db/models"
	"namada_governance_bot/internal/notification"
	"namada_governance_bot/internal/services"

	"go.uber.org/zap"
)

type Store interface {
	Watermark() int64
	MergeNew(fetched []models.Proposal) []int64
	DueForNotification(epoch int64) []models.Proposal
	MarkNotified(ids ...int64)
	Subscribers() []int64
	Flush() error
}

// Sender delivers one text message to one chat.
type Sender interface {
	Send(chatID int64, text string) error
}

// Announcer publishes newly opened proposals somewhere other than the
// subscribers' chats.
type Announcer interface {
	Name() string
	Announce(ctx context.Context, proposals []models.Proposal) error
}

type DispatchError struct {
	ChatID int64
	Chunk  int
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to send chunk %d to %d: %v", e.Chunk, e.ChatID, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

type PollCycle struct {
	node       services.NodeService
	store      Store
	sender     Sender
	announcers []Announcer
	limit      int
	logger     *zap.SugaredLogger
}

func NewPollCycle(
	node services.NodeService,
	store Store,
	sender Sender,
	limit int,
	logger *zap.SugaredLogger,
	announcers ...Announcer,
) *PollCycle {
	return &PollCycle{
		node:       node,
		store:      store,
		sender:     sender,
		announcers: announcers,
		limit:      limit,
		logger:     logger,
	}
}

// Run performs one polling pass. Nothing in the store changes unless both the
// epoch and the new proposals were fetched.
func (c *PollCycle) Run(ctx context.Context) error {
	epoch, err := c.node.GetCurrentEpoch(ctx)
	if err != nil {
		c.logger.Errorw("failed to get current epoch", "error", err)
		return err
	}

	watermark := c.store.Watermark()
	raw, err := c.node.QueryProposals(ctx, watermark)
	if err != nil {
		c.logger.Errorw("failed to fetch proposals", "watermark", watermark, "error", err)
		return err
	}

	if err = ctx.Err(); err != nil {
		c.logger.Warnw("poll cycle abandoned", "error", err)
		return err
	}

	fetched := c.parse(raw)
	inserted := c.store.MergeNew(fetched)
	if len(inserted) > 0 {
		c.logger.Infow("new proposals stored", "ids", inserted, "epoch", epoch)
	}

	due := c.store.DueForNotification(epoch)
	if len(due) == 0 {
		if len(inserted) > 0 {
			c.flush()
		}
		return nil
	}

	items := make([]string, 0, len(due))
	ids := make([]int64, 0, len(due))
	for _, proposal := range due {
		c.logger.Infow("sending notifications for proposal", "proposal_id", proposal.ID, "epoch", epoch)
		items = append(items, notification.FormatNotification(proposal))
		ids = append(ids, proposal.ID)
	}
	chunks := notification.Batch(items, c.limit)

	// Marked before sending: a proposal is announced at most once even if
	// delivery fails.
	c.store.MarkNotified(ids...)
	c.flush()

	c.dispatch(chunks)
	c.announce(ctx, due)

	return nil
}

func (c *PollCycle) parse(raw []models.RawProposal) []models.Proposal {
	proposals := make([]models.Proposal, 0, len(raw))

	for _, record := range raw {
		proposal, err := record.Parse()
		if err != nil {
			var malformed *models.MalformedRecordError
			if errors.As(err, &malformed) {
				c.logger.Errorw("skipping malformed proposal", "field", malformed.Field, "record", record, "error", err)
			} else {
				c.logger.Errorw("skipping proposal", "record", record, "error", err)
			}
			continue
		}

		proposals = append(proposals, proposal)
	}

	return proposals
}

func (c *PollCycle) dispatch(chunks []string) {
	subscribers := c.store.Subscribers()
	failed := 0

	for _, chatID := range subscribers {
		for i, chunk := range chunks {
			if err := c.sender.Send(chatID, chunk); err != nil {
				failed++
				c.logger.Errorw("failed to send notification", "error", &DispatchError{ChatID: chatID, Chunk: i, Err: err})
			}
		}
	}

	c.logger.Infow("notifications dispatched", "subscribers", len(subscribers), "chunks", len(chunks), "failed", failed)
}

func (c *PollCycle) announce(ctx context.Context, proposals []models.Proposal) {
	for _, announcer := range c.announcers {
		if err := announcer.Announce(ctx, proposals); err != nil {
			c.logger.Errorw("failed to announce proposals", "announcer", announcer.Name(), "error", err)
		}
	}
}

func (c *PollCycle) flush() {
	if err := c.store.Flush(); err != nil {
		c.logger.Errorw("failed to persist state", "error", err)
	}
}
