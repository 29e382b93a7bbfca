package discordbot

import (
	"context"
	"errors"
	"fmt"

	"namada_governance_bot/configs"
	"namada_governance_bot/internal/db/models"
	"namada_governance_bot/internal/notification"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type channelSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer mirrors voting announcements into a Discord channel. It only uses
// the REST API, so the session is never opened.
type Announcer struct {
	session   channelSender
	channelID string
	limit     int
	logger    *zap.SugaredLogger
}

func NewAnnouncer(config configs.Discord, logger *zap.SugaredLogger) (*Announcer, error) {
	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return newAnnouncer(session, config.ChannelID, config.MessageLimit, logger), nil
}

func newAnnouncer(session channelSender, channelID string, limit int, logger *zap.SugaredLogger) *Announcer {
	return &Announcer{
		session:   session,
		channelID: channelID,
		limit:     limit,
		logger:    logger,
	}
}

func (a *Announcer) Name() string {
	return "discord"
}

func (a *Announcer) Announce(ctx context.Context, proposals []models.Proposal) error {
	items := make([]string, 0, len(proposals))
	for _, proposal := range proposals {
		items = append(items, notification.FormatNotification(proposal))
	}

	var errs []error
	chunks := notification.Batch(items, a.limit)
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := a.session.ChannelMessageSend(a.channelID, chunk, discordgo.WithContext(ctx)); err != nil {
			errs = append(errs, fmt.Errorf("chunk %d: %w", i, err))
			continue
		}
	}

	a.logger.Infow("proposals announced on discord", "channel_id", a.channelID, "chunks", len(chunks), "failed", len(errs))
	return errors.Join(errs...)
}
