package commands

import (
	"context"

	"namada_governance_bot/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	startCommandName = "start"

	subscribedMessage = "Successfully subscribed for SE governance proposals"
)

type startCommand struct {
	subscriptions Subscriptions
	epochs        EpochSource
	queries       ProposalQueries
	logger        *zap.SugaredLogger
}

func NewStartCommand(
	subscriptions Subscriptions,
	epochs EpochSource,
	queries ProposalQueries,
	logger *zap.SugaredLogger,
) Command {
	return &startCommand{
		subscriptions: subscriptions,
		epochs:        epochs,
		queries:       queries,
		logger:        logger,
	}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

// Handle subscribes private chats only.
func (c *startCommand) Handle(ctx context.Context, _ string, message *tgbotapi.Message) []tgbotapi.Chattable {
	chatID := message.Chat.ID

	if !message.Chat.IsPrivate() {
		c.logger.Infow("ignoring start outside of a private chat", "chat_id", chatID, "chat_type", message.Chat.Type)
		return []tgbotapi.Chattable{}
	}

	if c.subscriptions.AddSubscriber(chatID) {
		c.logger.Infow("new subscriber", "chat_id", chatID)
		if err := c.subscriptions.Flush(); err != nil {
			c.logger.Errorw("failed to persist subscriber", "chat_id", chatID, "error", err)
		}
	}

	responses := []tgbotapi.Chattable{extension.TextMessage(chatID, subscribedMessage)}
	return append(responses, activeListing(ctx, c.epochs, c.queries, chatID, c.logger)...)
}
