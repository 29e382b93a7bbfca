package commands

import (
	"context"

	"namada_governance_bot/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const proposalsCommandName = "proposals"

type proposalsCommand struct {
	epochs  EpochSource
	queries ProposalQueries
	logger  *zap.SugaredLogger
}

func NewProposalsCommand(epochs EpochSource, queries ProposalQueries, logger *zap.SugaredLogger) Command {
	return &proposalsCommand{
		epochs:  epochs,
		queries: queries,
		logger:  logger,
	}
}

func (c *proposalsCommand) CanHandle(command string) bool {
	return command == proposalsCommandName
}

func (c *proposalsCommand) Handle(ctx context.Context, _ string, message *tgbotapi.Message) []tgbotapi.Chattable {
	return activeListing(ctx, c.epochs, c.queries, message.Chat.ID, c.logger)
}

func activeListing(
	ctx context.Context,
	epochs EpochSource,
	queries ProposalQueries,
	chatID int64,
	logger *zap.SugaredLogger,
) []tgbotapi.Chattable {
	epoch, err := epochs.GetCurrentEpoch(ctx)
	if err != nil {
		logger.Errorw("failed to get current epoch", "chat_id", chatID, "error", err)
		return []tgbotapi.Chattable{extension.ErrorMessage(chatID, failedToGetEpochMessage)}
	}

	return extension.TextMessages(chatID, queries.ListActive(epoch))
}
