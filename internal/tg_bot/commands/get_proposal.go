package commands

import (
	"context"
	"strings"

	"namada_governance_bot/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	getProposalCommandName = "get"

	failedToParseArgumentMessage = "Failed to parse argument"
)

type getProposalCommand struct {
	epochs  EpochSource
	queries ProposalQueries
	logger  *zap.SugaredLogger
}

func NewGetProposalCommand(epochs EpochSource, queries ProposalQueries, logger *zap.SugaredLogger) Command {
	return &getProposalCommand{
		epochs:  epochs,
		queries: queries,
		logger:  logger,
	}
}

func (c *getProposalCommand) CanHandle(command string) bool {
	return command == getProposalCommandName
}

func (c *getProposalCommand) Handle(ctx context.Context, arguments string, message *tgbotapi.Message) []tgbotapi.Chattable {
	chatID := message.Chat.ID

	fields := strings.Fields(arguments)
	if len(fields) == 0 {
		return []tgbotapi.Chattable{extension.ErrorMessage(chatID, failedToParseArgumentMessage)}
	}

	epoch, err := c.epochs.GetCurrentEpoch(ctx)
	if err != nil {
		c.logger.Errorw("failed to get current epoch", "chat_id", chatID, "error", err)
		return []tgbotapi.Chattable{extension.ErrorMessage(chatID, failedToGetEpochMessage)}
	}

	return []tgbotapi.Chattable{extension.TextMessage(chatID, c.queries.GetByID(fields[0], epoch))}
}
