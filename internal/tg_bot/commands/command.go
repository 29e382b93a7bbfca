package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const failedToGetEpochMessage = "Failed to get current epoch"

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, arguments string, message *tgbotapi.Message) []tgbotapi.Chattable
}

type EpochSource interface {
	GetCurrentEpoch(ctx context.Context) (int64, error)
}

type ProposalQueries interface {
	ListActive(epoch int64) []string
	GetByID(target string, epoch int64) string
}

type Subscriptions interface {
	AddSubscriber(telegramID int64) bool
	Flush() error
}
