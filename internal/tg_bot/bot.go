package tgbot

import (
	"context"
	"fmt"
	"sync"

	"namada_governance_bot/configs"
	"namada_governance_bot/internal/tg_bot/extension"
	"namada_governance_bot/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Bot interface {
	Start(ctx context.Context)
	Send(chatID int64, text string) error
}

type bot struct {
	api     *tgbotapi.BotAPI
	config  configs.Bot
	handler handlers.CommandHandler
	logger  *zap.SugaredLogger
}

func NewBot(config configs.Bot, handler handlers.CommandHandler, logger *zap.SugaredLogger) (Bot, error) {
	logger.Info("creating bot")
	api, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = config.Debug
	logger.Infow("bot created", "username", api.Self.UserName)

	return &bot{
		api:     api,
		config:  config,
		handler: handler,
		logger:  logger,
	}, nil
}

// Start long-polls for updates until ctx is done. Updates are handled
// concurrently and Start returns only after every handler has finished.
func (b *bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.UpdateTimeout
	updates := b.api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("stopping bot")
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			wg.Add(1)
			go func(update tgbotapi.Update) {
				defer wg.Done()
				b.reply(ctx, update)
			}(update)
		}
	}
}

func (b *bot) reply(ctx context.Context, update tgbotapi.Update) {
	for _, message := range b.handler.Handle(ctx, update) {
		if _, err := b.api.Send(message); err != nil {
			b.logger.Errorw("failed to send message", "error", err)
		}
	}
}

func (b *bot) Send(chatID int64, text string) error {
	_, err := b.api.Send(extension.TextMessage(chatID, text))
	return err
}
