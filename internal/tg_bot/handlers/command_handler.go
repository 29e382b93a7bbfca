package handlers

import (
	"context"

	"namada_governance_bot/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type CommandHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable
}

type commandHandler struct {
	logger   *zap.SugaredLogger
	commands []commands.Command
}

func NewCommandHandler(logger *zap.SugaredLogger, commands []commands.Command) CommandHandler {
	return &commandHandler{
		logger:   logger,
		commands: commands,
	}
}

func (h *commandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message
	if message == nil {
		h.logger.Debug("received unknown updates")
		return []tgbotapi.Chattable{}
	}

	if !message.IsCommand() {
		h.logger.Debugw("ignoring non-command message", "chat_id", message.Chat.ID)
		return []tgbotapi.Chattable{}
	}

	command := message.Command()
	h.logger.Infow("received command", "command", command, "chat_id", message.Chat.ID)

	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			return handler.Handle(ctx, message.CommandArguments(), message)
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{}
}
