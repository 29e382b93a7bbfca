package handlers

import (
	"context"
	"testing"

	"namada_governance_bot/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingCommand struct {
	name      string
	arguments []string
}

func (c *recordingCommand) CanHandle(command string) bool {
	return command == c.name
}

func (c *recordingCommand) Handle(_ context.Context, arguments string, message *tgbotapi.Message) []tgbotapi.Chattable {
	c.arguments = append(c.arguments, arguments)
	return []tgbotapi.Chattable{tgbotapi.NewMessage(message.Chat.ID, c.name)}
}

func commandUpdate(text string, commandLength int) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 3, Type: "private"},
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: commandLength},
		},
	}}
}

func TestHandle_DispatchesToMatchingCommand(t *testing.T) {
	start := &recordingCommand{name: "start"}
	get := &recordingCommand{name: "get"}
	handler := NewCommandHandler(zap.NewNop().Sugar(), []commands.Command{start, get})

	responses := handler.Handle(context.Background(), commandUpdate("/get 12", 4))

	assert.Len(t, responses, 1)
	assert.Equal(t, []string{"12"}, get.arguments)
	assert.Empty(t, start.arguments)
}

func TestHandle_IgnoresUnknownCommands(t *testing.T) {
	start := &recordingCommand{name: "start"}
	handler := NewCommandHandler(zap.NewNop().Sugar(), []commands.Command{start})

	assert.Empty(t, handler.Handle(context.Background(), commandUpdate("/unsubscribe", 12)))
	assert.Empty(t, start.arguments)
}

func TestHandle_IgnoresPlainMessagesAndOtherUpdates(t *testing.T) {
	start := &recordingCommand{name: "start"}
	handler := NewCommandHandler(zap.NewNop().Sugar(), []commands.Command{start})

	plain := tgbotapi.Update{Message: &tgbotapi.Message{Text: "start", Chat: &tgbotapi.Chat{ID: 3}}}

	assert.Empty(t, handler.Handle(context.Background(), plain))
	assert.Empty(t, handler.Handle(context.Background(), tgbotapi.Update{}))
	assert.Empty(t, start.arguments)
}
