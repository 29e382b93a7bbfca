package extension

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Something went wrong, please try again")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

// TextMessage builds a plain text message. Proposal texts are full of links,
// so previews are turned off.
func TextMessage(chatID int64, text string) tgbotapi.MessageConfig {
	message := tgbotapi.NewMessage(chatID, text)
	message.DisableWebPagePreview = true
	return message
}

func TextMessages(chatID int64, texts []string) []tgbotapi.Chattable {
	messages := make([]tgbotapi.Chattable, 0, len(texts))
	for _, text := range texts {
		messages = append(messages, TextMessage(chatID, text))
	}
	return messages
}
