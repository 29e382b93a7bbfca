package models

import "time"

type Subscriber struct {
	tableName struct{} `pg:"subscribers"`

	TelegramID   int64     `json:"telegram_id" pg:",pk"`
	SubscribedAt time.Time `json:"subscribed_at" pg:"default:now()"`
}
