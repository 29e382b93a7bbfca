package configs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type GovernanceBotConfig struct {
	App     App
	Bot     Bot
	DB      DB
	Logger  Logger
	Node    Node
	Poll    Poll
	Discord Discord
	Redis   Redis
}

func LoadGovernanceBotConfig() (GovernanceBotConfig, error) {
	var config GovernanceBotConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return GovernanceBotConfig{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := env.Parse(&config); err != nil {
		return GovernanceBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Bot.MessageLimit <= 0 {
		return GovernanceBotConfig{}, fmt.Errorf("invalid telegram message limit: %d", config.Bot.MessageLimit)
	}

	return config, nil
}
