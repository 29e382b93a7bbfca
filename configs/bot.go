package configs

type Bot struct {
	Token         string `env:"TELEGRAM_GOVERNANCE_BOT_TOKEN,notEmpty"`
	UpdateTimeout int    `env:"TELEGRAM_BOT_UPDATE_TIMEOUT" envDefault:"60"`
	Debug         bool   `env:"TELEGRAM_BOT_DEBUG" envDefault:"false"`
	MessageLimit  int    `env:"TELEGRAM_MESSAGE_LIMIT" envDefault:"4090"`
}
