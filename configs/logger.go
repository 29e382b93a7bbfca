package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"namada-governance-bot"`
	URL     string `env:"LOGGER_URL"`
}
