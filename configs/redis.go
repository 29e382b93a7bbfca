package configs

type Redis struct {
	URL    string `env:"REDIS_URL"`
	Stream string `env:"REDIS_PROPOSALS_STREAM" envDefault:"namada.governance.proposals"`
}

func (c Redis) Enabled() bool {
	return c.URL != ""
}
