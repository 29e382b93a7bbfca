package configs

import "time"

type Poll struct {
	Interval      time.Duration `env:"POLL_INTERVAL" envDefault:"60s"`
	FirstRunDelay time.Duration `env:"POLL_FIRST_RUN_DELAY" envDefault:"3s"`
}
