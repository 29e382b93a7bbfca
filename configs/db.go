package configs

type DB struct {
	URL           string `env:"DB_URL"`
	MigrationsDir string `env:"DB_MIGRATIONS_DIR" envDefault:"migrations"`
	StateFile     string `env:"STATE_FILE" envDefault:"data/state.json"`
}
