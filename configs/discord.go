package configs

type Discord struct {
	Token        string `env:"DISCORD_ANNOUNCER_BOT_TOKEN"`
	ChannelID    string `env:"DISCORD_ANNOUNCEMENTS_CHANNEL_ID"`
	MessageLimit int    `env:"DISCORD_MESSAGE_LIMIT" envDefault:"2000"`
}

func (c Discord) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}
