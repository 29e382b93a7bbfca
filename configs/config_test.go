package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGovernanceBotConfig_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("TELEGRAM_GOVERNANCE_BOT_TOKEN", "token")

	config, err := LoadGovernanceBotConfig()
	require.NoError(t, err)

	assert.True(t, config.App.IsDevEnvironment())
	assert.Equal(t, 4090, config.Bot.MessageLimit)
	assert.Equal(t, 60*time.Second, config.Poll.Interval)
	assert.Equal(t, 3*time.Second, config.Poll.FirstRunDelay)
	assert.Equal(t, "namadac", config.Node.Binary)
	assert.Equal(t, "http://127.0.0.1:26657", config.Node.RPCURL)
	assert.False(t, config.Discord.Enabled())
	assert.False(t, config.Redis.Enabled())
}

func TestLoadGovernanceBotConfig_MissingToken(t *testing.T) {
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("TELEGRAM_GOVERNANCE_BOT_TOKEN", "")

	_, err := LoadGovernanceBotConfig()
	assert.Error(t, err)
}

func TestLoadGovernanceBotConfig_InvalidMessageLimit(t *testing.T) {
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("TELEGRAM_GOVERNANCE_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_MESSAGE_LIMIT", "0")

	_, err := LoadGovernanceBotConfig()
	assert.Error(t, err)
}
