package discordbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"namada_governance_bot/internal/db/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	channels []string
	messages []string
	fail     map[int]error
}

func (s *fakeSession) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	call := len(s.messages)
	s.channels = append(s.channels, channelID)
	s.messages = append(s.messages, content)
	if err, ok := s.fail[call]; ok {
		return nil, err
	}
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func proposals(count int, title string) []models.Proposal {
	result := make([]models.Proposal, 0, count)
	for i := 1; i <= count; i++ {
		result = append(result, models.Proposal{
			ID:         int64(i),
			StartEpoch: 10,
			EndEpoch:   20,
			Content:    models.ProposalContent{Title: title},
		})
	}
	return result
}

func TestAnnounce_SingleChunk(t *testing.T) {
	session := &fakeSession{}
	announcer := newAnnouncer(session, "123", 2000, zap.NewNop().Sugar())

	require.NoError(t, announcer.Announce(context.Background(), proposals(2, "Upgrade")))

	require.Len(t, session.messages, 1)
	assert.Equal(t, []string{"123"}, session.channels)
	assert.Contains(t, session.messages[0], "Proposal #1 is up for voting now!")
	assert.Contains(t, session.messages[0], "Proposal #2 is up for voting now!")
}

func TestAnnounce_SplitsAtLimit(t *testing.T) {
	session := &fakeSession{}
	announcer := newAnnouncer(session, "123", 2000, zap.NewNop().Sugar())

	require.NoError(t, announcer.Announce(context.Background(), proposals(5, strings.Repeat("a", 700))))

	assert.Greater(t, len(session.messages), 1)
	for _, message := range session.messages {
		assert.LessOrEqual(t, len([]rune(message)), 2000)
	}
}

func TestAnnounce_ContinuesAfterFailure(t *testing.T) {
	session := &fakeSession{fail: map[int]error{0: errors.New("missing access")}}
	announcer := newAnnouncer(session, "123", 100, zap.NewNop().Sugar())

	err := announcer.Announce(context.Background(), proposals(2, strings.Repeat("a", 80)))

	assert.ErrorContains(t, err, "missing access")
	assert.Len(t, session.messages, 2)
}

func TestAnnounce_StopsWhenContextDone(t *testing.T) {
	session := &fakeSession{}
	announcer := newAnnouncer(session, "123", 2000, zap.NewNop().Sugar())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, announcer.Announce(ctx, proposals(1, "x")), context.Canceled)
	assert.Empty(t, session.messages)
}
