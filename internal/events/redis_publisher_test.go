package events

import (
	"context"
	"errors"
	"testing"

	"namada_governance_bot/configs"
	"namada_governance_bot/internal/db/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStreamClient struct {
	added  []*redis.XAddArgs
	err    error
	closed bool
}

func (c *fakeStreamClient) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	c.added = append(c.added, a)
	return redis.NewStringResult("1700000000000-0", c.err)
}

func (c *fakeStreamClient) Close() error {
	c.closed = true
	return nil
}

func opened() models.Proposal {
	return models.Proposal{
		ID:         12,
		StartEpoch: 40,
		EndEpoch:   52,
		Type:       "default",
		Author:     "tnam1qauthor",
		Content:    models.ProposalContent{Title: "Fund the ecosystem", Abstract: "Grants"},
	}
}

func TestProposalValues(t *testing.T) {
	values, err := proposalValues(opened())
	require.NoError(t, err)

	assert.Equal(t, int64(12), values["id"])
	assert.Equal(t, "Fund the ecosystem", values["title"])
	assert.Equal(t, int64(53), values["voting_ends_at"])
	assert.JSONEq(t, `{"title":"Fund the ecosystem","abstract":"Grants"}`, values["content"].(string))
}

func TestAnnounce_AddsOneEntryPerProposal(t *testing.T) {
	client := &fakeStreamClient{}
	publisher := newRedisPublisher(client, "namada.governance.proposals", zap.NewNop().Sugar())

	second := opened()
	second.ID = 13

	require.NoError(t, publisher.Announce(context.Background(), []models.Proposal{opened(), second}))

	require.Len(t, client.added, 2)
	assert.Equal(t, "namada.governance.proposals", client.added[0].Stream)
	assert.Equal(t, int64(13), client.added[1].Values.(map[string]interface{})["id"])
}

func TestAnnounce_StopsOnError(t *testing.T) {
	client := &fakeStreamClient{err: errors.New("NOAUTH")}
	publisher := newRedisPublisher(client, "s", zap.NewNop().Sugar())

	err := publisher.Announce(context.Background(), []models.Proposal{opened(), opened()})

	assert.ErrorContains(t, err, "failed to publish proposal 12")
	assert.Len(t, client.added, 1)
}

func TestNewRedisPublisher_InvalidURL(t *testing.T) {
	_, err := NewRedisPublisher(configs.Redis{URL: "not-a-redis-url"}, zap.NewNop().Sugar())

	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	client := &fakeStreamClient{}

	require.NoError(t, newRedisPublisher(client, "s", zap.NewNop().Sugar()).Close())
	assert.True(t, client.closed)
}
