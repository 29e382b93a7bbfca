package events

import (
	"context"
	"encoding/json"
	"fmt"

	"namada_governance_bot/configs"
	"namada_governance_bot/internal/db/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type streamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

// RedisPublisher appends one stream entry per opened proposal so that other
// services can react to new votes.
type RedisPublisher struct {
	client streamClient
	stream string
	logger *zap.SugaredLogger
}

func NewRedisPublisher(config configs.Redis, logger *zap.SugaredLogger) (*RedisPublisher, error) {
	options, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	return newRedisPublisher(redis.NewClient(options), config.Stream, logger), nil
}

func newRedisPublisher(client streamClient, stream string, logger *zap.SugaredLogger) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *RedisPublisher) Name() string {
	return "redis"
}

func (p *RedisPublisher) Announce(ctx context.Context, proposals []models.Proposal) error {
	for _, proposal := range proposals {
		values, err := proposalValues(proposal)
		if err != nil {
			return err
		}

		entryID, err := p.client.XAdd(ctx, &redis.XAddArgs{
			Stream: p.stream,
			Values: values,
		}).Result()
		if err != nil {
			return fmt.Errorf("failed to publish proposal %d: %w", proposal.ID, err)
		}

		p.logger.Infow("proposal published", "stream", p.stream, "entry_id", entryID, "proposal_id", proposal.ID)
	}

	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

func proposalValues(proposal models.Proposal) (map[string]interface{}, error) {
	content, err := json.Marshal(proposal.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode content of proposal %d: %w", proposal.ID, err)
	}

	return map[string]interface{}{
		"id":             proposal.ID,
		"type":           proposal.Type,
		"author":         proposal.Author,
		"title":          proposal.Content.Title,
		"start_epoch":    proposal.StartEpoch,
		"end_epoch":      proposal.EndEpoch,
		"voting_ends_at": proposal.VotingEndsAt(),
		"content":        string(content),
	}, nil
}
