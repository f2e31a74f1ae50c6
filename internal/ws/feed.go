package ws

import (
	"context"
	"encoding/json"

	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// Feed is the Redis-backed transaction feed. Every ingested transaction is
// published on a PubSub channel; each connected dashboard client holds its
// own subscription, so fan-out happens in Redis rather than in process.
type Feed struct {
	rdb *redis.Client
}

// NewFeed creates a new Feed.
func NewFeed(rdb *redis.Client) *Feed {
	return &Feed{rdb: rdb}
}

// PublishTransacao pushes one transaction onto the feed channel.
func (f *Feed) PublishTransacao(ctx context.Context, d model.TransacaoDetalhe) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return f.rdb.Publish(ctx, config.CacheKey.TransacaoFeedChannel(), payload).Err()
}

// Subscribe opens a subscription on the feed channel. The caller owns the
// returned PubSub and must Close it.
func (f *Feed) Subscribe(ctx context.Context) *redis.PubSub {
	return f.rdb.Subscribe(ctx, config.CacheKey.TransacaoFeedChannel())
}
