//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=../mocks/mock_message_cache.go -package=mocks

package services

import (
	"context"

	"chatapp/internal/domain/message"
	"chatapp/internal/redis"
	"chatapp/pkg/logger"
)

// MessageCache is the read-path cache for the message list.
// A miss is reported as (nil, false, nil). SetMessages must drop the fill when an
// invalidation happened after Generation returned gen.
type MessageCache interface {
	GetMessages(ctx context.Context) ([]message.Message, bool, error)
	Generation(ctx context.Context) (int64, error)
	SetMessages(ctx context.Context, gen int64, messages []message.Message) error
	InvalidateMessages(ctx context.Context) error
	Enabled() bool
}

// NoopCache never stores anything. It is injected when no cache is reachable.
type NoopCache struct{}

func (NoopCache) GetMessages(context.Context) ([]message.Message, bool, error) {
	return nil, false, nil
}

func (NoopCache) Generation(context.Context) (int64, error) { return 0, nil }

func (NoopCache) SetMessages(context.Context, int64, []message.Message) error { return nil }

func (NoopCache) InvalidateMessages(context.Context) error { return nil }

func (NoopCache) Enabled() bool { return false }

// CacheOrNoop runs open once at startup. Any failure is logged and a NoopCache is returned
// so the service keeps serving without caching.
func CacheOrNoop(ctx context.Context, open func(context.Context) (MessageCache, error), l *logger.Logger) MessageCache {
	if open == nil {
		return NoopCache{}
	}
	c, err := open(ctx)
	if err != nil || c == nil {
		if l != nil {
			l.Warnf("cache unavailable, continuing without caching: %v", err)
		}
		return NoopCache{}
	}
	if l != nil {
		l.Infof("message cache initialized")
	}
	return c
}

// RedisCacheOpener returns an opener for CacheOrNoop backed by Redis.
func RedisCacheOpener(cfg redis.Config, cacheCfg redis.CacheConfig) func(context.Context) (MessageCache, error) {
	return func(ctx context.Context) (MessageCache, error) {
		store, err := redis.OpenCache(ctx, cfg, cacheCfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}
