package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"chatapp/internal/domain/message"

	goredis "github.com/redis/go-redis/v9"
)

// Cache key patterns:
// - {prefix}messages     - full message list, TTL from CacheConfig
// - {prefix}messages_gen - bumped on every invalidation; a fill only lands if it is unchanged

// CacheConfig contains configuration for caching
type CacheConfig struct {
	KeyPrefix  string        // prepended to every key (default "chatapp_")
	MessageTTL time.Duration // TTL for the message list (default 5m)
}

// DefaultCacheConfig returns sensible defaults
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		KeyPrefix:  "chatapp_",
		MessageTTL: 300 * time.Second,
	}
}

var errStaleGeneration = errors.New("cache generation changed")

// CacheStore handles caching in Redis
type CacheStore struct {
	client *goredis.Client
	config CacheConfig
}

// NewCacheStore creates a new cache store
func NewCacheStore(client *goredis.Client, config CacheConfig) *CacheStore {
	defaults := DefaultCacheConfig()
	if config.MessageTTL <= 0 {
		config.MessageTTL = defaults.MessageTTL
	}
	return &CacheStore{
		client: client,
		config: config,
	}
}

func (c *CacheStore) messagesKey() string {
	return c.config.KeyPrefix + "messages"
}

func (c *CacheStore) generationKey() string {
	return c.config.KeyPrefix + "messages_gen"
}

// GetMessages retrieves the message list from cache
func (c *CacheStore) GetMessages(ctx context.Context) ([]message.Message, bool, error) {
	data, err := c.client.Get(ctx, c.messagesKey()).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // Cache miss
	}
	if err != nil {
		return nil, false, err
	}

	var messages []message.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, false, err
	}
	if messages == nil {
		messages = []message.Message{}
	}
	return messages, true, nil
}

// Generation returns the invalidation counter. Read it before loading the list from the store.
func (c *CacheStore) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.generationKey()).Int64()
	if err == goredis.Nil {
		return 0, nil
	}
	return gen, err
}

// SetMessages stores the message list unless the generation moved past gen.
// A skipped fill is not an error.
func (c *CacheStore) SetMessages(ctx context.Context, gen int64, messages []message.Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, c.generationKey()).Int64()
		if err != nil && err != goredis.Nil {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, c.messagesKey(), data, c.config.MessageTTL)
			return nil
		})
		return err
	}, c.generationKey())

	if errors.Is(err, errStaleGeneration) || errors.Is(err, goredis.TxFailedErr) {
		return nil
	}
	return err
}

// InvalidateMessages bumps the generation and removes the message list in one transaction.
func (c *CacheStore) InvalidateMessages(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey())
		pipe.Del(ctx, c.messagesKey())
		return nil
	})
	return err
}

func (c *CacheStore) Enabled() bool {
	return true
}

// Close releases the underlying client.
func (c *CacheStore) Close() error {
	return c.client.Close()
}

// OpenCache connects to Redis and wraps the client in a CacheStore.
func OpenCache(ctx context.Context, cfg Config, cacheCfg CacheConfig) (*CacheStore, error) {
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewCacheStore(client, cacheCfg), nil
}
