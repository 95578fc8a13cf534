// Package redis implements a session-scoped tier whose keys expire after a TTL.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/repairctl/internal/model"
)

var _ model.KVStore = (*KV)(nil)

// KV stores session keys under a namespace. Each Set restarts the TTL;
// reads leave it alone.
type KV struct {
	client    redis.Cmdable
	namespace string
	ttl       time.Duration
}

// NewClient parses url and returns a connected client.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// NewKV creates a KV. Keys are stored as "<namespace>:<key>".
func NewKV(client redis.Cmdable, namespace string, ttl time.Duration) *KV {
	return &KV{client: client, namespace: namespace, ttl: ttl}
}

func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get session key %q from Redis: %w", key, err)
	}

	return v, true, nil
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session key %q in Redis: %w", key, err)
	}
	return nil
}

func (s *KV) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to remove session key %q from Redis: %w", key, err)
	}
	return nil
}

func (s *KV) key(key string) string {
	return s.namespace + ":" + key
}
