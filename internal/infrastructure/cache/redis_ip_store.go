package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisSeenIPStore implements port.SeenIPStore on Redis. Each customer/IP
// pair is one key with a TTL, so the memory stays bounded without any
// in-process locking.
type RedisSeenIPStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewRedisSeenIPStore creates a store with the given TTL per remembered IP.
func NewRedisSeenIPStore(client *goredis.Client, ttl time.Duration) *RedisSeenIPStore {
	return &RedisSeenIPStore{client: client, ttl: ttl}
}

func seenIPKey(customerNumber, ip string) string {
	return fmt.Sprintf("fraud:seen-ip:%s:%s", customerNumber, ip)
}

// IsKnown reports whether the customer has transacted from this IP before.
func (s *RedisSeenIPStore) IsKnown(ctx context.Context, customerNumber, ip string) (bool, error) {
	err := s.client.Get(ctx, seenIPKey(customerNumber, ip)).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seen-ip lookup: %w", err)
	}
	return true, nil
}

// Remember records the IP for the customer. The TTL restarts on every call,
// so an IP in steady use never expires.
func (s *RedisSeenIPStore) Remember(ctx context.Context, customerNumber, ip string) error {
	if err := s.client.Set(ctx, seenIPKey(customerNumber, ip), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("seen-ip remember: %w", err)
	}
	return nil
}
