package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultCartKey is the Redis key holding the serialized cart.
const DefaultCartKey = "cart:items"

// RedisStore persists the cart as one JSON document.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore constructs the store. An empty key selects DefaultCartKey.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultCartKey
	}
	return &RedisStore{client: client, key: key}
}

// Load reads the persisted cart. A missing key yields an empty cart.
func (s *RedisStore) Load(ctx context.Context) ([]Item, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart: redis get: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("cart: decode stored cart: %w", err)
	}
	return items, nil
}

// Save writes the full line set.
func (s *RedisStore) Save(ctx context.Context, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart: encode cart: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("cart: redis set: %w", err)
	}
	return nil
}
