package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/velykapet/catalog/internal/catalog"
)

// DefaultImportKey is the Redis list holding session-imported records.
const DefaultImportKey = "catalog:imports"

// RedisImportStore keeps locally imported raw records in a Redis list so
// they survive catalog reloads within a session.
type RedisImportStore struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRedisImportStore constructs the store. An empty key selects
// DefaultImportKey.
func NewRedisImportStore(client *redis.Client, key string, logger *slog.Logger) *RedisImportStore {
	if key == "" {
		key = DefaultImportKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisImportStore{client: client, key: key, logger: logger}
}

// ReadAll returns every stored record in insertion order. Entries that no
// longer parse are skipped with a warning instead of failing the batch.
func (s *RedisImportStore) ReadAll(ctx context.Context) ([]catalog.RawRecord, error) {
	entries, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("source: read imports: %w", err)
	}

	records := make([]catalog.RawRecord, 0, len(entries))
	for i, entry := range entries {
		var rec catalog.RawRecord
		if err := json.Unmarshal([]byte(entry), &rec); err != nil {
			s.logger.Warn("skipping unparsable import record",
				slog.Int("index", i), slog.Any("error", err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append stores one raw record at the end of the import list.
func (s *RedisImportStore) Append(ctx context.Context, rec catalog.RawRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("source: encode import record: %w", err)
	}
	if err := s.client.RPush(ctx, s.key, raw).Err(); err != nil {
		return fmt.Errorf("source: append import record: %w", err)
	}
	return nil
}

// Clear drops every stored import record.
func (s *RedisImportStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("source: clear imports: %w", err)
	}
	return nil
}
