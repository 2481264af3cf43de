package perfcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keys for report persistence.
const (
	keyLatest   = "perf:latest"
	keyBaseline = "perf:baseline"
	keyHistory  = "perf:history"
)

// historyDepth bounds the stored run history.
const historyDepth = 10

// ErrNoReport indicates no report has been recorded yet.
var ErrNoReport = errors.New("perfcheck: no report recorded")

// ResultStore persists reports, the run history and the baseline in Redis.
type ResultStore struct {
	client *redis.Client
}

// NewResultStore constructs a store.
func NewResultStore(client *redis.Client) *ResultStore {
	return &ResultStore{client: client}
}

// Record stores the report as latest and prepends it to the bounded
// history.
func (s *ResultStore) Record(ctx context.Context, r *Report) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("perfcheck: encode report: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyLatest, raw, 0)
	pipe.LPush(ctx, keyHistory, raw)
	pipe.LTrim(ctx, keyHistory, 0, historyDepth-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("perfcheck: record report: %w", err)
	}
	return nil
}

// Latest returns the most recent report.
func (s *ResultStore) Latest(ctx context.Context) (*Report, error) {
	return s.getReport(ctx, keyLatest)
}

// History returns stored reports, newest first.
func (s *ResultStore) History(ctx context.Context) ([]*Report, error) {
	entries, err := s.client.LRange(ctx, keyHistory, 0, historyDepth-1).Result()
	if err != nil {
		return nil, fmt.Errorf("perfcheck: read history: %w", err)
	}
	reports := make([]*Report, 0, len(entries))
	for _, entry := range entries {
		var r Report
		if err := json.Unmarshal([]byte(entry), &r); err != nil {
			return nil, fmt.Errorf("perfcheck: decode history entry: %w", err)
		}
		reports = append(reports, &r)
	}
	return reports, nil
}

// SetBaseline promotes the latest report to baseline.
func (s *ResultStore) SetBaseline(ctx context.Context) error {
	raw, err := s.client.Get(ctx, keyLatest).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNoReport
	}
	if err != nil {
		return fmt.Errorf("perfcheck: read latest: %w", err)
	}
	if err := s.client.Set(ctx, keyBaseline, raw, 0).Err(); err != nil {
		return fmt.Errorf("perfcheck: set baseline: %w", err)
	}
	return nil
}

// Baseline returns the stored baseline report.
func (s *ResultStore) Baseline(ctx context.Context) (*Report, error) {
	return s.getReport(ctx, keyBaseline)
}

func (s *ResultStore) getReport(ctx context.Context, key string) (*Report, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoReport
	}
	if err != nil {
		return nil, fmt.Errorf("perfcheck: read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("perfcheck: decode report: %w", err)
	}
	return &r, nil
}
