// Package jobs wires the background task queue.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"

	"github.com/velykapet/catalog/internal/observability"
	"github.com/velykapet/catalog/internal/perfcheck"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskPerfSuite runs the full performance battery.
	TaskPerfSuite = "perf:suite"
	// TaskCatalogRefresh asks the service to reload its product sources.
	TaskCatalogRefresh = "catalog:refresh"
)

// NewPerfSuiteTask constructs a perf suite task.
func NewPerfSuiteTask() *asynq.Task {
	return asynq.NewTask(TaskPerfSuite, nil)
}

// NewCatalogRefreshTask constructs a catalog refresh task.
func NewCatalogRefreshTask() *asynq.Task {
	return asynq.NewTask(TaskCatalogRefresh, nil)
}

// PerfSuiteJob executes the performance battery from the worker.
type PerfSuiteJob struct {
	Suite   *perfcheck.Suite
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

// Handle processes TaskPerfSuite tasks.
func (j *PerfSuiteJob) Handle(ctx context.Context, _ *asynq.Task) error {
	report, err := j.Suite.Run(ctx)
	j.Metrics.ObserveJob(TaskPerfSuite, err)
	if err != nil {
		return fmt.Errorf("jobs: perf suite: %w", err)
	}
	j.Logger.Info("scheduled perf suite finished",
		slog.String("overall", string(report.Summary.Overall)),
		slog.Int("failed", report.Summary.Failed))
	return nil
}

// CatalogRefreshJob triggers the service refresh endpoint so the serving
// process reloads its sources in place.
type CatalogRefreshJob struct {
	Client     *http.Client
	RefreshURL string
	Logger     *slog.Logger
	Metrics    *observability.Metrics
}

// Handle processes TaskCatalogRefresh tasks.
func (j *CatalogRefreshJob) Handle(ctx context.Context, _ *asynq.Task) error {
	client := j.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.RefreshURL, nil)
	if err != nil {
		j.Metrics.ObserveJob(TaskCatalogRefresh, err)
		return asynq.SkipRetry
	}
	resp, err := client.Do(req)
	if err != nil {
		j.Metrics.ObserveJob(TaskCatalogRefresh, err)
		return fmt.Errorf("jobs: catalog refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("jobs: catalog refresh status %d", resp.StatusCode)
		j.Metrics.ObserveJob(TaskCatalogRefresh, err)
		return err
	}
	j.Metrics.ObserveJob(TaskCatalogRefresh, nil)
	j.Logger.Info("catalog refresh triggered")
	return nil
}
