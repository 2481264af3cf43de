package jobs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velykapet/catalog/internal/observability"
)

func TestCatalogRefreshJobHitsServiceEndpoint(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/catalog/refresh" {
			hits++
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	job := &CatalogRefreshJob{
		RefreshURL: srv.URL + "/api/catalog/refresh",
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:    observability.NewMetrics(),
	}

	require.NoError(t, job.Handle(context.Background(), NewCatalogRefreshTask()))
	assert.Equal(t, 1, hits)
}

func TestCatalogRefreshJobReportsFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	job := &CatalogRefreshJob{
		RefreshURL: srv.URL,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:    observability.NewMetrics(),
	}

	err := job.Handle(context.Background(), NewCatalogRefreshTask())
	assert.ErrorContains(t, err, "status 502")
}
