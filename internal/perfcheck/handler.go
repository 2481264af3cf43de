package perfcheck

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velykapet/catalog/internal/platform/httpx"
)

// Handler serves the recorded performance reports.
type Handler struct {
	logger *slog.Logger
	store  *ResultStore
	suite  *Suite
}

// NewHandler constructs the perf handler. The suite may be nil when runs
// happen only through the background worker.
func NewHandler(logger *slog.Logger, store *ResultStore, suite *Suite) *Handler {
	return &Handler{logger: logger, store: store, suite: suite}
}

// MountRoutes registers the perf routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/perf/report", h.handleReport)
	r.Get("/perf/history", h.handleHistory)
	r.Post("/perf/run", h.handleRun)
	r.Post("/perf/baseline", h.handleSetBaseline)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.store.Latest(r.Context())
	if errors.Is(err, ErrNoReport) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no performance report recorded yet")
		return
	}
	if err != nil {
		h.logger.Error("load latest report", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.store.History(r.Context())
	if err != nil {
		h.logger.Error("load report history", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, history)
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	if h.suite == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Unavailable", "suite runs are handled by the background worker")
		return
	}
	report, err := h.suite.Run(r.Context())
	if err != nil {
		h.logger.Error("run performance suite", slog.Any("error", err))
		httpx.Problem(w, http.StatusConflict, "Suite Busy", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) handleSetBaseline(w http.ResponseWriter, r *http.Request) {
	err := h.store.SetBaseline(r.Context())
	if errors.Is(err, ErrNoReport) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no performance report recorded yet")
		return
	}
	if err != nil {
		h.logger.Error("set baseline", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
