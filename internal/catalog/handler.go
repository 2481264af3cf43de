package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/velykapet/catalog/internal/platform/httpx"
)

// Handler wires the catalog render surface as a JSON API.
type Handler struct {
	logger   *slog.Logger
	session  *Session
	validate *validator.Validate
}

// NewHandler constructs the catalog handler.
func NewHandler(logger *slog.Logger, session *Session) *Handler {
	return &Handler{
		logger:   logger,
		session:  session,
		validate: validator.New(),
	}
}

// MountRoutes registers catalog routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/catalog", h.handleView)
	r.Put("/catalog/filters", h.handleSetFilters)
	r.Post("/catalog/scroll", h.handleScroll)
	r.Post("/catalog/refresh", h.handleRefresh)
	r.Post("/catalog/products/{id}/view", h.handleViewDetails)
	r.Post("/catalog/products/{id}/cart", h.handleAddToCart)
}

type addToCartRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Request", "request body is not a valid cart request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}
	// Collaborator failures are logged inside the session and never affect
	// catalog state; the surface always answers with the current view.
	h.session.AddToCart(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	httpx.JSON(w, http.StatusOK, h.session.View())
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.session.View())
}

func (h *Handler) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var filters FilterSet
	if err := httpx.DecodeJSON(r, &filters); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Filters", "request body is not a valid filter set")
		return
	}
	if err := h.validate.Struct(filters); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Filters", err.Error())
		return
	}
	h.session.SetFilters(filters)
	httpx.JSON(w, http.StatusOK, h.session.View())
}

type scrollResponse struct {
	Advanced bool `json:"advanced"`
	View     View `json:"view"`
}

func (h *Handler) handleScroll(w http.ResponseWriter, r *http.Request) {
	var ev ScrollEvent
	if err := httpx.DecodeJSON(r, &ev); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Scroll Event", "request body is not a valid scroll event")
		return
	}
	advanced := h.session.Scroll(ev)
	httpx.JSON(w, http.StatusOK, scrollResponse{Advanced: advanced, View: h.session.View()})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Load(r.Context()); err != nil {
		h.logger.Error("catalog refresh", slog.Any("error", err))
	}
	httpx.JSON(w, http.StatusOK, h.session.View())
}

func (h *Handler) handleViewDetails(w http.ResponseWriter, r *http.Request) {
	h.session.ViewDetails(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
