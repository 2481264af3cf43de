package cart

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/velykapet/catalog/internal/catalog"
	"github.com/velykapet/catalog/internal/platform/httpx"
)

// Handler exposes the cart as a JSON API.
type Handler struct {
	logger   *slog.Logger
	manager  *Manager
	validate *validator.Validate
}

// NewHandler constructs the cart handler.
func NewHandler(logger *slog.Logger, manager *Manager) *Handler {
	return &Handler{
		logger:   logger,
		manager:  manager,
		validate: validator.New(),
	}
}

// MountRoutes registers cart routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/cart", h.handleGet)
	r.Post("/cart/items", h.handleAddItem)
	r.Put("/cart/items/{id}", h.handleUpdateQuantity)
	r.Delete("/cart/items/{id}", h.handleRemoveItem)
	r.Delete("/cart", h.handleClear)
}

type cartView struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"totalItems"`
	TotalPrice int64  `json:"totalPrice"`
}

func (h *Handler) view() cartView {
	return cartView{
		Items:      h.manager.Items(),
		TotalItems: h.manager.TotalItems(),
		TotalPrice: h.manager.TotalPrice(),
	}
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.view())
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Price     int64  `json:"price" validate:"gt=0"`
	Quantity  int    `json:"quantity" validate:"min=0"`
	ImageURL  string `json:"imageUrl"`
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Request", "request body is not a valid cart item")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}

	product := catalog.Product{
		ID:       req.ProductID,
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}
	if err := h.manager.AddItem(r.Context(), product, req.Quantity); err != nil {
		h.logger.Error("cart add item", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, h.view())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

func (h *Handler) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Request", "request body is not a valid quantity update")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}

	err := h.manager.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	if errors.Is(err, ErrItemNotFound) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	if err != nil {
		h.logger.Error("cart update quantity", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, h.view())
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.manager.RemoveItem(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ErrItemNotFound) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	if err != nil {
		h.logger.Error("cart remove item", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, h.view())
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Clear(r.Context()); err != nil {
		h.logger.Error("cart clear", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, h.view())
}
