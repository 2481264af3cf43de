// Package source provides the product providers and import stores the
// catalog session aggregates from.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/velykapet/catalog/internal/catalog"
)

// HTTPSource fetches the product master from a remote JSON API.
type HTTPSource struct {
	client  *http.Client
	baseURL string
}

// NewHTTPSource builds an HTTP-backed product source. A nil client falls
// back to a short-timeout default.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSource{client: client, baseURL: baseURL}
}

// Ready probes the remote health endpoint. Any non-2xx answer counts as
// not ready so the caller keeps polling.
func (s *HTTPSource) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("source: build health request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("source: health probe: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("source: health probe status %d", resp.StatusCode)
	}
	return nil
}

// productPayload mirrors the remote API field names.
type productPayload struct {
	ID          json.Number `json:"IdProducto"`
	Name        string      `json:"NombreBase"`
	Category    string      `json:"NombreCategoria"`
	Price       float64     `json:"Precio"`
	Stock       int         `json:"Stock"`
	Rating      float64     `json:"Calificacion"`
	Description string      `json:"Descripcion"`
	PetType     string      `json:"TipoMascota"`
	ImageURL    string      `json:"URLImagen"`
}

// GetProducts fetches and normalizes the remote product list.
func (s *HTTPSource) GetProducts(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/Productos", nil)
	if err != nil {
		return nil, fmt.Errorf("source: build products request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: fetch products: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source: fetch products status %d", resp.StatusCode)
	}

	var payload []productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("source: decode products: %w", err)
	}

	products := make([]catalog.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, catalog.Product{
			ID:          p.ID.String(),
			Name:        p.Name,
			Category:    p.Category,
			Price:       int64(p.Price),
			Stock:       p.Stock,
			Rating:      p.Rating,
			Description: p.Description,
			PetType:     p.PetType,
			ImageURL:    p.ImageURL,
			Source:      catalog.SourceRemote,
		})
	}
	return products, nil
}
