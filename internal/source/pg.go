package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velykapet/catalog/internal/catalog"
)

// PGSource serves the product master from a Postgres table for deployments
// that own the catalog instead of proxying a remote API.
type PGSource struct {
	pool *pgxpool.Pool
}

// NewPGSource constructs a Postgres-backed product source.
func NewPGSource(pool *pgxpool.Pool) *PGSource {
	return &PGSource{pool: pool}
}

// Ready reports whether the pool can reach the database.
func (s *PGSource) Ready(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("source: pg ping: %w", err)
	}
	return nil
}

// GetProducts loads the full catalog in insertion order.
func (s *PGSource) GetProducts(ctx context.Context) ([]catalog.Product, error) {
	query := `
		SELECT id, name, category, price, stock, rating, description, pet_type, image_url
		FROM products
		ORDER BY id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("source: query products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock,
			&p.Rating, &p.Description, &p.PetType, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("source: scan product: %w", err)
		}
		p.Source = catalog.SourceRemote
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source: iterate products: %w", err)
	}
	return products, nil
}
