// Package cart implements the shopping cart collaborator of the catalog.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/velykapet/catalog/internal/catalog"
)

// ErrItemNotFound indicates the cart holds no line for the product.
var ErrItemNotFound = errors.New("cart: item not found")

// Item is one cart line.
type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// Store persists the cart between sessions.
type Store interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
}

// Listener observes every cart mutation with the new line set.
type Listener func(items []Item)

// Manager owns the cart lines. All mutations persist through the store and
// fan out to subscribed listeners.
type Manager struct {
	logger *slog.Logger
	store  Store

	mu        sync.Mutex
	items     []Item
	listeners []Listener
}

// NewManager constructs an empty cart bound to a store.
func NewManager(logger *slog.Logger, store Store) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger: logger.With(slog.String("component", "cart")),
		store:  store,
	}
}

// Load restores the persisted cart. Lines priced at zero or below are
// purged, matching how stale promotional entries are cleaned up.
func (m *Manager) Load(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	stored, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("cart: load: %w", err)
	}

	kept := make([]Item, 0, len(stored))
	for _, it := range stored {
		if it.Price <= 0 {
			m.logger.Warn("purging cart item without a valid price",
				slog.String("product_id", it.ProductID))
			continue
		}
		it.Subtotal = it.Price * int64(it.Quantity)
		kept = append(kept, it)
	}

	m.mu.Lock()
	m.items = kept
	m.mu.Unlock()
	if len(kept) != len(stored) {
		return m.persist(ctx)
	}
	return nil
}

// AddItem merges a product into the cart, growing the quantity when the
// line already exists. It satisfies the catalog's cart collaborator port.
func (m *Manager) AddItem(ctx context.Context, p catalog.Product, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	m.mu.Lock()
	merged := false
	for i := range m.items {
		if m.items[i].ProductID == p.ID {
			m.items[i].Quantity += quantity
			m.items[i].Subtotal = m.items[i].Price * int64(m.items[i].Quantity)
			merged = true
			break
		}
	}
	if !merged {
		m.items = append(m.items, Item{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  quantity,
			Subtotal:  p.Price * int64(quantity),
			ImageURL:  p.ImageURL,
		})
	}
	m.mu.Unlock()

	return m.persist(ctx)
}

// RemoveItem drops a line entirely.
func (m *Manager) RemoveItem(ctx context.Context, productID string) error {
	m.mu.Lock()
	found := false
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	m.mu.Unlock()

	if !found {
		return ErrItemNotFound
	}
	return m.persist(ctx)
}

// UpdateQuantity sets the line quantity. A non-positive quantity removes
// the line.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return m.RemoveItem(ctx, productID)
	}

	m.mu.Lock()
	found := false
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = quantity
			m.items[i].Subtotal = m.items[i].Price * int64(quantity)
			found = true
			break
		}
	}
	m.mu.Unlock()

	if !found {
		return ErrItemNotFound
	}
	return m.persist(ctx)
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()
	return m.persist(ctx)
}

// Items returns a copy of the current lines.
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// TotalItems sums the line quantities.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, it := range m.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums the line subtotals.
func (m *Manager) TotalPrice() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, it := range m.items {
		total += it.Subtotal
	}
	return total
}

// Subscribe registers a listener for cart mutations.
func (m *Manager) Subscribe(l Listener) {
	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()
}

// persist saves the line set and notifies listeners. Persistence failures
// propagate; listener panics do not occur by contract.
func (m *Manager) persist(ctx context.Context) error {
	items := m.Items()

	if m.store != nil {
		if err := m.store.Save(ctx, items); err != nil {
			return fmt.Errorf("cart: save: %w", err)
		}
	}

	m.mu.Lock()
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()
	for _, l := range listeners {
		l(items)
	}
	return nil
}
