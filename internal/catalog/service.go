package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// RemoteSource is the primary product provider. Ready is polled before the
// first fetch; implementations backed by in-process data may return nil
// immediately.
type RemoteSource interface {
	Ready(ctx context.Context) error
	GetProducts(ctx context.Context) ([]Product, error)
}

// ImportStore exposes the session-durable locally imported records.
type ImportStore interface {
	ReadAll(ctx context.Context) ([]RawRecord, error)
}

// Importer is the external catalog importer consulted only when the remote
// source yields nothing.
type Importer interface {
	ProcessForExternalCatalog(ctx context.Context) ([]Product, error)
}

// CartCollaborator receives add-to-cart requests for displayed products.
// Failures are logged by the session and never reach catalog state.
type CartCollaborator interface {
	AddItem(ctx context.Context, p Product, quantity int) error
}

// Navigator is invoked with a selected product to request a detail view.
type Navigator func(p Product)

// ReadinessConfig bounds the startup poll against the remote source.
type ReadinessConfig struct {
	Attempts int
	Delay    time.Duration
}

func (r ReadinessConfig) withDefaults() ReadinessConfig {
	if r.Attempts <= 0 {
		r.Attempts = 10
	}
	if r.Delay <= 0 {
		r.Delay = 300 * time.Millisecond
	}
	return r
}

// Session owns one catalog lifetime: the aggregated product set, the active
// filter, facet counts and the display window. All operations are
// synchronous computations over in-memory slices; the only asynchrony is
// the initial source fetch. Handlers and background refreshes call in
// concurrently, so every public method serializes on the session mutex.
type Session struct {
	logger *slog.Logger

	source    RemoteSource
	imports   ImportStore
	importer  Importer
	cart      CartCollaborator
	navigate  Navigator
	readiness ReadinessConfig

	aggregator *Aggregator
	filters    *FilterEngine
	facets     *FacetCounter

	mu       sync.Mutex
	window   *WindowController
	products []Product
	filtered []Product
	counts   FacetCounts
	active   FilterSet
	loadErr  string
}

// SessionDeps groups the injected collaborators. Nothing is discovered
// through ambient globals; the composition root passes everything in.
type SessionDeps struct {
	Logger    *slog.Logger
	Source    RemoteSource
	Imports   ImportStore
	Importer  Importer
	Cart      CartCollaborator
	Navigate  Navigator
	Config    Config
	Readiness ReadinessConfig
	// Fallback overrides the demo fixture used when every source is empty.
	Fallback []Product
}

// NewSession wires a catalog session. The fallback fixture defaults to the
// built-in sample set.
func NewSession(deps SessionDeps) *Session {
	cfg := deps.Config.withDefaults()
	fallback := deps.Fallback
	if fallback == nil {
		fallback = SampleProducts()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		logger:     logger.With(slog.String("component", "catalog_session")),
		source:     deps.Source,
		imports:    deps.Imports,
		importer:   deps.Importer,
		cart:       deps.Cart,
		navigate:   deps.Navigate,
		readiness:  deps.Readiness.withDefaults(),
		aggregator: NewAggregator(cfg, fallback),
		filters:    NewFilterEngine(cfg),
		facets:     NewFacetCounter(cfg),
		window:     NewWindowController(cfg),
	}
}

// Load fetches both sources, aggregates them and resets the display window.
// A failing remote source surfaces as a catalog error state with a
// human-readable message; filtering and pagination keep operating on an
// empty set rather than crashing the session.
func (s *Session) Load(ctx context.Context) error {
	// Source IO runs outside the lock; only the swap of session state below
	// is serialized against concurrent filter and scroll requests.
	var loadErr string
	remote, err := s.fetchRemote(ctx)
	if err != nil {
		loadErr = fmt.Sprintf("error al cargar los productos: %v", err)
		s.logger.Error("remote product fetch failed", slog.Any("error", err))
		remote = nil
	}

	var local []RawRecord
	if s.imports != nil {
		local, err = s.imports.ReadAll(ctx)
		if err != nil {
			// A broken import store never invalidates the remote catalog.
			s.logger.Warn("import store read failed", slog.Any("error", err))
			local = nil
		}
	}

	if len(remote) == 0 && s.importer != nil {
		imported, err := s.importer.ProcessForExternalCatalog(ctx)
		if err != nil {
			s.logger.Warn("external catalog importer failed", slog.Any("error", err))
		} else {
			remote = imported
		}
	}

	s.mu.Lock()
	s.loadErr = loadErr
	s.products = s.aggregator.Aggregate(remote, local)
	s.counts = s.facets.CountFacets(s.products)
	s.applyActive()
	total, displayed := len(s.products), len(s.window.Displayed())
	s.mu.Unlock()

	s.logger.Info("catalog loaded",
		slog.Int("products", total),
		slog.Int("displayed", displayed),
		slog.Bool("degraded", loadErr != ""))
	return nil
}

// fetchRemote polls the source for readiness up to the configured attempt
// budget, then performs the single product fetch.
func (s *Session) fetchRemote(ctx context.Context) ([]Product, error) {
	if s.source == nil {
		return nil, nil
	}

	var lastErr error
	for attempt := 1; attempt <= s.readiness.Attempts; attempt++ {
		if lastErr = s.source.Ready(ctx); lastErr == nil {
			return s.source.GetProducts(ctx)
		}
		if attempt < s.readiness.Attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.readiness.Delay):
			}
		}
	}
	return nil, fmt.Errorf("product source not ready after %d attempts: %w", s.readiness.Attempts, lastErr)
}

// SetFilters replaces the active FilterSet wholesale and rebuilds the
// filtered view plus the display window.
func (s *Session) SetFilters(f FilterSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = f
	s.applyActive()
}

// applyActive is called with the session mutex held.
func (s *Session) applyActive() {
	s.filtered = s.filters.ApplyFilters(s.products, s.active)
	s.window.Reset(s.filtered)
}

// Scroll feeds a viewport snapshot into the throttled window controller and
// reports whether the window advanced.
func (s *Session) Scroll(ev ScrollEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window.HandleScroll(ev)
}

// AddToCart resolves a displayed product and hands it to the cart
// collaborator. Errors are logged, never propagated into catalog state.
func (s *Session) AddToCart(ctx context.Context, productID string, quantity int) {
	p, ok := s.lookup(productID)
	if !ok {
		s.logger.Warn("add to cart for unknown product", slog.String("product_id", productID))
		return
	}
	if s.cart == nil {
		s.logger.Warn("cart collaborator not configured")
		return
	}
	if quantity <= 0 {
		quantity = 1
	}
	// The collaborator may hit the network; it runs outside the lookup lock.
	if err := s.cart.AddItem(ctx, p, quantity); err != nil {
		s.logger.Error("add to cart failed",
			slog.String("product_id", productID),
			slog.Any("error", err))
	}
}

// ViewDetails requests a detail view for the selected product.
func (s *Session) ViewDetails(productID string) {
	if s.navigate == nil {
		return
	}
	if p, ok := s.lookup(productID); ok {
		s.navigate(p)
	}
}

func (s *Session) lookup(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Card is the render-surface projection of one displayed product.
type Card struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Stock    int     `json:"stock"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// View is the full render-surface snapshot of a catalog session.
type View struct {
	Cards         []Card      `json:"cards"`
	FacetCounts   FacetCounts `json:"facetCounts"`
	Filters       FilterSet   `json:"filters"`
	Page          int         `json:"page"`
	HasMore       bool        `json:"hasMore"`
	State         WindowState `json:"state"`
	ShowScrollTop bool        `json:"showScrollTop"`
	TotalProducts int         `json:"totalProducts"`
	TotalFiltered int         `json:"totalFiltered"`
	Error         string      `json:"error,omitempty"`
}

// View snapshots the session for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	displayed := s.window.Displayed()
	cards := make([]Card, 0, len(displayed))
	for _, p := range displayed {
		cards = append(cards, Card{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			Rating:   p.Rating,
			ImageURL: p.ImageURL,
		})
	}
	return View{
		Cards:         cards,
		FacetCounts:   s.counts,
		Filters:       s.active,
		Page:          s.window.Page(),
		HasMore:       s.window.HasMore(),
		State:         s.window.State(),
		ShowScrollTop: s.window.ShowScrollTop(),
		TotalProducts: len(s.products),
		TotalFiltered: len(s.filtered),
		Error:         s.loadErr,
	}
}

// Products exposes the aggregated set (read-only once constructed).
func (s *Session) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// FacetCounts returns the badge counts for the current aggregated set.
func (s *Session) FacetCounts() FacetCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}
