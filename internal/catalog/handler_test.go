package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*chi.Mux, *Session, *stubCart) {
	t.Helper()
	cart := &stubCart{}
	sess := NewSession(SessionDeps{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Source:    &stubSource{products: SampleProducts()},
		Cart:      cart,
		Readiness: ReadinessConfig{Attempts: 1, Delay: time.Millisecond},
	})
	require.NoError(t, sess.Load(context.Background()))

	r := chi.NewRouter()
	NewHandler(slog.Default(), sess).MountRoutes(r)
	return r, sess, cart
}

func decodeView(t *testing.T, rr *httptest.ResponseRecorder) View {
	t.Helper()
	var view View
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&view))
	return view
}

func TestHandleViewReturnsSnapshot(t *testing.T) {
	router, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	view := decodeView(t, rr)
	assert.Equal(t, 30, view.TotalProducts)
	assert.Len(t, view.Cards, DefaultPageSize)
	assert.True(t, view.HasMore)
	assert.Equal(t, 1, view.Page)
}

func TestHandleSetFiltersNarrowsView(t *testing.T) {
	router, _, _ := newTestHandler(t)

	body := `{"search":"alimento"}`
	req := httptest.NewRequest(http.MethodPut, "/catalog/filters", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	view := decodeView(t, rr)
	assert.Equal(t, 10, view.TotalFiltered)
	assert.Len(t, view.Cards, 10)
	assert.False(t, view.HasMore)
	assert.Equal(t, "alimento", view.Filters.Search)
}

func TestHandleSetFiltersRejectsMalformedBody(t *testing.T) {
	router, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/catalog/filters", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid Filters")
}

func TestHandleScrollAdvancesWindow(t *testing.T) {
	router, sess, _ := newTestHandler(t)
	sess.window.now = testClock(time.Second)

	body := `{"top":2000,"viewportHeight":800,"documentHeight":2850}`
	req := httptest.NewRequest(http.MethodPost, "/catalog/scroll", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Advanced bool `json:"advanced"`
		View     View `json:"view"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Advanced)
	assert.Len(t, resp.View.Cards, 24)
	assert.Equal(t, 2, resp.View.Page)
}

func TestHandleAddToCart(t *testing.T) {
	router, _, cart := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/catalog/products/4/cart", strings.NewReader(`{"quantity":2}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"4", "4"}, cart.added)
}

func TestHandleViewDetailsNoContent(t *testing.T) {
	router, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/catalog/products/10/view", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHandleRefreshReloadsCatalog(t *testing.T) {
	router, sess, _ := newTestHandler(t)
	sess.SetFilters(FilterSet{Search: "alimento"})

	req := httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	view := decodeView(t, rr)
	assert.Equal(t, 30, view.TotalProducts)
	assert.Equal(t, "alimento", view.Filters.Search, "refresh keeps the active filter")
	assert.Equal(t, 10, view.TotalFiltered)
}
