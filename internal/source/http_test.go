package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velykapet/catalog/internal/catalog"
)

func TestHTTPSourceGetProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/Productos":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"IdProducto": 1, "NombreBase": "BR FOR CAT", "NombreCategoria": "Alimento para Gatos", "Precio": 20400, "Stock": 5, "TipoMascota": "Gatos", "URLImagen": "https://cdn.example.com/cat.jpg"},
				{"IdProducto": 2, "NombreBase": "Arena Premium", "Precio": 38500.5, "Stock": 0}
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, nil)
	require.NoError(t, src.Ready(context.Background()))

	products, err := src.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "BR FOR CAT", products[0].Name)
	assert.Equal(t, int64(20400), products[0].Price)
	assert.Equal(t, catalog.SourceRemote, products[0].Source)
	assert.Equal(t, int64(38500), products[1].Price, "fractional prices truncate")
}

func TestHTTPSourceNotReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, nil)
	assert.Error(t, src.Ready(context.Background()))
}

func TestHTTPSourceFetchFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, nil)
	_, err := src.GetProducts(context.Background())
	assert.ErrorContains(t, err, "status 500")
}
