package cart

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velykapet/catalog/internal/catalog"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(logger, NewRedisStore(client, ""))
}

func testProduct(id string, price int64) catalog.Product {
	return catalog.Product{ID: id, Name: "Producto " + id, Price: price}
}

func TestAddItemMergesQuantity(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddItem(ctx, testProduct("1", 20000), 1))
	require.NoError(t, m.AddItem(ctx, testProduct("1", 20000), 2))
	require.NoError(t, m.AddItem(ctx, testProduct("2", 15000), 1))

	items := m.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(60000), items[0].Subtotal)
	assert.Equal(t, 4, m.TotalItems())
	assert.Equal(t, int64(75000), m.TotalPrice())
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.AddItem(context.Background(), testProduct("1", 5000), 0))
	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityAndRemove(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddItem(ctx, testProduct("1", 10000), 2))
	require.NoError(t, m.UpdateQuantity(ctx, "1", 5))
	assert.Equal(t, int64(50000), m.TotalPrice())

	// Zero quantity removes the line.
	require.NoError(t, m.UpdateQuantity(ctx, "1", 0))
	assert.Empty(t, m.Items())

	assert.ErrorIs(t, m.UpdateQuantity(ctx, "missing", 3), ErrItemNotFound)
	assert.ErrorIs(t, m.RemoveItem(ctx, "missing"), ErrItemNotFound)
}

func TestLoadPersistedCartPurgesInvalidPrices(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewRedisStore(client, "")
	ctx := context.Background()

	first := NewManager(logger, store)
	require.NoError(t, first.AddItem(ctx, testProduct("1", 20000), 2))

	// Corrupt one persisted line to simulate a stale promotional entry.
	require.NoError(t, store.Save(ctx, append(first.Items(), Item{ProductID: "9", Name: "Gratis", Price: 0, Quantity: 1})))

	second := NewManager(logger, store)
	require.NoError(t, second.Load(ctx))

	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, int64(40000), items[0].Subtotal)
}

func TestListenersObserveMutations(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	var observed [][]Item
	m.Subscribe(func(items []Item) { observed = append(observed, items) })

	require.NoError(t, m.AddItem(ctx, testProduct("1", 10000), 1))
	require.NoError(t, m.Clear(ctx))

	require.Len(t, observed, 2)
	assert.Len(t, observed[0], 1)
	assert.Empty(t, observed[1])
}
