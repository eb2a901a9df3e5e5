package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninamercado/snackflow/internal/common"
	"github.com/ninamercado/snackflow/internal/model"
)

func setupTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testStoredOrder(chatID int64, message string) *model.StoredOrder {
	fee := 85
	record := model.NewOrderRecord()
	record.CustomerName = "Maria Santos"
	record.PaymentMethod = model.PaymentGcash
	record.CustomerLocation = model.LocationQuezonCity
	record.ShippingFee = &fee
	record.Items = []model.LineItem{{ProductCode: "2L-CHZ", Quantity: 2}}
	record.Confidence = 0.7

	return &model.StoredOrder{
		MessageHash: model.HashMessage(chatID, message),
		ChatID:      chatID,
		RawMessage:  message,
		Source:      model.SourceRegex,
		Record:      record,
	}
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "orders.db")
		store, err := NewSQLiteStorage(path)
		require.NoError(t, err)
		defer func() { _ = store.Close() }()
	})

	t.Run("empty path rejected", func(t *testing.T) {
		_, err := NewSQLiteStorage("")
		assert.Error(t, err)
	})
}

func TestMigrateIdempotent(t *testing.T) {
	store := setupTestStorage(t)
	// Running migrations again on an up-to-date schema is a no-op.
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestSaveOrder(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	order := testStoredOrder(42, "Maria Santos\n2 tubs cheese\ngcash")
	require.NoError(t, store.SaveOrder(ctx, order))
	assert.Positive(t, order.ID)
}

func TestSaveOrderDuplicate(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	first := testStoredOrder(42, "same message")
	require.NoError(t, store.SaveOrder(ctx, first))

	second := testStoredOrder(42, "same message")
	err := store.SaveOrder(ctx, second)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestSaveOrderNil(t *testing.T) {
	store := setupTestStorage(t)
	assert.Error(t, store.SaveOrder(context.Background(), nil))
}

func TestGetOrderByHash(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	order := testStoredOrder(42, "Maria Santos\n2 tubs cheese\ngcash")
	require.NoError(t, store.SaveOrder(ctx, order))

	got, err := store.GetOrderByHash(ctx, order.MessageHash)
	require.NoError(t, err)

	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.RawMessage, got.RawMessage)
	assert.Equal(t, model.SourceRegex, got.Source)
	assert.Equal(t, "Maria Santos", got.Record.CustomerName)
	assert.Equal(t, model.PaymentGcash, got.Record.PaymentMethod)
	require.NotNil(t, got.Record.ShippingFee)
	assert.Equal(t, 85, *got.Record.ShippingFee)
	require.Len(t, got.Record.Items, 1)
	assert.Equal(t, model.LineItem{ProductCode: "2L-CHZ", Quantity: 2}, got.Record.Items[0])
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetOrderByHashNotFound(t *testing.T) {
	store := setupTestStorage(t)

	_, err := store.GetOrderByHash(context.Background(), "no-such-hash")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListRecentOrders(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		order := testStoredOrder(int64(i), fmt.Sprintf("message %d", i))
		require.NoError(t, store.SaveOrder(ctx, order))
	}

	t.Run("newest first", func(t *testing.T) {
		orders, err := store.ListRecentOrders(ctx, 3)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "message 4", orders[0].RawMessage)
		assert.Equal(t, "message 3", orders[1].RawMessage)
		assert.Equal(t, "message 2", orders[2].RawMessage)
	})

	t.Run("default limit", func(t *testing.T) {
		orders, err := store.ListRecentOrders(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, orders, 5)
	})
}

func TestHashMessageStability(t *testing.T) {
	a := model.HashMessage(42, "hello")
	b := model.HashMessage(42, "hello")
	assert.Equal(t, a, b)

	// Same text in a different chat hashes differently.
	c := model.HashMessage(43, "hello")
	assert.NotEqual(t, a, c)
}
