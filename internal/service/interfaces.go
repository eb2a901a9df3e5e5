// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/ninamercado/snackflow/internal/model"
)

// OrderParser interprets a raw chat message into a structured order.
// Implementations must always return a usable record, degrading toward an
// empty one rather than failing the caller.
type OrderParser interface {
	Parse(ctx context.Context, message string, now time.Time) model.OrderRecord
}

// LedgerWriter appends a parsed order to the external ledger.
type LedgerWriter interface {
	AppendOrder(ctx context.Context, order model.OrderRecord) error
}

// OrderStore defines the contract for the local order history.
type OrderStore interface {
	Migrate(ctx context.Context) error
	SaveOrder(ctx context.Context, order *model.StoredOrder) error
	GetOrderByHash(ctx context.Context, messageHash string) (*model.StoredOrder, error)
	ListRecentOrders(ctx context.Context, limit int) ([]model.StoredOrder, error)
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
