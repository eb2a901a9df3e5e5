package sheets

import (
	"context"
	"sync"

	"github.com/ninamercado/snackflow/internal/model"
)

// MockWriter is a mock implementation of service.LedgerWriter for testing.
type MockWriter struct {
	AppendFunc      func(ctx context.Context, order model.OrderRecord) error
	AppendedOrders  []model.OrderRecord
	AppendCallCount int
	mu              sync.Mutex
}

// NewMockWriter creates a new mock writer.
func NewMockWriter() *MockWriter {
	return &MockWriter{
		AppendedOrders: make([]model.OrderRecord, 0),
	}
}

// AppendOrder implements the service.LedgerWriter interface.
func (m *MockWriter) AppendOrder(ctx context.Context, order model.OrderRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendCallCount++
	m.AppendedOrders = append(m.AppendedOrders, order)

	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, order)
	}
	return nil
}

// Reset clears all recorded calls.
func (m *MockWriter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendCallCount = 0
	m.AppendedOrders = m.AppendedOrders[:0]
}
