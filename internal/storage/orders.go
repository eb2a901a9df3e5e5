package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ninamercado/snackflow/internal/common"
	"github.com/ninamercado/snackflow/internal/model"
)

// SaveOrder persists a parsed order. A duplicate message hash returns
// common.ErrDuplicateEntry so callers can skip re-processing.
func (s *SQLiteStorage) SaveOrder(ctx context.Context, order *model.StoredOrder) error {
	if order == nil {
		return fmt.Errorf("order cannot be nil")
	}

	record, err := json.Marshal(order.Record)
	if err != nil {
		return fmt.Errorf("failed to encode order record: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (message_hash, chat_id, raw_message, source, record, sheet_row)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(message_hash) DO NOTHING`,
		order.MessageHash, order.ChatID, order.RawMessage, string(order.Source), string(record), order.SheetRow)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check insert result: %w", err)
	}
	if rows == 0 {
		return common.ErrDuplicateEntry
	}

	id, err := result.LastInsertId()
	if err == nil {
		order.ID = id
	}

	return nil
}

// GetOrderByHash retrieves a stored order by its message hash.
func (s *SQLiteStorage) GetOrderByHash(ctx context.Context, messageHash string) (*model.StoredOrder, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, message_hash, chat_id, raw_message, source, record, sheet_row, created_at
		FROM orders WHERE message_hash = ?`, messageHash)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ListRecentOrders returns the most recently stored orders, newest first.
func (s *SQLiteStorage) ListRecentOrders(ctx context.Context, limit int) ([]model.StoredOrder, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, message_hash, chat_id, raw_message, source, record, sheet_row, created_at
		FROM orders ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var orders []model.StoredOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*model.StoredOrder, error) {
	var order model.StoredOrder
	var source, record string

	err := row.Scan(&order.ID, &order.MessageHash, &order.ChatID, &order.RawMessage,
		&source, &record, &order.SheetRow, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	order.Source = model.ParseSource(source)
	if err := json.Unmarshal([]byte(record), &order.Record); err != nil {
		return nil, fmt.Errorf("failed to decode order record: %w", err)
	}

	return &order, nil
}
