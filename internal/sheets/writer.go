package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ninamercado/snackflow/internal/common"
	"github.com/ninamercado/snackflow/internal/model"
	"github.com/ninamercado/snackflow/internal/service"
)

// Writer implements the service.LedgerWriter interface for Google Sheets.
type Writer struct {
	service  *sheets.Service
	logger   *slog.Logger
	location *time.Location
	config   Config
	now      func() time.Time
}

// NewWriter creates a new Google Sheets ledger writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	svc, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	loc, err := time.LoadLocation(config.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", config.TimeZone, err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{
		config:   config,
		service:  svc,
		logger:   logger,
		location: loc,
		now:      time.Now,
	}, nil
}

// createSheetsService creates a Google Sheets API service using service
// account credentials, either inline JSON or a key file.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	jsonKey := []byte(config.ServiceAccountJSON)
	if len(jsonKey) == 0 {
		var err error
		jsonKey, err = os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return svc, nil
}

// AppendOrder writes a parsed order into the first empty ledger row.
func (w *Writer) AppendOrder(ctx context.Context, order model.OrderRecord) error {
	row, err := w.findFirstEmptyRow(ctx)
	if err != nil {
		return fmt.Errorf("failed to find empty row: %w", err)
	}

	updates := w.cellUpdates(order, row)

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.batchUpdate(ctx, updates)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write order: %w", err)
	}

	w.logger.Info("order written to ledger",
		"row", row,
		"customer", order.CustomerName,
		"items", len(order.Items))

	return nil
}

// findFirstEmptyRow scans the data range for the first row where the
// customer cell is blank and every product cell is blank or "0".
func (w *Writer) findFirstEmptyRow(ctx context.Context) (int, error) {
	readRange := fmt.Sprintf("%s!%s%d:%s%d",
		w.config.WorksheetName, colCustomerName, firstDataRow, "W", lastDataRow)

	resp, err := w.service.Spreadsheets.Values.Get(w.config.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	for i, row := range resp.Values {
		cells := make([]string, scanWidth)
		for j := 0; j < scanWidth && j < len(row); j++ {
			if s, ok := row[j].(string); ok {
				cells[j] = strings.TrimSpace(s)
			} else if row[j] != nil {
				cells[j] = strings.TrimSpace(fmt.Sprint(row[j]))
			}
		}

		if cells[0] != "" {
			continue
		}

		empty := true
		for _, off := range productOffsets {
			if cells[off] != "" && cells[off] != "0" {
				empty = false
				break
			}
		}
		if empty {
			return firstDataRow + i, nil
		}
	}

	// Every fetched row is occupied; append after the last one.
	return firstDataRow + len(resp.Values), nil
}

// cellUpdates builds the per-cell value set for one order row.
func (w *Writer) cellUpdates(order model.OrderRecord, row int) map[string]any {
	updates := map[string]any{
		colOrderDate:     w.now().In(w.location).Format("01/02/2006"),
		colPaymentStatus: string(order.PaymentStatus),
		colOrderType:     "Reserved",
	}

	if order.PaymentStatus == "" {
		updates[colPaymentStatus] = string(model.StatusUnpaid)
	}
	if order.Notes != "" {
		updates[colNotes] = order.Notes
	}
	if order.CustomerName != "" {
		updates[colCustomerName] = order.CustomerName
	}
	if seller, ok := sellerByLocation[order.CustomerLocation]; ok {
		updates[colSoldBy] = seller
	}
	if order.PaymentMethod != "" {
		updates[colPaymentMethod] = string(order.PaymentMethod)
	}
	for _, item := range order.Items {
		if col, ok := productColumns[item.ProductCode]; ok {
			updates[col] = item.Quantity
		}
	}
	if order.ShippingFee != nil {
		updates[colShippingFee] = *order.ShippingFee
	}
	if order.DiscountAmount != nil {
		updates[colDiscount] = *order.DiscountAmount
	}

	// The row number is carried alongside the column letters.
	final := make(map[string]any, len(updates))
	for col, value := range updates {
		final[fmt.Sprintf("%s!%s%d", w.config.WorksheetName, col, row)] = value
	}
	return final
}

// batchUpdate writes all cells in a single values.batchUpdate call.
func (w *Writer) batchUpdate(ctx context.Context, updates map[string]any) error {
	data := make([]*sheets.ValueRange, 0, len(updates))
	for cellRange, value := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  cellRange,
			Values: [][]any{{value}},
		})
	}

	body := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}

	_, err := w.service.Spreadsheets.Values.BatchUpdate(w.config.SpreadsheetID, body).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("batch update failed: %w", err)
	}

	return nil
}
