// Package sheets provides Google Sheets API integration for the order ledger.
package sheets

import (
	"fmt"
	"os"
	"time"

	"github.com/ninamercado/snackflow/internal/common"
)

// Config holds the configuration for the Google Sheets ledger writer.
type Config struct {
	ServiceAccountPath string
	ServiceAccountJSON string
	SpreadsheetID      string
	WorksheetName      string
	TimeZone           string
	RetryAttempts      int
	RetryDelay         time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		WorksheetName: "ORDER",
		TimeZone:      "Asia/Manila",
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

// LoadFromEnv loads the configuration from environment variables.
func (c *Config) LoadFromEnv() error {
	c.ServiceAccountPath = os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH")
	c.ServiceAccountJSON = os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")
	c.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")

	if c.ServiceAccountPath == "" && c.ServiceAccountJSON == "" {
		return fmt.Errorf("%w: provide a service account path or inline JSON", common.ErrMissingConfig)
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: GOOGLE_SHEETS_SPREADSHEET_ID is required", common.ErrMissingConfig)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ServiceAccountPath == "" && c.ServiceAccountJSON == "" {
		return fmt.Errorf("%w: no authentication method configured", common.ErrInvalidConfig)
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: spreadsheet ID is required", common.ErrInvalidConfig)
	}
	if c.WorksheetName == "" {
		return fmt.Errorf("%w: worksheet name is required", common.ErrInvalidConfig)
	}
	return nil
}
