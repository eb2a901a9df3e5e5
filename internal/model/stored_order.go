package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// ParseSource records which strategy produced an order.
type ParseSource string

// Parse source constants.
const (
	SourceAI    ParseSource = "ai"
	SourceRegex ParseSource = "regex"
)

// StoredOrder is a parsed order as persisted in the local history store.
type StoredOrder struct {
	CreatedAt   time.Time
	MessageHash string
	RawMessage  string
	Source      ParseSource
	Record      OrderRecord
	ChatID      int64
	ID          int64
	SheetRow    int
}

// HashMessage creates a stable hash of a chat message for duplicate detection.
func HashMessage(chatID int64, message string) string {
	data := fmt.Sprintf("%d:%s", chatID, message)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
