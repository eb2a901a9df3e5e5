// Package parser turns free-form bilingual (English/Filipino) order
// messages into structured order records.
//
// Two strategies implement the same extraction contract: an AI-assisted
// one that delegates to a text-completion oracle, and a deterministic
// regex/keyword one. The AI path is tried first when a client is
// configured; any failure on that path falls back to the deterministic
// one, so Parse never fails.
package parser

import (
	"context"
	"log/slog"
	"time"

	"github.com/ninamercado/snackflow/internal/llm"
	"github.com/ninamercado/snackflow/internal/model"
	"github.com/ninamercado/snackflow/internal/service"
)

var _ service.OrderParser = (*Parser)(nil)

// Parser is the interpretation orchestrator. It is stateless across calls
// and safe for concurrent use.
type Parser struct {
	client llm.Client
	logger *slog.Logger
}

// New creates a Parser. A nil client is a normal, expected state: the
// deterministic strategy is then the only one used.
func New(client llm.Client, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{client: client, logger: logger}
}

// Parse interprets a chat message into an order record. The now argument
// anchors relative date expressions ("pickup tomorrow") in the AI path.
// Parse always returns a well-formed record; at worst a low-information
// one from the deterministic fallback.
func (p *Parser) Parse(ctx context.Context, message string, now time.Time) model.OrderRecord {
	record, _ := p.ParseWithSource(ctx, message, now)
	return record
}

// ParseWithSource is Parse plus the strategy that actually produced the
// record, for history bookkeeping.
func (p *Parser) ParseWithSource(ctx context.Context, message string, now time.Time) (model.OrderRecord, model.ParseSource) {
	if p.client != nil {
		record, err := p.parseWithAI(ctx, message, now)
		if err == nil {
			p.logger.Debug("parsed order with completion oracle",
				"items", len(record.Items),
				"confidence", record.Confidence)
			return record, model.SourceAI
		}
		p.logger.Warn("AI parse failed, falling back to regex strategy", "error", err)
	}

	return Normalize(parseDeterministic(message)), model.SourceRegex
}
