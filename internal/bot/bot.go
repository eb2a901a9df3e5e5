package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ninamercado/snackflow/internal/common"
	"github.com/ninamercado/snackflow/internal/model"
	"github.com/ninamercado/snackflow/internal/service"
)

const pollTimeout = 30 * time.Second

// orderParser is the slice of the parser the bot needs.
type orderParser interface {
	ParseWithSource(ctx context.Context, message string, now time.Time) (model.OrderRecord, model.ParseSource)
}

// Bot wires the Telegram transport to the parser, order store, and
// ledger writer. Store and writer are optional: without a store every
// message is processed, without a writer nothing is appended to the sheet.
type Bot struct {
	client *Client
	parser orderParser
	store  service.OrderStore
	writer service.LedgerWriter
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Bot.
func New(client *Client, parser orderParser, store service.OrderStore, writer service.LedgerWriter, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		client: client,
		parser: parser,
		store:  store,
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

// Run polls for updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot started, polling for messages")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopped")
			return ctx.Err()
		default:
		}

		updates, err := b.client.GetUpdates(ctx, offset, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.logger.Warn("failed to fetch updates", "error", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage processes one incoming chat message end to end. Failures
// are logged and answered in chat; they never stop the polling loop.
func (b *Bot) handleMessage(ctx context.Context, msg *Message) {
	logger := b.logger.With("chat_id", msg.Chat.ID, "from", msg.From.Username)

	hash := model.HashMessage(msg.Chat.ID, msg.Text)
	if b.store != nil {
		if _, err := b.store.GetOrderByHash(ctx, hash); err == nil {
			logger.Info("duplicate message ignored", "hash", hash)
			b.reply(ctx, msg.Chat.ID, "This order was already recorded.")
			return
		}
	}

	record, source := b.parser.ParseWithSource(ctx, msg.Text, b.now())
	logger.Info("parsed order",
		"source", source,
		"items", len(record.Items),
		"confidence", record.Confidence)

	if b.store != nil {
		stored := &model.StoredOrder{
			MessageHash: hash,
			ChatID:      msg.Chat.ID,
			RawMessage:  msg.Text,
			Source:      source,
			Record:      record,
		}
		if err := b.store.SaveOrder(ctx, stored); err != nil && !errors.Is(err, common.ErrDuplicateEntry) {
			logger.Error("failed to store order", "error", err)
		}
	}

	if b.writer != nil && record.HasItems() {
		if err := b.writer.AppendOrder(ctx, record); err != nil {
			logger.Error("failed to write order to ledger", "error", err)
			b.reply(ctx, msg.Chat.ID, "Order understood, but I couldn't save it to the sheet. Please try again.")
			return
		}
	}

	b.reply(ctx, msg.Chat.ID, renderSummary(record))
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if err := b.client.SendMessage(ctx, chatID, text); err != nil {
		b.logger.Warn("failed to send reply", "chat_id", chatID, "error", err)
	}
}
