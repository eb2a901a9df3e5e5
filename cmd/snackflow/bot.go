package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ninamercado/snackflow/internal/bot"
	"github.com/ninamercado/snackflow/internal/service"
)

func botCmd() *cobra.Command {
	var noSheet bool

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram order bot",
		Long: `Bot polls Telegram for incoming order messages, parses each one,
stores it in the local history, appends it to the Google Sheets ledger,
and replies with a confirmation summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := slog.Default()

			token := viper.GetString("telegram.token")
			if token == "" {
				token = os.Getenv("TELEGRAM_BOT_TOKEN")
			}

			client, err := bot.NewClient(token)
			if err != nil {
				return fmt.Errorf("failed to create telegram client: %w", err)
			}

			p, err := newParser(logger)
			if err != nil {
				return err
			}

			store, err := newStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var writer service.LedgerWriter
			if !noSheet {
				w, err := newLedgerWriter(ctx, logger)
				if err != nil {
					return fmt.Errorf("failed to create ledger writer: %w", err)
				}
				writer = w
			}

			b := bot.New(client, p, store, writer, logger)
			if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSheet, "no-sheet", false, "parse and store orders without writing to the ledger")

	return cmd
}
