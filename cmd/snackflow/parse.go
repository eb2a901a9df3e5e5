package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse an order message and print the structured result",
		Long: `Parse interprets a single order message and prints the resulting
order record as JSON. The message is taken from the arguments, or from
stdin when no arguments are given.

With --write the order is also appended to the Google Sheets ledger.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			if message == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read message from stdin: %w", err)
				}
				message = string(data)
			}
			if strings.TrimSpace(message) == "" {
				return fmt.Errorf("no message to parse")
			}

			logger := slog.Default()
			p, err := newParser(logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			record, source := p.ParseWithSource(ctx, message, time.Now())
			logger.Debug("parsed order", "source", source)

			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode record: %w", err)
			}
			fmt.Println(string(out))

			if write {
				writer, err := newLedgerWriter(ctx, logger)
				if err != nil {
					return fmt.Errorf("failed to create ledger writer: %w", err)
				}
				if err := writer.AppendOrder(ctx, record); err != nil {
					return fmt.Errorf("failed to append order: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "append the parsed order to the ledger")

	return cmd
}
