package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func ordersCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List recently recorded orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := newStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			orders, err := store.ListRecentOrders(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			if len(orders) == 0 {
				fmt.Println("No orders recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCUSTOMER\tITEMS\tSOURCE")
			for _, order := range orders {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					order.CreatedAt.Format("2006-01-02 15:04"),
					order.Record.CustomerName,
					len(order.Record.Items),
					order.Source)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of orders to show")

	return cmd
}
