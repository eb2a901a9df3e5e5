package bot

import (
	"fmt"
	"strings"

	"github.com/ninamercado/snackflow/internal/catalog"
	"github.com/ninamercado/snackflow/internal/model"
)

// renderSummary formats a confirmation message for the customer-facing
// chat reply.
func renderSummary(order model.OrderRecord) string {
	var lines []string

	if order.CustomerName != "" {
		lines = append(lines, fmt.Sprintf("Customer: %s", order.CustomerName))
	}

	if len(order.Items) > 0 {
		lines = append(lines, "Items:")
		for _, item := range order.Items {
			if p, ok := catalog.Lookup(item.ProductCode); ok {
				lines = append(lines, fmt.Sprintf("  • %dx %s %s", item.Quantity, p.Size, p.Flavor))
			} else {
				lines = append(lines, fmt.Sprintf("  • %dx %s", item.Quantity, item.ProductCode))
			}
		}
	}

	if order.PaymentMethod != "" {
		lines = append(lines, fmt.Sprintf("Payment: %s", order.PaymentMethod))
	}
	if order.CustomerLocation != "" {
		lines = append(lines, fmt.Sprintf("Location: %s", order.CustomerLocation))
	}
	if order.ShippingFee != nil {
		lines = append(lines, fmt.Sprintf("Shipping: ₱%d", *order.ShippingFee))
	}
	if order.DiscountAmount != nil {
		lines = append(lines, fmt.Sprintf("Discount: ₱%d", *order.DiscountAmount))
	}
	if order.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", order.Notes))
	}

	if len(lines) == 0 {
		return "Sorry, I couldn't find an order in that message."
	}

	return strings.Join(lines, "\n")
}
