package parser

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ninamercado/snackflow/internal/catalog"
	"github.com/ninamercado/snackflow/internal/model"
)

// titleCase title-cases a customer name. The Caser is built per call: a
// cases.Caser carries internal state and must not be shared between
// goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Normalize applies the shared post-processing invariants to a raw record
// from either strategy. It is idempotent: normalizing twice yields the
// same record.
//
// Steps, in order: title-case the customer name, derive the peso discount
// from a percentage when only the percentage is known, enforce discount
// mutual exclusivity with the peso amount winning, and drop line items
// that are not catalog-valid with a positive quantity.
func Normalize(record model.OrderRecord) model.OrderRecord {
	if record.CustomerName != "" {
		record.CustomerName = titleCase(record.CustomerName)
	}

	if record.PaymentStatus == "" {
		record.PaymentStatus = model.StatusUnpaid
	}

	if record.DiscountPercentage != nil && record.DiscountAmount == nil && len(record.Items) > 0 {
		subtotal := catalog.Subtotal(record.Items)
		amount := int(float64(subtotal) * (*record.DiscountPercentage) / 100)
		record.DiscountAmount = &amount
	}

	// Peso amount is authoritative once both are populated.
	if record.DiscountAmount != nil && record.DiscountPercentage != nil {
		record.DiscountPercentage = nil
	}

	valid := make([]model.LineItem, 0, len(record.Items))
	for _, item := range record.Items {
		if catalog.Valid(item.ProductCode) && item.Quantity >= 1 {
			valid = append(valid, item)
		}
	}
	record.Items = valid

	if record.Confidence < 0 {
		record.Confidence = 0
	} else if record.Confidence > 1 {
		record.Confidence = 1
	}

	return record
}
