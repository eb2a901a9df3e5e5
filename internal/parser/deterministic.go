package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ninamercado/snackflow/internal/model"
)

// The deterministic strategy always reports this confidence.
const regexConfidence = 0.7

var (
	shippingFeeRe  = regexp.MustCompile(`(?:sf|shipping|delivery|padala|hatid).*?(\d+)`)
	pesoDiscountRe = regexp.MustCompile(`(?:discount|off|bawas).*?(\d+)\s*(?:pesos?|php|₱)`)
	pctDiscountRe  = regexp.MustCompile(`(?:discount|off|bawas).*?(\d+)%?`)
)

var nameStopwords = []string{"pouch", "tub", "gcash", "bpi", "maya"}

var paidKeywords = []string{
	"paid", "bayad na", "nabayad na", "settled", "payment done",
	"paid already", "paid via", "transferred already", "payment received",
	"received payment", "confirmed payment", "paid cash", "cash paid",
	"transferred", "sent payment",
}

// parseDeterministic extracts an order from a message using line-oriented
// keyword and regex matching. It needs no network access and always
// succeeds; the result still goes through Normalize for the shared
// invariants.
func parseDeterministic(message string) model.OrderRecord {
	result := model.NewOrderRecord()
	result.Confidence = regexConfidence

	for _, raw := range strings.Split(message, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		// Customer name: first short line that mentions no product or
		// payment keyword. The line is consumed entirely.
		if result.CustomerName == "" && len(strings.Fields(line)) <= 3 && !containsAny(lower, nameStopwords) {
			result.CustomerName = titleCase(line)
			continue
		}

		if method := matchPaymentMethod(lower); method != "" {
			result.PaymentMethod = method
		}

		if containsAny(lower, paidKeywords) {
			result.PaymentStatus = model.StatusPaid
		}

		if loc := matchLocation(lower); loc != "" {
			result.CustomerLocation = loc
		}

		if result.ShippingFee == nil {
			if m := shippingFeeRe.FindStringSubmatch(lower); m != nil {
				if fee, err := strconv.Atoi(m[1]); err == nil {
					result.ShippingFee = &fee
				}
			}
		}

		// Peso amounts take priority over bare numbers, which are read
		// as percentages.
		if m := pesoDiscountRe.FindStringSubmatch(lower); m != nil {
			if amount, err := strconv.Atoi(m[1]); err == nil {
				result.DiscountAmount = &amount
			}
		} else if m := pctDiscountRe.FindStringSubmatch(lower); m != nil {
			if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
				result.DiscountPercentage = &pct
			}
		}

		result.Items = append(result.Items, extractItems(line)...)
	}

	return result
}

// matchPaymentMethod resolves a payment method mention, checking the more
// specific providers before the generic "cash".
func matchPaymentMethod(lower string) model.PaymentMethod {
	switch {
	case containsAny(lower, []string{"gcash", "g-cash", "g cash"}):
		return model.PaymentGcash
	case strings.Contains(lower, "bpi"):
		return model.PaymentBPI
	case containsAny(lower, []string{"maya", "paymaya", "pay maya"}):
		return model.PaymentMaya
	case containsAny(lower, []string{"cash", "cod", "cash on delivery"}):
		return model.PaymentCash
	case strings.Contains(lower, "bdo"):
		return model.PaymentBDO
	default:
		return ""
	}
}

func matchLocation(lower string) string {
	switch {
	case containsAny(lower, []string{"qc", "quezon city", "quezon"}):
		return model.LocationQuezonCity
	case containsAny(lower, []string{"paranaque", "parañaque", "paranañaque"}):
		return model.LocationParanaque
	default:
		return ""
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
