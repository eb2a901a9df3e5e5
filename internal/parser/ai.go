package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ninamercado/snackflow/internal/common"
	"github.com/ninamercado/snackflow/internal/model"
)

const completionMaxTokens = 1000

// aiOrder is the wire shape the oracle is instructed to return. Numeric
// fields are decoded as float64 because completion output makes no
// int/float distinction.
type aiOrder struct {
	CustomerName       *string  `json:"customer_name"`
	PaymentMethod      *string  `json:"payment_method"`
	CustomerLocation   *string  `json:"customer_location"`
	PaymentStatus      *string  `json:"payment_status"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	DiscountAmount     *float64 `json:"discount_amount"`
	ShippingFee        *float64 `json:"shipping_fee"`
	Items              []struct {
		ProductCode string  `json:"product_code"`
		Quantity    float64 `json:"quantity"`
	} `json:"items"`
	Confidence float64 `json:"confidence"`
	Notes      *string `json:"notes"`
}

// parseWithAI sends the instruction prompt to the completion oracle and
// strictly decodes its answer. Any failure propagates so the caller can
// fall back to the deterministic strategy.
func (p *Parser) parseWithAI(ctx context.Context, message string, now time.Time) (model.OrderRecord, error) {
	prompt := buildPrompt(message, now)

	completion, err := p.client.Complete(ctx, prompt, completionMaxTokens)
	if err != nil {
		return model.OrderRecord{}, fmt.Errorf("%w: %v", common.ErrOracleUnavailable, err)
	}

	record, err := decodeCompletion(completion)
	if err != nil {
		return model.OrderRecord{}, err
	}

	return Normalize(record), nil
}

// decodeCompletion parses the oracle's text output as JSON, tolerating an
// optional markdown code fence around it.
func decodeCompletion(completion string) (model.OrderRecord, error) {
	text := stripCodeFence(completion)

	var raw aiOrder
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return model.OrderRecord{}, fmt.Errorf("%w: %v", common.ErrBadCompletion, err)
	}

	record := model.NewOrderRecord()
	if raw.CustomerName != nil {
		record.CustomerName = *raw.CustomerName
	}
	if raw.PaymentMethod != nil {
		record.PaymentMethod = normalizePaymentMethod(*raw.PaymentMethod)
	}
	if raw.CustomerLocation != nil {
		record.CustomerLocation = *raw.CustomerLocation
	}
	if raw.PaymentStatus != nil && *raw.PaymentStatus == string(model.StatusPaid) {
		record.PaymentStatus = model.StatusPaid
	}
	record.DiscountPercentage = raw.DiscountPercentage
	if raw.DiscountAmount != nil {
		amount := int(*raw.DiscountAmount)
		record.DiscountAmount = &amount
	}
	if raw.ShippingFee != nil {
		fee := int(*raw.ShippingFee)
		record.ShippingFee = &fee
	}
	for _, item := range raw.Items {
		record.Items = append(record.Items, model.LineItem{
			ProductCode: item.ProductCode,
			Quantity:    int(item.Quantity),
		})
	}
	record.Confidence = raw.Confidence
	if raw.Notes != nil {
		record.Notes = *raw.Notes
	}

	return record, nil
}

// stripCodeFence removes a surrounding ``` or ```json wrapper if present.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// normalizePaymentMethod maps oracle output onto the known payment
// methods, keeping unknown non-empty values as Others.
func normalizePaymentMethod(method string) model.PaymentMethod {
	switch model.PaymentMethod(method) {
	case model.PaymentGcash, model.PaymentBPI, model.PaymentMaya,
		model.PaymentCash, model.PaymentBDO, model.PaymentOthers:
		return model.PaymentMethod(method)
	}
	if method == "" {
		return ""
	}
	return model.PaymentOthers
}
