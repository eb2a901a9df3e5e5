// Package model defines the core domain models used throughout the application.
package model

// PaymentMethod identifies how a customer pays for an order.
type PaymentMethod string

// Payment method constants.
const (
	PaymentGcash  PaymentMethod = "Gcash"
	PaymentBPI    PaymentMethod = "BPI"
	PaymentMaya   PaymentMethod = "Maya"
	PaymentCash   PaymentMethod = "Cash"
	PaymentBDO    PaymentMethod = "BDO"
	PaymentOthers PaymentMethod = "Others"
)

// PaymentStatus indicates whether an order has been paid for.
type PaymentStatus string

// Payment status constants.
const (
	StatusPaid   PaymentStatus = "Paid"
	StatusUnpaid PaymentStatus = "Unpaid"
)

// Known delivery areas.
const (
	LocationQuezonCity = "Quezon City"
	LocationParanaque  = "Paranaque"
)

// LineItem is a single product entry in an order.
type LineItem struct {
	ProductCode string `json:"product_code"`
	Quantity    int    `json:"quantity"`
}

// OrderRecord is the structured result of interpreting one chat message.
// Pointer fields distinguish "absent" from zero: a discount of 0 pesos is
// not the same as no discount mentioned.
type OrderRecord struct {
	CustomerName       string        `json:"customer_name,omitempty"`
	PaymentMethod      PaymentMethod `json:"payment_method,omitempty"`
	CustomerLocation   string        `json:"customer_location,omitempty"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	Notes              string        `json:"notes,omitempty"`
	DiscountPercentage *float64      `json:"discount_percentage,omitempty"`
	DiscountAmount     *int          `json:"discount_amount,omitempty"`
	ShippingFee        *int          `json:"shipping_fee,omitempty"`
	Items              []LineItem    `json:"items"`
	Confidence         float64       `json:"confidence"`
}

// NewOrderRecord returns an empty record with the defaults applied.
func NewOrderRecord() OrderRecord {
	return OrderRecord{
		PaymentStatus: StatusUnpaid,
		Items:         []LineItem{},
	}
}

// HasItems reports whether any line items were extracted.
func (o *OrderRecord) HasItems() bool {
	return len(o.Items) > 0
}
