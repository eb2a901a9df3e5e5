package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninamercado/snackflow/internal/model"
)

func TestExtractItems(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []model.LineItem
	}{
		{
			name: "explicit unit phrase",
			line: "2 tub cheese",
			want: []model.LineItem{{ProductCode: "2L-CHZ", Quantity: 2}},
		},
		{
			name: "unit phrase with of",
			line: "one tub of sour cream",
			want: []model.LineItem{{ProductCode: "2L-SC", Quantity: 1}},
		},
		{
			name: "filipino quantity and flavor",
			line: "dalawang pouch ng keso",
			want: []model.LineItem{{ProductCode: "P-CHZ", Quantity: 2}},
		},
		{
			name: "size defaults to pouch",
			line: "3 bbq",
			want: []model.LineItem{{ProductCode: "P-BBQ", Quantity: 3}},
		},
		{
			name: "malaki means tub",
			line: "1 malaki original",
			want: []model.LineItem{{ProductCode: "2L-OG", Quantity: 1}},
		},
		{
			name: "gram size indicator",
			line: "2 200g barbecue",
			want: []model.LineItem{{ProductCode: "2L-BBQ", Quantity: 2}},
		},
		{
			name: "loose phrase with x",
			line: "4x plain",
			want: []model.LineItem{{ProductCode: "P-OG", Quantity: 4}},
		},
		{
			name: "multiple loose items",
			line: "2x cheese, 1x bbq",
			want: []model.LineItem{
				{ProductCode: "P-CHZ", Quantity: 2},
				{ProductCode: "P-BBQ", Quantity: 1},
			},
		},
		{
			name: "phone number is not a quantity",
			line: "09171234567",
			want: nil,
		},
		{
			name: "phone number alongside an item",
			line: "09171234567 2 pouch bbq",
			want: []model.LineItem{{ProductCode: "P-BBQ", Quantity: 2}},
		},
		{
			name: "unknown flavor is discarded",
			line: "2 tub chocolate",
			want: nil,
		},
		{
			name: "no item text",
			line: "gcash",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractItems(tt.line)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractItemsUnitPhraseCap(t *testing.T) {
	// The explicit unit phrase family yields at most one item per line.
	got := extractItems("2 tub cheese and 1 pouch bbq")
	require.Len(t, got, 1)
	assert.Equal(t, "2L-CHZ", got[0].ProductCode)
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 7, parseQuantity("7"))
	assert.Equal(t, 2, parseQuantity("dalawa"))
	assert.Equal(t, 10, parseQuantity("sampung"))
	assert.Equal(t, 5, parseQuantity("five"))
	assert.Equal(t, 1, parseQuantity("kalahati"))
}
