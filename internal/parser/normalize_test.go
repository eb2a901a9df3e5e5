package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninamercado/snackflow/internal/model"
)

func TestNormalizeIdempotent(t *testing.T) {
	pct := 10.0
	record := model.OrderRecord{
		CustomerName:       "maria santos",
		PaymentStatus:      model.StatusUnpaid,
		DiscountPercentage: &pct,
		Items: []model.LineItem{
			{ProductCode: "P-CHZ", Quantity: 2},
			{ProductCode: "BOGUS", Quantity: 1},
		},
		Confidence: 0.9,
	}

	once := Normalize(record)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeMutualExclusivity(t *testing.T) {
	pct := 20.0
	amount := 75

	t.Run("both populated keeps amount", func(t *testing.T) {
		record := Normalize(model.OrderRecord{
			DiscountPercentage: &pct,
			DiscountAmount:     &amount,
			Items:              []model.LineItem{{ProductCode: "P-OG", Quantity: 1}},
		})

		assert.Nil(t, record.DiscountPercentage)
		require.NotNil(t, record.DiscountAmount)
		assert.Equal(t, 75, *record.DiscountAmount)
	})

	t.Run("percentage converts and clears", func(t *testing.T) {
		record := Normalize(model.OrderRecord{
			DiscountPercentage: &pct,
			Items:              []model.LineItem{{ProductCode: "2L-BBQ", Quantity: 1}},
		})

		assert.Nil(t, record.DiscountPercentage)
		require.NotNil(t, record.DiscountAmount)
		// floor(290 * 0.20) = 58
		assert.Equal(t, 58, *record.DiscountAmount)
	})

	t.Run("conversion floors fractional pesos", func(t *testing.T) {
		oddPct := 7.0
		record := Normalize(model.OrderRecord{
			DiscountPercentage: &oddPct,
			Items:              []model.LineItem{{ProductCode: "P-CHZ", Quantity: 1}},
		})

		require.NotNil(t, record.DiscountAmount)
		// floor(150 * 0.07) = floor(10.5) = 10
		assert.Equal(t, 10, *record.DiscountAmount)
	})

	t.Run("conversion skips invalid items", func(t *testing.T) {
		record := Normalize(model.OrderRecord{
			DiscountPercentage: &pct,
			Items: []model.LineItem{
				{ProductCode: "P-CHZ", Quantity: 2},
				{ProductCode: "XL-NOPE", Quantity: 5},
			},
		})

		require.NotNil(t, record.DiscountAmount)
		// Subtotal counts only P-CHZ: floor(300 * 0.20) = 60
		assert.Equal(t, 60, *record.DiscountAmount)
	})
}

func TestNormalizeItemFiltering(t *testing.T) {
	record := Normalize(model.OrderRecord{
		Items: []model.LineItem{
			{ProductCode: "P-CHZ", Quantity: 2},
			{ProductCode: "P-CHZ", Quantity: 0},
			{ProductCode: "P-CHZ", Quantity: -3},
			{ProductCode: "XL-CHZ", Quantity: 1},
			{ProductCode: "2L-SC", Quantity: 1},
		},
	})

	assert.Equal(t, []model.LineItem{
		{ProductCode: "P-CHZ", Quantity: 2},
		{ProductCode: "2L-SC", Quantity: 1},
	}, record.Items)
}

func TestNormalizeTitleCasesName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"maria santos", "Maria Santos"},
		{"JUAN DELA CRUZ", "Juan Dela Cruz"},
		{"Ana", "Ana"},
		{"", ""},
	}

	for _, tt := range tests {
		record := Normalize(model.OrderRecord{CustomerName: tt.in})
		assert.Equal(t, tt.want, record.CustomerName)
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	message := "maria clara santos\n2 tub cheese\ngcash\nqc"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				record := Normalize(parseDeterministic(message))
				assert.Equal(t, "Maria Clara Santos", record.CustomerName)
			}
		}()
	}
	wg.Wait()
}

func TestNormalizeDefaultsAndClamps(t *testing.T) {
	record := Normalize(model.OrderRecord{Confidence: 1.7})
	assert.Equal(t, model.StatusUnpaid, record.PaymentStatus)
	assert.Equal(t, 1.0, record.Confidence)

	record = Normalize(model.OrderRecord{Confidence: -0.2})
	assert.Equal(t, 0.0, record.Confidence)
}
