package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderRecordDefaults(t *testing.T) {
	record := NewOrderRecord()

	assert.Equal(t, StatusUnpaid, record.PaymentStatus)
	assert.NotNil(t, record.Items)
	assert.Empty(t, record.Items)
	assert.False(t, record.HasItems())
}

func TestHashMessage(t *testing.T) {
	h1 := HashMessage(42, "2 tub cheese")
	h2 := HashMessage(42, "2 tub cheese")
	h3 := HashMessage(43, "2 tub cheese")
	h4 := HashMessage(42, "3 tub cheese")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h1, h4)
	assert.Len(t, h1, 64)
}
