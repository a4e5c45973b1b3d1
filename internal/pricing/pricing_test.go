package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saripos/internal/models"
	"saripos/internal/pricing"
)

func cartWith(lines ...models.CartLine) *models.Cart {
	return &models.Cart{Lines: lines}
}

func line(price float64, qty int) models.CartLine {
	return models.CartLine{
		Product:  models.Product{Price: decimal.NewFromFloat(price)},
		Quantity: qty,
	}
}

func TestComputeVATBreakdown(t *testing.T) {
	// 42.50 × 2 + 15.00 × 1 = 100.00
	totals := pricing.Compute(cartWith(line(42.50, 2), line(15.00, 1)))

	assert.Equal(t, "100.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "100.00", totals.Total.StringFixed(2))
	assert.Equal(t, "89.29", totals.VatableSales.StringFixed(2))
	assert.Equal(t, "10.71", totals.VATAmount.StringFixed(2))

	// Base and VAT must reassemble the total exactly.
	assert.True(t, totals.VatableSales.Add(totals.VATAmount).Equal(totals.Total))
}

func TestComputeEmptyCart(t *testing.T) {
	totals := pricing.Compute(&models.Cart{})
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.VATAmount.IsZero())
}

func TestComputeRoundsToTwoPlaces(t *testing.T) {
	totals := pricing.Compute(cartWith(line(9.99, 3)))
	assert.Equal(t, "29.97", totals.Total.StringFixed(2))
	// 29.97 / 1.12 = 26.758928... → 26.76 half-up
	assert.Equal(t, "26.76", totals.VatableSales.StringFixed(2))
	assert.Equal(t, "3.21", totals.VATAmount.StringFixed(2))
}

func TestChange(t *testing.T) {
	tests := []struct {
		name       string
		total      string
		tendered   string
		wantChange string
		wantOK     bool
	}{
		{"exact payment", "100.00", "100.00", "0.00", true},
		{"overpayment", "100.00", "200.00", "100.00", true},
		{"centavo-level change", "99.25", "100.00", "0.75", true},
		{"insufficient", "50.00", "40.00", "", false},
		{"short by one centavo", "50.00", "49.99", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			tendered := decimal.RequireFromString(tt.tendered)

			change, ok := pricing.Change(total, tendered)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantChange, change.StringFixed(2))
			}
		})
	}
}
