// Package pricing derives the money figures for a cart. Everything
// here is a pure computation over the current lines, recomputed on
// every call; nothing is cached.
package pricing

import (
	"github.com/shopspring/decimal"

	"saripos/internal/models"
)

// Prices are VAT-inclusive: the 12% tax is already inside the shelf
// price, so the tax-exclusive base is price / 1.12.
var vatDivisor = decimal.NewFromFloat(1.12)

// Totals is the full money breakdown for a cart.
type Totals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Total        decimal.Decimal `json:"total"`
	VatableSales decimal.Decimal `json:"vatable_sales"`
	VATAmount    decimal.Decimal `json:"vat_amount"`
}

// Compute derives subtotal, total, VAT-exclusive base and VAT amount
// from the cart lines. All figures are rounded half-up to 2 decimal
// places so the receipt never shows cent drift.
func Compute(cart *models.Cart) Totals {
	subtotal := decimal.Zero
	for _, line := range cart.Lines {
		subtotal = subtotal.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	subtotal = subtotal.Round(2)

	// No discounts, surcharges or rounding rules: total is the subtotal.
	total := subtotal

	vatable := total.DivRound(vatDivisor, 2)
	vat := total.Sub(vatable)

	return Totals{
		Subtotal:     subtotal,
		Total:        total,
		VatableSales: vatable,
		VATAmount:    vat,
	}
}

// Change returns tendered − total. It is defined only when the
// tendered cash covers the total; ok is false otherwise and the
// returned amount is zero.
func Change(total, tendered decimal.Decimal) (decimal.Decimal, bool) {
	if tendered.LessThan(total) {
		return decimal.Zero, false
	}
	return tendered.Sub(total).Round(2), true
}
