package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saripos/internal/models"
)

func product(id uint, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Price: decimal.NewFromFloat(price)}
}

func TestCartAddMergesLines(t *testing.T) {
	cart := &models.Cart{}
	p := product(1, "Corned Beef", 42.50)

	cart.Add(p)
	cart.Add(p)
	cart.Add(product(2, "Pancit Canton", 15))

	require.Len(t, cart.Lines, 2, "one line per product id")
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestCartQuantityNeverZeroWhilePresent(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *models.Cart)
		wantLines int
		wantQty   int
	}{
		{
			name:      "decrement to zero removes the line",
			mutate:    func(c *models.Cart) { c.AdjustQuantity(1, -1) },
			wantLines: 0,
		},
		{
			name:      "decrement below zero removes the line",
			mutate:    func(c *models.Cart) { c.AdjustQuantity(1, -5) },
			wantLines: 0,
		},
		{
			name:      "positive delta accumulates",
			mutate:    func(c *models.Cart) { c.AdjustQuantity(1, 3) },
			wantLines: 1,
			wantQty:   4,
		},
		{
			name:      "set to zero removes the line",
			mutate:    func(c *models.Cart) { c.SetQuantity(1, 0) },
			wantLines: 0,
		},
		{
			name:      "set negative removes the line",
			mutate:    func(c *models.Cart) { c.SetQuantity(1, -3) },
			wantLines: 0,
		},
		{
			name:      "set positive replaces the quantity",
			mutate:    func(c *models.Cart) { c.SetQuantity(1, 7) },
			wantLines: 1,
			wantQty:   7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &models.Cart{}
			cart.Add(product(1, "Corned Beef", 42.50))

			tt.mutate(cart)

			require.Len(t, cart.Lines, tt.wantLines)
			for _, line := range cart.Lines {
				assert.Positive(t, line.Quantity, "no line may carry qty <= 0")
			}
			if tt.wantLines == 1 {
				assert.Equal(t, tt.wantQty, cart.Lines[0].Quantity)
			}
		})
	}
}

func TestCartAdjustUnknownProductIsNoop(t *testing.T) {
	cart := &models.Cart{}
	cart.Add(product(1, "Corned Beef", 42.50))

	cart.AdjustQuantity(99, 5)
	cart.SetQuantity(99, 5)
	cart.Remove(99)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCartClear(t *testing.T) {
	cart := &models.Cart{}
	cart.Add(product(1, "Corned Beef", 42.50))
	cart.Add(product(2, "Pancit Canton", 15))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartSnapshotCopiesLines(t *testing.T) {
	cart := &models.Cart{}
	p := product(1, "Corned Beef", 42.50)
	cart.Add(p)
	cart.Add(p)

	snap := cart.Snapshot()
	cart.Clear()

	require.Len(t, snap, 1)
	assert.Equal(t, uint(1), snap[0].ProductID)
	assert.Equal(t, 2, snap[0].Quantity)
	assert.Equal(t, "42.5", snap[0].PriceAtSale.String())
}
