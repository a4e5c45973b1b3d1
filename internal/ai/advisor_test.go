package ai

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"saripos/internal/models"
)

// Without an API key the advisor must answer instantly with its
// fallback strings and never touch the network.

func TestDisabledAdvisorFallsBack(t *testing.T) {
	advisor := New("", "gemini-2.0-flash-001")
	assert.False(t, advisor.Enabled())

	ctx := context.Background()
	low := []models.Product{{Name: "Coffee", StockQuantity: 2}}

	assert.Equal(t, fallbackRestock, advisor.RestockAdvice(ctx, low))
	assert.Equal(t, fallbackCommentary, advisor.SalesCommentary(ctx, decimal.NewFromInt(100), 3, time.Now()))
	assert.Equal(t, fallbackTagline, advisor.ReceiptTagline(ctx, "Test Store"))
}

func TestRestockAdviceWithNothingLow(t *testing.T) {
	advisor := New("", "gemini-2.0-flash-001")
	got := advisor.RestockAdvice(context.Background(), nil)
	assert.Contains(t, got, "Nothing to reorder")
}
