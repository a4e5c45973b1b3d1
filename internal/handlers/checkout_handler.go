package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"saripos/internal/middleware"
)

type CheckoutRequest struct {
	Tendered decimal.Decimal `json:"tendered" binding:"required"`
}

// --- POST: Settle the in-progress sale ---
// The store does the whole unit of work atomically; a rejection
// (empty cart, insufficient cash) leaves everything untouched.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tendered amount is required"})
		return
	}

	receipt, err := h.Store.Confirm(middleware.UserID(c), req.Tendered)
	if err != nil {
		fail(c, err)
		return
	}

	// Write-behind to the optional durable archive. Best-effort and
	// off the request path; the in-memory ledger is authoritative.
	go h.Archive.Record(receipt.Sale)

	c.JSON(http.StatusOK, receipt)
}
