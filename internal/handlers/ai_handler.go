package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// The advisory endpoints never fail: on any problem with the external
// text service the advisor itself substitutes a fallback string, so
// these handlers always answer 200 with some usable text.

// --- POST: Restock suggestion over the low-stock list ---
func (h *Handler) RestockAdvice(c *gin.Context) {
	advice := h.Advisor.RestockAdvice(c.Request.Context(), h.Store.LowStock())
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

// --- POST: Commentary on the last 7 days of sales ---
func (h *Handler) SalesCommentary(c *gin.Context) {
	since := time.Now().AddDate(0, 0, -7)
	summary := h.Store.SummarizeSales(since, time.Now())
	commentary := h.Advisor.SalesCommentary(c.Request.Context(), summary.TotalRevenue, summary.TotalCount, since)
	c.JSON(http.StatusOK, gin.H{"commentary": commentary})
}

// --- GET: One-line tagline for the receipt footer ---
func (h *Handler) ReceiptTagline(c *gin.Context) {
	tagline := h.Advisor.ReceiptTagline(c.Request.Context(), h.Store.Settings().StoreName)
	c.JSON(http.StatusOK, gin.H{"tagline": tagline})
}
