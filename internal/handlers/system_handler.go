package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saripos/internal/utils"
)

// --- GET: Terminal identity for the status screen ---
// The terminal id also prints on receipts so support can tell which
// till a sale came from.
func (h *Handler) GetSystemStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"terminal_id":      utils.TerminalID(),
		"advisory_enabled": h.Advisor.Enabled(),
	})
}
