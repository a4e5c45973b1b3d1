package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saripos/internal/models"
)

// --- GET: Receipt and threshold settings ---
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Settings())
}

// --- PUT: Replace settings (admin form submits the whole object) ---
func (h *Handler) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	c.JSON(http.StatusOK, h.Store.UpdateSettings(settings))
}
