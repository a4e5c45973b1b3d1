package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saripos/internal/middleware"
	"saripos/internal/models"
	"saripos/internal/store"
)

type DeliveryRequest struct {
	Items []models.DeliveryItem `json:"items" binding:"required"`
}

// --- POST: Submit a restock receipt (inventory staff) ---
// Stock is not touched until an admin approves.
func (h *Handler) SubmitDelivery(c *gin.Context) {
	var req DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	delivery, err := h.Store.SubmitDelivery(middleware.UserID(c), req.Items)
	if err != nil {
		if err == store.ErrNotFound {
			fail(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, delivery)
}

// --- GET: All restock receipts ---
func (h *Handler) GetDeliveries(c *gin.Context) {
	deliveries := h.Store.Deliveries()
	if deliveries == nil {
		deliveries = []models.Delivery{}
	}
	c.JSON(http.StatusOK, deliveries)
}

// --- POST: Approve a pending receipt (admin) ---
func (h *Handler) ApproveDelivery(c *gin.Context) {
	delivery, err := h.Store.ApproveDelivery(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// --- POST: Reject a pending receipt (admin) ---
func (h *Handler) RejectDelivery(c *gin.Context) {
	delivery, err := h.Store.RejectDelivery(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}
