package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saripos/internal/middleware"
	"saripos/internal/models"
	"saripos/internal/pricing"
)

// cartView is what the POS screen renders: the lines plus the money
// breakdown, recomputed on every read.
type cartView struct {
	Cart   models.Cart    `json:"cart"`
	Totals pricing.Totals `json:"totals"`
}

func (h *Handler) viewCart(userID uint) cartView {
	return cartView{
		Cart:   h.Store.Cart(userID),
		Totals: h.Store.CartTotals(userID),
	}
}

// --- GET: Current cart with totals ---
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.viewCart(middleware.UserID(c)))
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// --- POST: Add one unit of a product ---
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	userID := middleware.UserID(c)
	if _, err := h.Store.CartAdd(userID, req.ProductID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.viewCart(userID))
}

type UpdateCartLineRequest struct {
	// Exactly one of these is expected. Quantity wins if both appear.
	Quantity *int `json:"quantity"`
	Delta    *int `json:"delta"`
}

// --- PATCH: Change a line's quantity ---
// quantity sets the line outright (non-positive removes it);
// delta nudges it up or down (the +/- buttons).
func (h *Handler) UpdateCartLine(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var req UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	userID := middleware.UserID(c)
	switch {
	case req.Quantity != nil:
		h.Store.CartSetQuantity(userID, uint(productID), *req.Quantity)
	case req.Delta != nil:
		h.Store.CartAdjust(userID, uint(productID), *req.Delta)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide quantity or delta"})
		return
	}
	c.JSON(http.StatusOK, h.viewCart(userID))
}

// --- DELETE: Remove a line ---
func (h *Handler) RemoveCartLine(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}
	userID := middleware.UserID(c)
	h.Store.CartRemove(userID, uint(productID))
	c.JSON(http.StatusOK, h.viewCart(userID))
}

// --- DELETE: Void the whole cart ---
func (h *Handler) ClearCart(c *gin.Context) {
	userID := middleware.UserID(c)
	h.Store.CartClear(userID)
	c.JSON(http.StatusOK, h.viewCart(userID))
}
