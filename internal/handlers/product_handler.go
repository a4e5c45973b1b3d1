package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"saripos/internal/models"
	"saripos/internal/search"
	"saripos/internal/store"
)

// --- GET: List or search products ---
// ?q= runs the ranked fuzzy search; ?low_stock=true narrows the pool
// to products at or below the threshold before ranking.
func (h *Handler) GetProducts(c *gin.Context) {
	var pool []models.Product
	if c.Query("low_stock") == "true" {
		pool = h.Store.LowStock()
	} else {
		pool = h.Store.Products()
	}

	if q := c.Query("q"); q != "" {
		pool = search.Rank(pool, q)
	}
	if pool == nil {
		pool = []models.Product{}
	}
	c.JSON(http.StatusOK, pool)
}

// --- GET: Low-stock dashboard list ---
func (h *Handler) GetLowStock(c *gin.Context) {
	low := h.Store.LowStock()
	if low == nil {
		low = []models.Product{}
	}
	c.JSON(http.StatusOK, low)
}

// --- GET: Barcode scan lookup ---
// A miss is a transient notice to the operator, never a state change.
func (h *Handler) ScanProduct(c *gin.Context) {
	product, err := h.Store.ProductByBarcode(c.Param("barcode"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No product with that barcode"})
		return
	}
	c.JSON(http.StatusOK, product)
}

type ProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Barcode       string          `json:"barcode"`
	StockQuantity int             `json:"stock_quantity"`
}

// --- POST: Add a new product (admin) ---
func (h *Handler) AddProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
		return
	}

	product, err := h.Store.AddProduct(models.Product{
		Name:          req.Name,
		Price:         req.Price.Round(2),
		Category:      req.Category,
		Barcode:       req.Barcode,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// --- PUT: Update a product (admin, partial) ---
// Only the fields present in the body are touched.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var upd store.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if upd.Price != nil && upd.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
		return
	}

	product, err := h.Store.UpdateProduct(uint(id), upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}
