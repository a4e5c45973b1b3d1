package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"saripos/internal/models"
)

// TopSeller is one row of the best-sellers table.
type TopSeller struct {
	ProductName string          `json:"product_name"`
	Sold        int             `json:"sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ReportData defines the shape of our analytics response
type ReportData struct {
	TotalRevenue decimal.Decimal     `json:"total_revenue"`
	TotalOrders  int                 `json:"total_orders"`
	TopSelling   []TopSeller         `json:"top_selling"`
	RecentSales  []models.SaleRecord `json:"recent_sales"`
}

// --- GET: /api/reports ---
// Everything is recomputed from the in-memory ledger on each call;
// the ledger is small enough that a full scan is the simplest thing
// that works.
func (h *Handler) GetSalesReport(c *gin.Context) {
	sales := h.Store.Sales()

	data := ReportData{
		TotalRevenue: decimal.Zero,
		TopSelling:   []TopSeller{},
		RecentSales:  []models.SaleRecord{},
	}

	// 1. Revenue and order count, all time
	type tally struct {
		sold    int
		revenue decimal.Decimal
	}
	byProduct := make(map[string]*tally)
	for _, sale := range sales {
		data.TotalRevenue = data.TotalRevenue.Add(sale.Total)
		data.TotalOrders++
		for _, item := range sale.Items {
			t, ok := byProduct[item.Name]
			if !ok {
				t = &tally{revenue: decimal.Zero}
				byProduct[item.Name] = t
			}
			t.sold += item.Quantity
			t.revenue = t.revenue.Add(item.PriceAtSale.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	// 2. Top 5 best sellers by units
	for name, t := range byProduct {
		data.TopSelling = append(data.TopSelling, TopSeller{ProductName: name, Sold: t.sold, Revenue: t.revenue})
	}
	sort.SliceStable(data.TopSelling, func(i, j int) bool { return data.TopSelling[i].Sold > data.TopSelling[j].Sold })
	if len(data.TopSelling) > 5 {
		data.TopSelling = data.TopSelling[:5]
	}

	// 3. Last 10 sales, newest first
	for i := len(sales) - 1; i >= 0 && len(data.RecentSales) < 10; i-- {
		data.RecentSales = append(data.RecentSales, sales[i])
	}

	c.JSON(http.StatusOK, data)
}

// --- DATA STRUCTURES FOR VALUATION REPORT ---

// ValuationItem represents a single row in the valuation table
type ValuationItem struct {
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// CategoryGroup represents one category's table
type CategoryGroup struct {
	CategoryName string          `json:"category_name"`
	Items        []ValuationItem `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// ValuationResponse is the final payload
type ValuationResponse struct {
	Categories []CategoryGroup `json:"categories"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// --- GET: /api/reports/valuation ---
// GetStockValuation prices the physical inventory at retail, grouped
// by category.
func (h *Handler) GetStockValuation(c *gin.Context) {
	products := h.Store.Products()

	grandTotal := decimal.Zero
	groupedMap := make(map[string]*CategoryGroup)
	var order []string

	for _, p := range products {
		catName := p.Category
		if catName == "" {
			catName = "Uncategorized"
		}

		group, exists := groupedMap[catName]
		if !exists {
			group = &CategoryGroup{CategoryName: catName, Items: []ValuationItem{}, Subtotal: decimal.Zero}
			groupedMap[catName] = group
			order = append(order, catName)
		}

		itemTotal := p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
		group.Items = append(group.Items, ValuationItem{
			Name:       p.Name,
			Quantity:   p.StockQuantity,
			UnitPrice:  p.Price,
			TotalValue: itemTotal,
		})
		group.Subtotal = group.Subtotal.Add(itemTotal)
		grandTotal = grandTotal.Add(itemTotal)
	}

	response := ValuationResponse{GrandTotal: grandTotal, Categories: []CategoryGroup{}}
	for _, catName := range order {
		response.Categories = append(response.Categories, *groupedMap[catName])
	}

	c.JSON(http.StatusOK, response)
}
