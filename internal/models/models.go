package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User - The person operating the terminal
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Product - The Inventory
type Product struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	Barcode       string          `json:"barcode"` // Unique, used as scan lookup key
	StockQuantity int             `json:"stock_quantity"`
}

// SaleItem - Snapshot of one cart line at the moment of sale
type SaleItem struct {
	ProductID   uint            `json:"product_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
}

// SaleRecord - The Transaction Header. Immutable once created:
// it is a historical fact, never edited or deleted.
type SaleRecord struct {
	ID          string          `json:"id"`
	Customer    string          `json:"customer"`
	CashierID   uint            `json:"cashier_id"`
	CashierName string          `json:"cashier_name"`
	Items       []SaleItem      `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Tendered    decimal.Decimal `json:"tendered"`
	Change      decimal.Decimal `json:"change"`
	SaleTime    time.Time       `json:"sale_time"`
}

// NotificationType classifies feed entries.
type NotificationType string

const (
	NotifSale     NotificationType = "sale"
	NotifAlert    NotificationType = "alert"
	NotifSystem   NotificationType = "system"
	NotifDelivery NotificationType = "delivery"
)

// Notification - one entry in the alert feed
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}

// DeliveryStatus tracks a restock receipt through admin review.
type DeliveryStatus string

const (
	DeliveryPending  DeliveryStatus = "pending"
	DeliveryApproved DeliveryStatus = "approved"
	DeliveryRejected DeliveryStatus = "rejected"
)

// DeliveryItem - one line of a restock receipt
type DeliveryItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Delivery - a restock receipt submitted by inventory staff,
// pending admin approval before stock is incremented.
type Delivery struct {
	ID          string         `json:"id"`
	Items       []DeliveryItem `json:"items"`
	Status      DeliveryStatus `json:"status"`
	SubmittedBy uint           `json:"submitted_by"`
	SubmittedAt time.Time      `json:"submitted_at"`
	ReviewedAt  *time.Time     `json:"reviewed_at,omitempty"`
}

// Settings - process-wide receipt and threshold configuration.
// Singleton: mutated only via the admin settings form, read by
// checkout and the dashboard.
type Settings struct {
	StoreName         string `json:"store_name"`
	Address           string `json:"address"`
	TaxID             string `json:"tax_id"`
	ReceiptFooter     string `json:"receipt_footer"`
	PaperWidth        int    `json:"paper_width"`
	FontSize          int    `json:"font_size"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}
