package store

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"saripos/internal/models"
)

// Seed loads the demo catalog and the protected admin account. The
// admin password comes from configuration so demo deployments can
// override the default.
func (s *Store) Seed(adminPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	admin := models.User{
		ID:           s.nextUserID,
		Username:     "admin",
		PasswordHash: string(hash),
		DisplayName:  "Store Admin",
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	s.nextUserID++
	s.users = append(s.users, admin)
	s.seedAdminID = admin.ID

	for _, p := range []models.Product{
		{Name: "CDO Corned Beef", Price: decimal.NewFromFloat(42.50), Category: "Canned Goods", Barcode: "4800024556677", StockQuantity: 25},
		{Name: "Sardines in Tomato Sauce", Price: decimal.NewFromFloat(22.00), Category: "Canned Goods", Barcode: "4800024556684", StockQuantity: 40},
		{Name: "Instant Pancit Canton", Price: decimal.NewFromFloat(15.00), Category: "Noodles", Barcode: "4807770190018", StockQuantity: 60},
		{Name: "3-in-1 Coffee Sachet", Price: decimal.NewFromFloat(8.50), Category: "Beverages", Barcode: "4800361001922", StockQuantity: 100},
		{Name: "Soft Drink 1.5L", Price: decimal.NewFromFloat(75.00), Category: "Beverages", Barcode: "4801981122318", StockQuantity: 18},
		{Name: "Laundry Bar Soap", Price: decimal.NewFromFloat(24.75), Category: "Household", Barcode: "4800047889912", StockQuantity: 30},
		{Name: "Cooking Oil 485ml", Price: decimal.NewFromFloat(58.00), Category: "Condiments", Barcode: "4800016644431", StockQuantity: 12},
		{Name: "White Bread Loaf", Price: decimal.NewFromFloat(52.00), Category: "Bakery", Barcode: "4800888812345", StockQuantity: 10},
	} {
		p.ID = s.nextProductID
		s.nextProductID++
		s.products = append(s.products, p)
	}

	s.pushNotification(models.NotifSystem, "System initialized with demo catalog")
	return nil
}
