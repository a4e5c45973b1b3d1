package store_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saripos/internal/models"
	"saripos/internal/store"
)

func TestScanByBarcode(t *testing.T) {
	s := newTestStore(t, 5)
	p, err := s.AddProduct(models.Product{
		Name: "Sardines", Price: decimal.NewFromFloat(22), Barcode: "4800024556684",
	})
	require.NoError(t, err)

	got, err := s.ProductByBarcode("4800024556684")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = s.ProductByBarcode("0000000000000")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddProductRejectsDuplicateBarcode(t *testing.T) {
	s := newTestStore(t, 5)
	_, err := s.AddProduct(models.Product{Name: "A", Barcode: "123"})
	require.NoError(t, err)

	_, err = s.AddProduct(models.Product{Name: "B", Barcode: "123"})
	assert.ErrorIs(t, err, store.ErrDuplicateBarcode)
}

func TestUpdateProductPartial(t *testing.T) {
	s := newTestStore(t, 5)
	p := addProduct(t, s, "Cooking Oil", 58.00, 12)

	newPrice := decimal.NewFromFloat(61.50)
	updated, err := s.UpdateProduct(p.ID, store.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	// Only the price moved.
	assert.Equal(t, "61.50", updated.Price.StringFixed(2))
	assert.Equal(t, "Cooking Oil", updated.Name)
	assert.Equal(t, 12, updated.StockQuantity)

	negative := -5
	updated, err = s.UpdateProduct(p.ID, store.ProductUpdate{StockQuantity: &negative})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.StockQuantity, "stock clamps at zero")
}

func TestLowStockList(t *testing.T) {
	s := newTestStore(t, 10)
	addProduct(t, s, "Plenty", 10, 50)
	atThreshold := addProduct(t, s, "At Threshold", 10, 10)
	below := addProduct(t, s, "Below", 10, 2)

	low := s.LowStock()
	require.Len(t, low, 2)
	assert.Equal(t, atThreshold.ID, low[0].ID)
	assert.Equal(t, below.ID, low[1].ID)
}

func TestNotificationFeedIsCappedAndNewestFirst(t *testing.T) {
	s := newTestStore(t, 5)
	for i := 0; i < 205; i++ {
		s.Notify(models.NotifSystem, fmt.Sprintf("event %d", i))
	}

	feed := s.Notifications()
	require.Len(t, feed, 200, "feed is bounded")
	assert.Equal(t, "event 204", feed[0].Message, "newest entry sits at the head")
	assert.Equal(t, "event 5", feed[199].Message, "oldest entries were evicted")
}

func TestMarkAllRead(t *testing.T) {
	s := newTestStore(t, 5)
	s.Notify(models.NotifSystem, "one")
	s.Notify(models.NotifAlert, "two")

	s.MarkAllRead()
	for _, n := range s.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestSeedAdminCannotBeDeleted(t *testing.T) {
	s := newTestStore(t, 5)
	require.NoError(t, s.Seed("secret123"))

	admin, err := s.UserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	assert.ErrorIs(t, s.DeleteUser(admin.ID), store.ErrSeedAdmin)
}

func TestAddAndDeleteStaff(t *testing.T) {
	s := newTestStore(t, 5)
	require.NoError(t, s.Seed("secret123"))

	u, err := s.AddUser(models.User{
		Username: "nene", DisplayName: "Nene", Role: models.RoleCashier, PasswordHash: "x",
	})
	require.NoError(t, err)

	_, err = s.AddUser(models.User{Username: "nene", Role: models.RoleCashier})
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	require.NoError(t, s.DeleteUser(u.ID))
	_, err = s.UserByUsername("nene")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateSettingsReplacesSingleton(t *testing.T) {
	s := newTestStore(t, 5)
	updated := s.UpdateSettings(models.Settings{
		StoreName:         "Aling Nena's",
		LowStockThreshold: 15,
	})
	assert.Equal(t, 15, updated.LowStockThreshold)
	assert.Equal(t, "Aling Nena's", s.Settings().StoreName)
}

func TestCartIsolationPerUser(t *testing.T) {
	s := newTestStore(t, 5)
	p := addProduct(t, s, "Shared", 10, 10)

	_, err := s.CartAdd(1, p.ID)
	require.NoError(t, err)
	_, err = s.CartAdd(2, p.ID)
	require.NoError(t, err)
	s.CartClear(2)

	assert.Len(t, s.Cart(1).Lines, 1)
	assert.Empty(t, s.Cart(2).Lines)
}

func TestCartAddUnknownProduct(t *testing.T) {
	s := newTestStore(t, 5)
	_, err := s.CartAdd(1, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
