package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saripos/internal/models"
	"saripos/internal/store"
)

const inventoryStaff uint = 7

func TestDeliveryApprovalIncrementsStock(t *testing.T) {
	s := newTestStore(t, 5)
	oil := addProduct(t, s, "Cooking Oil", 58.00, 12)
	soap := addProduct(t, s, "Laundry Soap", 24.75, 30)

	d, err := s.SubmitDelivery(inventoryStaff, []models.DeliveryItem{
		{ProductID: oil.ID, Quantity: 24},
		{ProductID: soap.ID, Quantity: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryPending, d.Status)

	// Stock untouched until the admin signs off.
	got, err := s.Product(oil.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.StockQuantity)

	approved, err := s.ApproveDelivery(d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryApproved, approved.Status)
	require.NotNil(t, approved.ReviewedAt)

	got, err = s.Product(oil.ID)
	require.NoError(t, err)
	assert.Equal(t, 36, got.StockQuantity)
	got, err = s.Product(soap.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.StockQuantity)

	assert.Equal(t, 1, countNotifications(s, models.NotifDelivery))
}

func TestDeliveryRejectLeavesStockAlone(t *testing.T) {
	s := newTestStore(t, 5)
	p := addProduct(t, s, "Sardines", 22.00, 40)

	d, err := s.SubmitDelivery(inventoryStaff, []models.DeliveryItem{{ProductID: p.ID, Quantity: 5}})
	require.NoError(t, err)

	rejected, err := s.RejectDelivery(d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryRejected, rejected.Status)

	got, err := s.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.StockQuantity)
	assert.Zero(t, countNotifications(s, models.NotifDelivery))
}

func TestDeliveryCannotBeReviewedTwice(t *testing.T) {
	s := newTestStore(t, 5)
	p := addProduct(t, s, "Bread", 52.00, 10)

	d, err := s.SubmitDelivery(inventoryStaff, []models.DeliveryItem{{ProductID: p.ID, Quantity: 5}})
	require.NoError(t, err)

	_, err = s.ApproveDelivery(d.ID)
	require.NoError(t, err)

	_, err = s.ApproveDelivery(d.ID)
	assert.ErrorIs(t, err, store.ErrNotPending)
	_, err = s.RejectDelivery(d.ID)
	assert.ErrorIs(t, err, store.ErrNotPending)

	// Stock moved exactly once.
	got, err := s.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.StockQuantity)
}

func TestSubmitDeliveryValidation(t *testing.T) {
	s := newTestStore(t, 5)
	p := addProduct(t, s, "Coffee", 8.50, 100)

	tests := []struct {
		name  string
		items []models.DeliveryItem
	}{
		{"no items", nil},
		{"zero quantity", []models.DeliveryItem{{ProductID: p.ID, Quantity: 0}}},
		{"negative quantity", []models.DeliveryItem{{ProductID: p.ID, Quantity: -3}}},
		{"duplicate product", []models.DeliveryItem{{ProductID: p.ID, Quantity: 1}, {ProductID: p.ID, Quantity: 2}}},
		{"unknown product", []models.DeliveryItem{{ProductID: 999, Quantity: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubmitDelivery(inventoryStaff, tt.items)
			assert.Error(t, err)
		})
	}

	assert.Empty(t, s.Deliveries(), "rejected submissions are not recorded")
}
