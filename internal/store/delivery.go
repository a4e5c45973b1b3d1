package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"saripos/internal/models"
)

// Restock receipts mirror the cart pattern: inventory staff submit a
// list of product quantities, an admin approves or rejects, and only
// approval touches stock.

// SubmitDelivery records a pending restock receipt. Every referenced
// product must exist and every quantity must be positive.
func (s *Store) SubmitDelivery(userID uint, items []models.DeliveryItem) (models.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		return models.Delivery{}, fmt.Errorf("delivery has no items")
	}
	seen := make(map[uint]bool)
	for _, item := range items {
		if item.Quantity <= 0 {
			return models.Delivery{}, fmt.Errorf("quantity for product %d must be positive", item.ProductID)
		}
		if seen[item.ProductID] {
			return models.Delivery{}, fmt.Errorf("product %d listed twice", item.ProductID)
		}
		seen[item.ProductID] = true
		if _, err := s.findProduct(item.ProductID); err != nil {
			return models.Delivery{}, ErrNotFound
		}
	}

	d := models.Delivery{
		ID:          uuid.NewString(),
		Items:       items,
		Status:      models.DeliveryPending,
		SubmittedBy: userID,
		SubmittedAt: time.Now(),
	}
	s.deliveries = append(s.deliveries, d)
	return d, nil
}

// Deliveries returns a copy of all restock receipts, newest last.
func (s *Store) Deliveries() []models.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Delivery, len(s.deliveries))
	copy(out, s.deliveries)
	return out
}

// ApproveDelivery increments stock for every line of a pending
// receipt and emits a "delivery" notification.
func (s *Store) ApproveDelivery(id string) (models.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.findDelivery(id)
	if err != nil {
		return models.Delivery{}, err
	}
	if d.Status != models.DeliveryPending {
		return models.Delivery{}, ErrNotPending
	}

	units := 0
	for _, item := range d.Items {
		p, err := s.findProduct(item.ProductID)
		if err != nil {
			// Product removed between submission and approval: skip the line.
			continue
		}
		p.StockQuantity += item.Quantity
		units += item.Quantity
	}

	now := time.Now()
	d.Status = models.DeliveryApproved
	d.ReviewedAt = &now

	s.pushNotification(models.NotifDelivery,
		fmt.Sprintf("Delivery %s approved: %d unit(s) added to stock", d.ID, units))
	return *d, nil
}

// RejectDelivery closes a pending receipt without touching stock.
func (s *Store) RejectDelivery(id string) (models.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.findDelivery(id)
	if err != nil {
		return models.Delivery{}, err
	}
	if d.Status != models.DeliveryPending {
		return models.Delivery{}, ErrNotPending
	}
	now := time.Now()
	d.Status = models.DeliveryRejected
	d.ReviewedAt = &now
	return *d, nil
}

func (s *Store) findDelivery(id string) (*models.Delivery, error) {
	for i := range s.deliveries {
		if s.deliveries[i].ID == id {
			return &s.deliveries[i], nil
		}
	}
	return nil, ErrNotFound
}
