package store

import (
	"saripos/internal/models"
	"saripos/internal/pricing"
)

// Each signed-in user owns exactly one cart. All cart mutations run
// under the store mutex so no two operations can interleave.

// Cart returns a copy of the user's current cart.
func (s *Store) Cart(userID uint) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(userID)
	out := models.Cart{Lines: make([]models.CartLine, len(cart.Lines))}
	copy(out.Lines, cart.Lines)
	return out
}

// CartTotals derives the money breakdown for the user's cart.
func (s *Store) CartTotals(userID uint) pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Compute(s.cartFor(userID))
}

// CartAdd puts one unit of the product into the user's cart. The line
// snapshots the product as it is in the catalog right now. There is
// deliberately no stock check here; checkout clamps at zero.
func (s *Store) CartAdd(userID, productID uint) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.findProduct(productID)
	if err != nil {
		return models.Cart{}, err
	}
	cart := s.cartFor(userID)
	cart.Add(*p)
	return *cart, nil
}

// CartAdjust adds delta to an existing line's quantity (the +/-
// buttons). Zero or below removes the line.
func (s *Store) CartAdjust(userID, productID uint, delta int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(userID)
	cart.AdjustQuantity(productID, delta)
	return *cart
}

// CartSetQuantity replaces a line's quantity (the edit modal).
// Non-positive input means "remove item".
func (s *Store) CartSetQuantity(userID, productID uint, quantity int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(userID)
	cart.SetQuantity(productID, quantity)
	return *cart
}

// CartRemove deletes a line outright.
func (s *Store) CartRemove(userID, productID uint) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(userID)
	cart.Remove(productID)
	return *cart
}

// CartClear voids the in-progress transaction. Also called on logout.
func (s *Store) CartClear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartFor(userID).Clear()
}

// cartFor must be called with the lock held.
func (s *Store) cartFor(userID uint) *models.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &models.Cart{}
		s.carts[userID] = cart
	}
	return cart
}
