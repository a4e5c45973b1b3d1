package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"saripos/internal/models"
	"saripos/internal/pricing"
)

// Receipt is everything the terminal needs to print after a settled
// sale: the immutable ledger record plus the money breakdown.
type Receipt struct {
	Sale   models.SaleRecord `json:"sale"`
	Totals pricing.Totals    `json:"totals"`
}

// Confirm settles the user's in-progress transaction. The whole unit
// of work runs under the store mutex, so either every effect happens
// or none does:
//
//  1. append a SaleRecord snapshotting the cart, totals, tendered
//     cash, change and cashier identity;
//  2. decrement each sold product's stock, floored at zero (selling
//     more than is on hand is absorbed silently, not rejected);
//  3. emit an "alert" notification for every product whose stock
//     crossed from strictly above the low-stock threshold to at or
//     below it — crossings only, a product already at or below the
//     threshold does not re-trigger;
//  4. emit one "sale" notification summarizing the transaction;
//  5. clear the cart.
//
// Rejections (empty cart, tendered < total) leave every piece of
// state untouched.
func (s *Store) Confirm(userID uint, tendered decimal.Decimal) (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(userID)
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	totals := pricing.Compute(cart)
	change, ok := pricing.Change(totals.Total, tendered)
	if !ok {
		return nil, ErrInsufficientPayment
	}

	cashierName := fmt.Sprintf("user-%d", userID)
	for _, u := range s.users {
		if u.ID == userID {
			cashierName = u.DisplayName
			break
		}
	}

	s.customerSeq++
	sale := models.SaleRecord{
		ID:          s.nextSaleID(),
		Customer:    fmt.Sprintf("Customer-%03d", s.customerSeq),
		CashierID:   userID,
		CashierName: cashierName,
		Items:       cart.Snapshot(),
		Total:       totals.Total,
		Tendered:    tendered.Round(2),
		Change:      change,
		SaleTime:    time.Now(),
	}
	s.sales = append(s.sales, sale)

	threshold := s.settings.LowStockThreshold
	for _, line := range cart.Lines {
		p, err := s.findProduct(line.Product.ID)
		if err != nil {
			// Product vanished from the catalog after it was carted;
			// the snapshot in the ledger still stands.
			continue
		}
		before := p.StockQuantity
		after := before - line.Quantity
		if after < 0 {
			after = 0
		}
		p.StockQuantity = after

		if before > threshold && after <= threshold {
			s.pushNotification(models.NotifAlert,
				fmt.Sprintf("Low stock: %s is down to %d (threshold %d)", p.Name, after, threshold))
		}
	}

	s.pushNotification(models.NotifSale,
		fmt.Sprintf("Sale %s completed by %s: %d item(s), total %s", sale.ID, cashierName, len(sale.Items), sale.Total.StringFixed(2)))

	cart.Clear()

	return &Receipt{Sale: sale, Totals: totals}, nil
}
