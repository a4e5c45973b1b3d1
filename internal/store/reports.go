package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary holds the aggregate figures the advisory prompts and
// the dashboard need.
type SalesSummary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCount   int             `json:"total_count"`
}

// SummarizeSales aggregates ledger entries whose sale time falls in
// [start, end].
func (s *Store) SummarizeSales(start, end time.Time) SalesSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := SalesSummary{TotalRevenue: decimal.Zero}
	for _, sale := range s.sales {
		if sale.SaleTime.Before(start) || sale.SaleTime.After(end) {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.Total)
		summary.TotalCount++
	}
	return summary
}
