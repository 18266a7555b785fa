package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
)

// BuildSnapshot derives dashboard aggregates from the orders of one
// restaurant window. Pure: no I/O, deterministic for identical input.
//
// Monetary math stays in decimal until the final formatting step, so the
// rendered strings are exact two-fraction-digit sums with no float drift.
func BuildSnapshot(rest *domain.Restaurant, windowDays int, since time.Time, orders []ports.OrderWithEmail) *domain.DashboardSnapshot {
	type customerAgg struct {
		id     int64
		email  string
		spend  decimal.Decimal
		orders int
	}

	revenue := decimal.Zero
	byCustomer := make(map[int64]*customerAgg)

	for i := range orders {
		o := &orders[i]
		revenue = revenue.Add(o.TotalAmount)

		agg, ok := byCustomer[o.CustomerID]
		if !ok {
			agg = &customerAgg{id: o.CustomerID, email: o.CustomerEmail}
			byCustomer[o.CustomerID] = agg
		}
		agg.spend = agg.spend.Add(o.TotalAmount)
		agg.orders++
	}

	avg := decimal.Zero
	if len(orders) > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	ranked := make([]*customerAgg, 0, len(byCustomer))
	for _, agg := range byCustomer {
		ranked = append(ranked, agg)
	}
	// spend descending; equal spenders ordered by customer id ascending so
	// the ranking is reproducible
	sort.Slice(ranked, func(i, j int) bool {
		if cmp := ranked[i].spend.Cmp(ranked[j].spend); cmp != 0 {
			return cmp > 0
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > domain.TopCustomersLimit {
		ranked = ranked[:domain.TopCustomersLimit]
	}

	top := make([]domain.TopCustomer, 0, len(ranked))
	for _, agg := range ranked {
		top = append(top, domain.TopCustomer{
			CustomerID: agg.id,
			Email:      agg.email,
			TotalSpend: agg.spend.StringFixed(2),
			Orders:     agg.orders,
		})
	}

	return &domain.DashboardSnapshot{
		Restaurant: domain.RestaurantRef{ID: rest.ID, Name: rest.Name},
		WindowDays: windowDays,
		Since:      since,
		Totals: domain.DashboardTotals{
			OrdersCount:     len(orders),
			RevenueTotal:    revenue.StringFixed(2),
			AvgOrderValue:   avg.StringFixed(2),
			UniqueCustomers: len(byCustomer),
		},
		TopCustomers: top,
	}
}
