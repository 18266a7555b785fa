package domain

import "time"

// Window sizes accepted by the dashboard endpoint.
const (
	MinWindowDays = 1
	MaxWindowDays = 365

	// DefaultWindowDays is used when the request omits ?days.
	DefaultWindowDays = 7

	// TopCustomersLimit caps the customers-by-spend ranking.
	TopCustomersLimit = 5
)

// RestaurantRef is the identity summary embedded in a snapshot.
type RestaurantRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DashboardTotals holds window-wide aggregates. Monetary values are
// decimal-formatted strings with two fraction digits so that cached and
// freshly computed snapshots serialize identically.
type DashboardTotals struct {
	OrdersCount     int    `json:"orders_count"`
	RevenueTotal    string `json:"revenue_total"`
	AvgOrderValue   string `json:"avg_order_value"`
	UniqueCustomers int    `json:"unique_customers"`
}

// TopCustomer is one entry of the customers-by-spend ranking.
type TopCustomer struct {
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email"`
	TotalSpend string `json:"total_spend"`
	Orders     int    `json:"orders"`
}

// DashboardSnapshot is the computed dashboard for one (restaurant, window)
// pair. It is immutable once built: on invalidation or expiry it is
// recomputed wholesale, never patched.
type DashboardSnapshot struct {
	Restaurant   RestaurantRef   `json:"restaurant"`
	WindowDays   int             `json:"window_days"`
	Since        time.Time       `json:"since"`
	Totals       DashboardTotals `json:"totals"`
	TopCustomers []TopCustomer   `json:"top_customers"`
}
