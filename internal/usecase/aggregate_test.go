package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/internal/usecase"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func orderFor(customerID int64, email, total string, createdAt time.Time) ports.OrderWithEmail {
	return ports.OrderWithEmail{
		Order: domain.Order{
			RestaurantID: 1,
			CustomerID:   customerID,
			TotalAmount:  amount(total),
			CreatedAt:    createdAt,
		},
		CustomerEmail: email,
	}
}

func TestBuildSnapshot_EmptyWindow(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, Name: "Trattoria"}
	since := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)

	snap := usecase.BuildSnapshot(rest, 7, since, nil)

	if snap.Totals.OrdersCount != 0 || snap.Totals.UniqueCustomers != 0 {
		t.Fatalf("expected zero counts, got %+v", snap.Totals)
	}
	if snap.Totals.RevenueTotal != "0.00" || snap.Totals.AvgOrderValue != "0.00" {
		t.Fatalf("expected zero money strings, got %+v", snap.Totals)
	}
	if snap.TopCustomers == nil || len(snap.TopCustomers) != 0 {
		t.Fatalf("expected empty (non-nil) top customers, got %#v", snap.TopCustomers)
	}
	if snap.Restaurant.ID != 1 || snap.Restaurant.Name != "Trattoria" {
		t.Fatalf("unexpected restaurant ref %+v", snap.Restaurant)
	}
	if snap.WindowDays != 7 || !snap.Since.Equal(since) {
		t.Fatalf("unexpected window fields days=%d since=%s", snap.WindowDays, snap.Since)
	}
}

func TestBuildSnapshot_Totals(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, Name: "Trattoria"}
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -7)

	orders := []ports.OrderWithEmail{
		orderFor(10, "a@example.com", "10.00", now.Add(-time.Hour)),
		orderFor(10, "a@example.com", "20.00", now.Add(-2*time.Hour)),
		orderFor(11, "b@example.com", "30.00", now.Add(-3*time.Hour)),
	}

	snap := usecase.BuildSnapshot(rest, 7, since, orders)

	if snap.Totals.OrdersCount != 3 {
		t.Fatalf("expected 3 orders, got %d", snap.Totals.OrdersCount)
	}
	if snap.Totals.RevenueTotal != "60.00" {
		t.Fatalf("expected revenue 60.00, got %s", snap.Totals.RevenueTotal)
	}
	if snap.Totals.AvgOrderValue != "20.00" {
		t.Fatalf("expected avg 20.00, got %s", snap.Totals.AvgOrderValue)
	}
	if snap.Totals.UniqueCustomers != 2 {
		t.Fatalf("expected 2 unique customers, got %d", snap.Totals.UniqueCustomers)
	}
}

func TestBuildSnapshot_AvgRoundsToCents(t *testing.T) {
	rest := &domain.Restaurant{ID: 1}
	now := time.Now().UTC()

	orders := []ports.OrderWithEmail{
		orderFor(10, "a@example.com", "10.00", now),
		orderFor(11, "b@example.com", "10.00", now),
		orderFor(12, "c@example.com", "10.01", now),
	}

	snap := usecase.BuildSnapshot(rest, 7, now.AddDate(0, 0, -7), orders)

	// 30.01 / 3 = 10.00333... rounds to 10.00
	if snap.Totals.AvgOrderValue != "10.00" {
		t.Fatalf("expected avg 10.00, got %s", snap.Totals.AvgOrderValue)
	}
	if snap.Totals.RevenueTotal != "30.01" {
		t.Fatalf("expected revenue 30.01, got %s", snap.Totals.RevenueTotal)
	}
}

func TestBuildSnapshot_TopCustomersRanking(t *testing.T) {
	rest := &domain.Restaurant{ID: 1}
	now := time.Now().UTC()

	// 7 customers; two tied on spend (ids 3 and 5); only 5 survive
	orders := []ports.OrderWithEmail{
		orderFor(1, "c1@example.com", "100.00", now),
		orderFor(2, "c2@example.com", "90.00", now),
		orderFor(3, "c3@example.com", "50.00", now),
		orderFor(5, "c5@example.com", "50.00", now),
		orderFor(4, "c4@example.com", "80.00", now),
		orderFor(6, "c6@example.com", "10.00", now),
		orderFor(7, "c7@example.com", "5.00", now),
	}

	snap := usecase.BuildSnapshot(rest, 30, now.AddDate(0, 0, -30), orders)

	if len(snap.TopCustomers) != 5 {
		t.Fatalf("expected 5 top customers, got %d", len(snap.TopCustomers))
	}
	wantOrder := []int64{1, 2, 4, 3, 5}
	for i, want := range wantOrder {
		if snap.TopCustomers[i].CustomerID != want {
			t.Fatalf("rank %d: expected customer %d, got %d (full: %+v)",
				i, want, snap.TopCustomers[i].CustomerID, snap.TopCustomers)
		}
	}
	if snap.TopCustomers[0].TotalSpend != "100.00" || snap.TopCustomers[0].Orders != 1 {
		t.Fatalf("unexpected leader %+v", snap.TopCustomers[0])
	}
}

func TestBuildSnapshot_SpendAccumulatesPerCustomer(t *testing.T) {
	rest := &domain.Restaurant{ID: 1}
	now := time.Now().UTC()

	orders := []ports.OrderWithEmail{
		orderFor(10, "a@example.com", "19.99", now),
		orderFor(10, "a@example.com", "0.01", now),
		orderFor(11, "b@example.com", "15.00", now),
	}

	snap := usecase.BuildSnapshot(rest, 7, now.AddDate(0, 0, -7), orders)

	if len(snap.TopCustomers) != 2 {
		t.Fatalf("expected 2 top customers, got %d", len(snap.TopCustomers))
	}
	top := snap.TopCustomers[0]
	if top.CustomerID != 10 || top.TotalSpend != "20.00" || top.Orders != 2 || top.Email != "a@example.com" {
		t.Fatalf("unexpected top customer %+v", top)
	}
}
