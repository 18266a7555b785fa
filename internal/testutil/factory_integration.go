//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/restodash/restodash/internal/domain"
	pgrepo "github.com/restodash/restodash/internal/repo/postgres"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// SeedRestaurant inserts a restaurant with a unique name.
func SeedRestaurant(ctx context.Context, t *testing.T, pool *pgxpool.Pool) *domain.Restaurant {
	t.Helper()
	rest := &domain.Restaurant{Name: "resto-" + UniqSuffix()}
	require.NoError(t, pgrepo.NewRestaurantRepository(pool).Create(ctx, rest))
	return rest
}

// SeedCustomer inserts a customer for the restaurant with a unique email.
func SeedCustomer(ctx context.Context, t *testing.T, pool *pgxpool.Pool, restaurantID int64) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{
		RestaurantID: restaurantID,
		Email:        fmt.Sprintf("cust-%s@example.com", UniqSuffix()),
	}
	require.NoError(t, pgrepo.NewCustomerRepository(pool).Create(ctx, customer))
	return customer
}

// SeedOrder inserts an order for the customer.
func SeedOrder(ctx context.Context, t *testing.T, pool *pgxpool.Pool, restaurantID, customerID int64, total string) *domain.Order {
	t.Helper()
	order := &domain.Order{
		RestaurantID: restaurantID,
		CustomerID:   customerID,
		TotalAmount:  decimal.RequireFromString(total),
	}
	require.NoError(t, pgrepo.NewOrderRepository(pool).Create(ctx, order))
	return order
}

// MakeOrderEvent builds a valid wire-format order event.
func MakeOrderEvent(restaurantID, customerID int64, total string) *domain.OrderEvent {
	return &domain.OrderEvent{
		RestaurantID: restaurantID,
		CustomerID:   customerID,
		TotalAmount:  decimal.RequireFromString(total),
	}
}
