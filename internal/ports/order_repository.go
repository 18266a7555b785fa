package ports

import (
	"context"
	"time"

	"github.com/restodash/restodash/internal/domain"
)

// OrderWithEmail is an order joined with its customer's email, the shape the
// dashboard aggregation works on.
type OrderWithEmail struct {
	domain.Order
	CustomerEmail string
}

// OrderRepository is the persisted view of orders.
// GetByID returns (nil, nil) when the order does not exist.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*domain.Order, error)

	// ListSince returns the restaurant's orders with created_at >= since,
	// joined with customer emails. Backed by the (restaurant_id, created_at)
	// index, so the result set is bounded by recency.
	ListSince(ctx context.Context, restaurantID int64, since time.Time) ([]OrderWithEmail, error)
}
