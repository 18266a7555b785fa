package ports

import (
	"context"

	"github.com/restodash/restodash/internal/domain"
)

// CustomerRepository is the persisted view of a restaurant's customers.
// GetByID returns (nil, nil) when the customer does not exist.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*domain.Customer, error)
}
