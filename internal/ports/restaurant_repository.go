package ports

import (
	"context"

	"github.com/restodash/restodash/internal/domain"
)

// RestaurantRepository is the persisted view of tenants.
// GetByID returns (nil, nil) when the restaurant does not exist.
type RestaurantRepository interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)

	// Delete removes the restaurant and, through the store's referential
	// integrity rules, all of its customers and orders. Returns false when
	// nothing was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
