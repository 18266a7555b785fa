package ports

import (
	"context"

	"github.com/restodash/restodash/internal/domain"
)

// OrderService is the CRUD surface over restaurants, customers and orders
// consumed by the HTTP layer.
type OrderService interface {
	CreateRestaurant(ctx context.Context, name string) (*domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) error

	CreateCustomer(ctx context.Context, restaurantID int64, email string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context, restaurantID int64) ([]*domain.Customer, error)

	CreateOrder(ctx context.Context, event *domain.OrderEvent) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, restaurantID int64, limit, offset int) ([]*domain.Order, error)
}
