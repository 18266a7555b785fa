package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/pkg/validate"
)

var _ ports.OrderService = (*OrderService)(nil)

// OrderService is the application logic for restaurants, customers and
// orders. Every successful order write fires the dashboard invalidation
// hook; the hook never fails the write.
type OrderService struct {
	restaurants ports.RestaurantRepository
	customers   ports.CustomerRepository
	orders      ports.OrderRepository
	dashboards  ports.DashboardService
	validator   ports.OrderEventValidator
	log         ports.Logger
}

func NewOrderService(
	restaurants ports.RestaurantRepository,
	customers ports.CustomerRepository,
	orders ports.OrderRepository,
	dashboards ports.DashboardService,
	validator ports.OrderEventValidator,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		restaurants: restaurants,
		customers:   customers,
		orders:      orders,
		dashboards:  dashboards,
		validator:   validator,
		log:         log,
	}
}

func (s *OrderService) CreateRestaurant(ctx context.Context, name string) (*domain.Restaurant, error) {
	rest := &domain.Restaurant{Name: name}
	if err := s.restaurants.Create(ctx, rest); err != nil {
		s.log.Errorf(ctx, "restaurants.Create failed name=%q err=%v", name, err)
		return nil, err
	}
	s.log.Infof(ctx, "restaurant created id=%d name=%q", rest.ID, rest.Name)
	return rest, nil
}

func (s *OrderService) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	rest, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return rest, nil
}

func (s *OrderService) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	return s.restaurants.List(ctx)
}

// DeleteRestaurant removes the tenant with all of its customers and orders
// (cascade in the store) and drops its cached dashboards.
func (s *OrderService) DeleteRestaurant(ctx context.Context, id int64) error {
	deleted, err := s.restaurants.Delete(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "restaurants.Delete failed id=%d err=%v", id, err)
		return err
	}
	if !deleted {
		return domain.ErrRestaurantNotFound
	}
	s.dashboards.InvalidateAll(ctx, id)
	s.log.Infof(ctx, "restaurant deleted id=%d", id)
	return nil
}

func (s *OrderService) CreateCustomer(ctx context.Context, restaurantID int64, email string) (*domain.Customer, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCustomerEmail, email)
	}

	rest, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}

	customer := &domain.Customer{RestaurantID: restaurantID, Email: email}
	if err := s.customers.Create(ctx, customer); err != nil {
		s.log.Errorf(ctx, "customers.Create failed restaurant=%d err=%v", restaurantID, err)
		return nil, err
	}
	s.log.Infof(ctx, "customer created id=%d restaurant=%d", customer.ID, restaurantID)
	return customer, nil
}

func (s *OrderService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (s *OrderService) ListCustomers(ctx context.Context, restaurantID int64) ([]*domain.Customer, error) {
	rest, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return s.customers.ListByRestaurant(ctx, restaurantID)
}

// CreateOrder validates and persists a new order, then invalidates the
// restaurant's cached dashboards. Invalidation runs only after the insert
// committed; if it fails it is logged inside the dashboard service and the
// order stays created.
func (s *OrderService) CreateOrder(ctx context.Context, event *domain.OrderEvent) (*domain.Order, error) {
	if err := s.validator.Validate(ctx, event); err != nil {
		s.log.Warnf(ctx, "order event rejected err=%v", err)
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, event.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	// cross-entity invariant: the order's restaurant must own the customer
	if customer.RestaurantID != event.RestaurantID {
		return nil, domain.ErrCustomerRestaurantMismatch
	}

	order := &domain.Order{
		RestaurantID: event.RestaurantID,
		CustomerID:   event.CustomerID,
		TotalAmount:  event.TotalAmount,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Errorf(ctx, "orders.Create failed restaurant=%d customer=%d err=%v",
			event.RestaurantID, event.CustomerID, err)
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.dashboards.InvalidateAll(ctx, order.RestaurantID)

	s.log.Infof(ctx, "order created id=%d restaurant=%d customer=%d amount=%s",
		order.ID, order.RestaurantID, order.CustomerID, order.TotalAmount.StringFixed(2))
	return order, nil
}

// CreateOrderFromMessage ingests a raw order event from the message bus:
// strict JSON parsing, payload validation, persistence, invalidation hook.
// Malformed payloads come back wrapped in validate.ErrInvalidOrderEvent so
// the consumer can skip them permanently.
func (s *OrderService) CreateOrderFromMessage(ctx context.Context, raw []byte) error {
	event, err := validate.ValidateEventFromJSON(ctx, s.validator, raw)
	if err != nil {
		if !errors.Is(err, validate.ErrInvalidOrderEvent) {
			err = fmt.Errorf("%w: %v", validate.ErrInvalidOrderEvent, err)
		}
		s.log.Warnf(ctx, "invalid order event err=%v", err)
		return err
	}

	if _, err := s.CreateOrder(ctx, event); err != nil {
		return err
	}
	return nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, restaurantID int64, limit, offset int) ([]*domain.Order, error) {
	rest, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return s.orders.ListByRestaurant(ctx, restaurantID, limit, offset)
}
