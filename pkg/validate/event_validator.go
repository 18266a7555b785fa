package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
)

var _ ports.OrderEventValidator = (*OrderEventValidator)(nil)

// ErrInvalidOrderEvent is the sentinel wrapped by every validation failure.
var ErrInvalidOrderEvent = errors.New("order event validation failed")

// OrderEventValidator checks incoming order events before they reach the
// store. Referential checks (restaurant/customer existence, ownership) are
// the service's job; this validator only covers the payload itself.
type OrderEventValidator struct{}

func NewOrderEventValidator() *OrderEventValidator { return &OrderEventValidator{} }

// Validate verifies ids and the monetary amount of an order event.
func (v *OrderEventValidator) Validate(_ context.Context, event *domain.OrderEvent) error {
	if event == nil {
		return fmt.Errorf("%w: event must not be nil", ErrInvalidOrderEvent)
	}
	if event.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurant_id is required", ErrInvalidOrderEvent)
	}
	if event.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id is required", ErrInvalidOrderEvent)
	}
	if event.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total_amount must be non-negative", ErrInvalidOrderEvent)
	}
	// two fraction digits at most, the store column is numeric(10,2)
	if event.TotalAmount.Exponent() < -2 {
		return fmt.Errorf("%w: total_amount must have at most 2 fraction digits", ErrInvalidOrderEvent)
	}
	return nil
}
