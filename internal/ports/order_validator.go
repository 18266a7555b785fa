package ports

import (
	"context"

	"github.com/restodash/restodash/internal/domain"
)

// OrderEventValidator checks an incoming order event before persistence
// (ids present, amount non-negative with at most two fraction digits).
type OrderEventValidator interface {
	Validate(ctx context.Context, event *domain.OrderEvent) error
}
