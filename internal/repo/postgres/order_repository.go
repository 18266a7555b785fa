package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository is the pgx implementation of the orders store.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order. created_at is assigned by the database, the
// caller-supplied value is ignored on purpose.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	if o == nil || o.RestaurantID <= 0 || o.CustomerID <= 0 {
		return errors.New("order restaurant_id and customer_id are required")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (restaurant_id, customer_id, total_amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, o.RestaurantID, o.CustomerID, o.TotalAmount).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, restaurant_id, customer_id, total_amount, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&o.ID, &o.RestaurantID, &o.CustomerID, &o.TotalAmount, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, restaurant_id, customer_id, total_amount, created_at
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var out []*domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.CustomerID, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return out, nil
}

// ListSince returns the restaurant's orders newer than or equal to since,
// joined with the customer email for the top-customers ranking. Served by the
// (restaurant_id, created_at) index.
func (r *OrderRepository) ListSince(ctx context.Context, restaurantID int64, since time.Time) ([]ports.OrderWithEmail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.restaurant_id, o.customer_id, o.total_amount, o.created_at, c.email
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.restaurant_id = $1 AND o.created_at >= $2
		ORDER BY o.created_at
	`, restaurantID, since)
	if err != nil {
		return nil, fmt.Errorf("select orders since: %w", err)
	}
	defer rows.Close()

	var out []ports.OrderWithEmail
	for rows.Next() {
		var o ports.OrderWithEmail
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.CustomerID, &o.TotalAmount, &o.CreatedAt, &o.CustomerEmail); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders since: %w", err)
	}
	return out, nil
}
