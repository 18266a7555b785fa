package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
)

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository is the pgx implementation of the customers store.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c == nil || c.RestaurantID <= 0 || c.Email == "" {
		return errors.New("customer restaurant_id and email are required")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO customers (restaurant_id, email) VALUES ($1, $2)
		RETURNING id, created_at
	`, c.RestaurantID, c.Email).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT id, restaurant_id, email, created_at FROM customers WHERE id = $1
	`, id).Scan(&c.ID, &c.RestaurantID, &c.Email, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, restaurant_id, email, created_at
		FROM customers
		WHERE restaurant_id = $1
		ORDER BY id
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	defer rows.Close()

	var out []*domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return out, nil
}
