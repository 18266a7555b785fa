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

var _ ports.RestaurantRepository = (*RestaurantRepository)(nil)

// RestaurantRepository is the pgx implementation of the restaurants store.
type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *domain.Restaurant) error {
	if rest == nil || rest.Name == "" {
		return errors.New("restaurant name is required")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO restaurants (name) VALUES ($1)
		RETURNING id, created_at
	`, rest.Name).Scan(&rest.ID, &rest.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at FROM restaurants WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Name, &rest.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select restaurant: %w", err)
	}
	return &rest, nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at FROM restaurants ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select restaurants: %w", err)
	}
	defer rows.Close()

	var out []*domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, &rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurants: %w", err)
	}
	return out, nil
}

// Delete removes the restaurant; customers and orders go with it via
// ON DELETE CASCADE (see migrations).
func (r *RestaurantRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete restaurant: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
