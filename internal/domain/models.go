package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant is a tenant. Customers and orders belong to exactly one
// restaurant; deleting a restaurant cascades to both (enforced by the store).
type Restaurant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Customer belongs to one restaurant, fixed at creation.
type Customer struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// Order is a single purchase. RestaurantID always equals the owning
// restaurant of its customer. CreatedAt is assigned by the store at insert
// time, never by the client.
type Order struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurant_id"`
	CustomerID   int64           `json:"customer_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderEvent is the wire form of a new order, either the body of
// POST /orders or a message on the order-events topic.
type OrderEvent struct {
	RestaurantID int64           `json:"restaurant_id"`
	CustomerID   int64           `json:"customer_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}
