package domain

import "errors"

var (
	// ErrRestaurantNotFound: the referenced restaurant does not exist.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrCustomerNotFound: the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrOrderNotFound: the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidWindowDays: dashboard window outside [MinWindowDays, MaxWindowDays].
	ErrInvalidWindowDays = errors.New("days must be an integer between 1 and 365")

	// ErrCustomerRestaurantMismatch: the order references a customer owned
	// by a different restaurant.
	ErrCustomerRestaurantMismatch = errors.New("customer does not belong to the restaurant")

	// ErrInvalidCustomerEmail: the customer email fails RFC 5322 parsing.
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
)
