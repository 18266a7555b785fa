//go:generate mockgen -source=../restaurant_repository.go -destination=./mock_restaurant_repository.go -package=mocks
//go:generate mockgen -source=../customer_repository.go   -destination=./mock_customer_repository.go   -package=mocks
//go:generate mockgen -source=../order_repository.go      -destination=./mock_order_repository.go      -package=mocks
//go:generate mockgen -source=../dashboard_cache.go       -destination=./mock_dashboard_cache.go       -package=mocks
//go:generate mockgen -source=../order_validator.go       -destination=./mock_order_validator.go       -package=mocks
//go:generate mockgen -source=../dashboard_service.go     -destination=./mock_dashboard_service.go     -package=mocks
//go:generate mockgen -source=../order_service.go         -destination=./mock_order_service.go         -package=mocks

package mocks
