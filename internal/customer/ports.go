package customer

import (
	"context"

	"voxpos/internal/domain"
)

type Repository interface {
	List(ctx context.Context) []domain.Customer
	GetByID(ctx context.Context, customerID int) (*domain.Customer, error)
	FindOrCreate(ctx context.Context, name string) (*domain.Customer, error)
	UpdateStats(ctx context.Context, customerID int, orderTotal float64) error
}

type Service interface {
	FindOrCreateCustomer(ctx context.Context, name string) (*domain.Customer, error)
	UpdateCustomerStats(ctx context.Context, customerID int, orderTotal float64) error
	GetCustomer(ctx context.Context, customerID int) (*domain.Customer, error)
	SearchCustomers(ctx context.Context, term string) []domain.Customer
}

// OrderHistory is the slice of order storage the directory needs to show a
// customer's past orders.
type OrderHistory interface {
	FindByCustomerID(ctx context.Context, customerID int) []domain.Order
}
