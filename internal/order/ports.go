package order

import (
	"context"

	"voxpos/internal/cart"
	"voxpos/internal/domain"
)

type Repository interface {
	Append(ctx context.Context, order domain.Order) domain.Order
	List(ctx context.Context) []domain.Order
	GetByID(ctx context.Context, orderID int) (*domain.Order, error)
	FindByCustomerID(ctx context.Context, customerID int) []domain.Order
}

// CustomerDirectory is the slice of the customer module the history needs:
// resolving a named customer and bumping their stats once per order.
type CustomerDirectory interface {
	FindOrCreateCustomer(ctx context.Context, name string) (*domain.Customer, error)
	UpdateCustomerStats(ctx context.Context, customerID int, orderTotal float64) error
}

// Cart is the order-in-progress store as seen by finalization.
type Cart interface {
	Snapshot() cart.Snapshot
	Clear()
}

// Catalog covers the inventory operations finalization drives: the
// advisory stock check and the stock decrement.
type Catalog interface {
	CheckStockAvailability(items []domain.OrderLineItem) []domain.StockIssue
	DecrementStock(ctx context.Context, updates []domain.StockUpdate)
}

type HistoryService interface {
	AddOrderToHistory(ctx context.Context, items []domain.OrderLineItem, grandTotal float64, transcript, customerName, notes string) (*domain.Order, error)
	SearchOrders(ctx context.Context, term string) []domain.Order
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
}
