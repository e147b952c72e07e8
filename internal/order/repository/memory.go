package repository

import (
	"context"
	"sync"
	"time"

	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
)

// MemoryRepository is the append-only order history. Entries are prepended
// so index 0 is always the most recent order, while ids keep increasing in
// insertion order.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	orders []domain.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Append assigns the next monotonic id and the current timestamp, then
// prepends the order. The stored order is immutable afterwards.
func (r *MemoryRepository) Append(ctx context.Context, order domain.Order) domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	order.Timestamp = time.Now().UTC()
	order.Items = append([]domain.OrderLineItem(nil), order.Items...)

	r.orders = append([]domain.Order{order}, r.orders...)
	return order
}

// List returns the history most-recent-first.
func (r *MemoryRepository) List(ctx context.Context) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Order(nil), r.orders...)
}

func (r *MemoryRepository) GetByID(ctx context.Context, orderID int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == orderID {
			cp := o
			cp.Items = append([]domain.OrderLineItem(nil), o.Items...)
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFoundError("order not found")
}

func (r *MemoryRepository) FindByCustomerID(ctx context.Context, customerID int) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}
