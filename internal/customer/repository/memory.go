package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
)

// MemoryRepository is the in-memory customer directory. The dedup index is
// keyed by the trimmed, lowercased name; the stored record keeps the casing
// from first creation.
type MemoryRepository struct {
	mu        sync.RWMutex
	nextID    int
	customers []domain.Customer
	byName    map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		byName: make(map[string]int),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *MemoryRepository) List(ctx context.Context) []domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Customer(nil), r.customers...)
}

func (r *MemoryRepository) GetByID(ctx context.Context, customerID int) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.ID == customerID {
			cp := c
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFoundError("customer not found")
}

// FindOrCreate returns the existing record on a case-insensitive match, or
// creates a new one with zeroed stats and now as both first and last seen.
func (r *MemoryRepository) FindOrCreate(ctx context.Context, name string) (*domain.Customer, error) {
	key := normalize(name)
	if key == "" {
		return nil, apperrors.NewValidationError("customer name must not be blank", apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName must not be blank",
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[key]; ok {
		for _, c := range r.customers {
			if c.ID == id {
				cp := c
				return &cp, nil
			}
		}
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        r.nextID,
		Name:      strings.TrimSpace(name),
		FirstSeen: now,
		LastSeen:  now,
	}
	r.nextID++
	r.customers = append(r.customers, customer)
	r.byName[key] = customer.ID

	cp := customer
	return &cp, nil
}

// UpdateStats bumps the running aggregates for one finalized order. Callers
// must invoke it exactly once per order.
func (r *MemoryRepository) UpdateStats(ctx context.Context, customerID int, orderTotal float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.customers {
		if r.customers[i].ID == customerID {
			r.customers[i].TotalOrders++
			r.customers[i].TotalSpent += orderTotal
			r.customers[i].LastSeen = time.Now().UTC()
			return nil
		}
	}
	return apperrors.NewNotFoundError("customer not found")
}
