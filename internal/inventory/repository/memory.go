package repository

import (
	"context"
	"sync"
	"time"

	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
)

// MemoryRepository is the in-memory catalog. Products are kept in insertion
// order because fuzzy resolution is first-match-wins over the catalog.
// Variant ids come from a catalog-wide counter so they can serve as the
// global join key for order lines and stock updates.
type MemoryRepository struct {
	mu            sync.RWMutex
	nextProductID int
	nextVariantID int
	products      []domain.Product
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextProductID: 1,
		nextVariantID: 1,
	}
}

func copyProduct(p domain.Product) domain.Product {
	cp := p
	cp.Variants = make([]domain.ProductVariant, len(p.Variants))
	copy(cp.Variants, p.Variants)
	return cp
}

// List returns a deep copy of the catalog in insertion order.
func (r *MemoryRepository) List(ctx context.Context) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, copyProduct(p))
	}
	return out
}

func (r *MemoryRepository) GetByID(ctx context.Context, productID int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == productID {
			cp := copyProduct(p)
			return &cp, nil
		}
	}
	return nil, apperrors.NewNotFoundError("product not found")
}

func (r *MemoryRepository) indexOf(productID int) int {
	for i := range r.products {
		if r.products[i].ID == productID {
			return i
		}
	}
	return -1
}

func (r *MemoryRepository) AddProduct(ctx context.Context, name string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := domain.Product{
		ID:          r.nextProductID,
		Name:        name,
		Variants:    []domain.ProductVariant{},
		LastUpdated: time.Now().UTC(),
	}
	r.nextProductID++
	r.products = append(r.products, p)

	cp := copyProduct(p)
	return &cp, nil
}

func (r *MemoryRepository) UpdateProduct(ctx context.Context, productID int, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(productID)
	if i < 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	r.products[i].Name = name
	r.products[i].LastUpdated = time.Now().UTC()
	return nil
}

func (r *MemoryRepository) DeleteProduct(ctx context.Context, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(productID)
	if i < 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *MemoryRepository) AddVariant(ctx context.Context, productID int, variant domain.ProductVariant) (*domain.ProductVariant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(productID)
	if i < 0 {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	variant.ID = r.nextVariantID
	r.nextVariantID++
	r.products[i].Variants = append(r.products[i].Variants, variant)
	r.products[i].LastUpdated = time.Now().UTC()

	cp := variant
	return &cp, nil
}

func (r *MemoryRepository) UpdateVariant(ctx context.Context, productID int, variant domain.ProductVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(productID)
	if i < 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	for j := range r.products[i].Variants {
		if r.products[i].Variants[j].ID == variant.ID {
			r.products[i].Variants[j] = variant
			r.products[i].LastUpdated = time.Now().UTC()
			return nil
		}
	}
	return apperrors.NewNotFoundError("variant not found")
}

func (r *MemoryRepository) DeleteVariant(ctx context.Context, productID, variantID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(productID)
	if i < 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	variants := r.products[i].Variants
	for j := range variants {
		if variants[j].ID == variantID {
			r.products[i].Variants = append(variants[:j], variants[j+1:]...)
			r.products[i].LastUpdated = time.Now().UTC()
			return nil
		}
	}
	return apperrors.NewNotFoundError("variant not found")
}

// DecrementStock applies finalize-time decrements by direct indexed
// mutation. Stock is allowed to go negative; the shortfall policy lives
// at the finalize call site.
func (r *MemoryRepository) DecrementStock(ctx context.Context, updates []domain.StockUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, u := range updates {
		for i := range r.products {
			if v := r.products[i].FindVariantByID(u.VariantID); v != nil {
				v.Stock -= u.Quantity
				r.products[i].LastUpdated = now
				break
			}
		}
	}
}

// AddStock applies intake increments, e.g. from image recognition.
func (r *MemoryRepository) AddStock(ctx context.Context, updates []domain.StockUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, u := range updates {
		for i := range r.products {
			if v := r.products[i].FindVariantByID(u.VariantID); v != nil {
				v.Stock += u.Quantity
				r.products[i].LastUpdated = now
				break
			}
		}
	}
}
