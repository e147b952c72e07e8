package inventory

import (
	"context"

	"voxpos/internal/domain"
)

// Seed loads the demo catalog the application ships with.
func Seed(ctx context.Context, repo Repository) error {
	catalog := []struct {
		name     string
		variants []domain.ProductVariant
	}{
		{
			name: "Classic Cola",
			variants: []domain.ProductVariant{
				{Name: "Small", Price: 1.50, Cost: 0.50, Stock: 100, Barcode: "123456789012"},
				{Name: "Medium", Price: 2.00, Cost: 0.70, Stock: 80, Barcode: "123456789013"},
				{Name: "Large", Price: 2.50, Cost: 0.90, Stock: 60, Barcode: "123456789014"},
			},
		},
		{
			name: "Potato Chips",
			variants: []domain.ProductVariant{
				{Name: "Regular", Price: 2.25, Cost: 0.85, Stock: 80, Barcode: "234567890123"},
			},
		},
		{
			name: "Chocolate Bar",
			variants: []domain.ProductVariant{
				{Name: "Standard", Price: 1.75, Cost: 0.60, Stock: 120, Barcode: "345678901234"},
			},
		},
	}

	for _, entry := range catalog {
		product, err := repo.AddProduct(ctx, entry.name)
		if err != nil {
			return err
		}
		for _, v := range entry.variants {
			if _, err := repo.AddVariant(ctx, product.ID, v); err != nil {
				return err
			}
		}
	}
	return nil
}
