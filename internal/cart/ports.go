package cart

import (
	"context"

	"voxpos/internal/domain"
	"voxpos/internal/inventory"
)

// Resolver is the slice of the catalog surface the cart flow consumes.
type Resolver interface {
	Catalog(ctx context.Context) []domain.Product
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	ResolveItem(ctx context.Context, productName, variantName string, quantity int) inventory.ItemResolution
	FindItemByBarcode(ctx context.Context, barcode string) (*domain.Product, *domain.ProductVariant)
	CheckStockAvailability(items []domain.OrderLineItem) []domain.StockIssue
}
