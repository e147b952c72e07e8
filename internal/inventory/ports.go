package inventory

import (
	"context"

	"voxpos/internal/domain"
	"voxpos/internal/dto"
)

type Repository interface {
	List(ctx context.Context) []domain.Product
	GetByID(ctx context.Context, productID int) (*domain.Product, error)
	AddProduct(ctx context.Context, name string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int, name string) error
	DeleteProduct(ctx context.Context, productID int) error
	AddVariant(ctx context.Context, productID int, variant domain.ProductVariant) (*domain.ProductVariant, error)
	UpdateVariant(ctx context.Context, productID int, variant domain.ProductVariant) error
	DeleteVariant(ctx context.Context, productID, variantID int) error
	DecrementStock(ctx context.Context, updates []domain.StockUpdate)
	AddStock(ctx context.Context, updates []domain.StockUpdate)
}

// Service is the catalog surface the controllers and the cart flow consume:
// CRUD plus the free-text resolution policy.
type Service interface {
	Catalog(ctx context.Context) []domain.Product
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	CreateProduct(ctx context.Context, name string) (*domain.Product, error)
	RenameProduct(ctx context.Context, productID int, name string) error
	DeleteProduct(ctx context.Context, productID int) error
	AddVariant(ctx context.Context, productID int, variant domain.ProductVariant) (*domain.ProductVariant, error)
	UpdateVariant(ctx context.Context, productID int, variant domain.ProductVariant) error
	DeleteVariant(ctx context.Context, productID, variantID int) error

	FindProductByFuzzyName(ctx context.Context, name string) *domain.Product
	FindItemByBarcode(ctx context.Context, barcode string) (*domain.Product, *domain.ProductVariant)
	ResolveItem(ctx context.Context, productName, variantName string, quantity int) ItemResolution
	CheckStockAvailability(items []domain.OrderLineItem) []domain.StockIssue

	DecrementStock(ctx context.Context, updates []domain.StockUpdate)
	AddStock(ctx context.Context, updates []domain.StockUpdate)
}

// IntakeUseCase covers the AI-assisted inventory flows: counting stock from
// a shelf photo and creating products from a spoken description.
type IntakeUseCase interface {
	RecognizeImage(ctx context.Context, imageB64, mimeType string) (*dto.RecognizedInventory, error)
	ApplyRecognizedStock(ctx context.Context, items []dto.RecognizedStockItem) int
	PromoteUnrecognizedItem(ctx context.Context, item dto.UnrecognizedStockItem) (*domain.Product, error)
	CreateProductFromVoice(ctx context.Context, audioB64, mimeType string) (*domain.Product, error)
}
