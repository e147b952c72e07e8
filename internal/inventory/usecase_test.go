package inventory_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"voxpos/internal/domain"
	"voxpos/internal/dto"
	"voxpos/internal/inventory"
	"voxpos/internal/testutil"
)

type stubExtractor struct {
	RecognizeInventoryImageFunc func(ctx context.Context, imageB64, mimeType string, catalog []domain.Product) (*dto.RecognizedInventory, error)
	ParseProductDescriptionFunc func(ctx context.Context, audioB64, mimeType string) (*dto.ParsedProduct, error)
}

func (s *stubExtractor) ExtractOrder(ctx context.Context, audioB64, mimeType string, catalog []domain.Product, cartItems []domain.OrderLineItem) (*dto.ExtractedOrder, error) {
	return nil, nil
}

func (s *stubExtractor) RecognizeInventoryImage(ctx context.Context, imageB64, mimeType string, catalog []domain.Product) (*dto.RecognizedInventory, error) {
	return s.RecognizeInventoryImageFunc(ctx, imageB64, mimeType, catalog)
}

func (s *stubExtractor) ParseProductDescription(ctx context.Context, audioB64, mimeType string) (*dto.ParsedProduct, error) {
	return s.ParseProductDescriptionFunc(ctx, audioB64, mimeType)
}

func TestApplyRecognizedStock(t *testing.T) {
	repo := testutil.SeededCatalog(t)
	svc := inventory.NewService(repo)
	uc := inventory.NewIntakeUseCase(svc, &stubExtractor{}, zap.NewNop())
	ctx := context.Background()

	smallID := testutil.VariantID(t, repo, "Classic Cola", "Small")
	chipsID := testutil.VariantID(t, repo, "Potato Chips", "Regular")

	applied := uc.ApplyRecognizedStock(ctx, []dto.RecognizedStockItem{
		{ItemName: "Classic Cola (Small)", Quantity: 24, VariantID: smallID},
		{ItemName: "Potato Chips (Regular)", Quantity: 10, VariantID: chipsID},
		{ItemName: "Mystery Box", Quantity: 5}, // no variant id, skipped
	})
	if applied != 2 {
		t.Fatalf("applied = %d, want 2", applied)
	}

	_, variant := svc.FindItemByBarcode(ctx, "123456789012")
	if variant.Stock != 124 {
		t.Errorf("cola small stock = %d, want 124", variant.Stock)
	}
	_, variant = svc.FindItemByBarcode(ctx, "234567890123")
	if variant.Stock != 90 {
		t.Errorf("chips stock = %d, want 90", variant.Stock)
	}
}

func TestPromoteUnrecognizedItem(t *testing.T) {
	svc := inventory.NewService(testutil.SeededCatalog(t))
	uc := inventory.NewIntakeUseCase(svc, &stubExtractor{}, zap.NewNop())

	product, err := uc.PromoteUnrecognizedItem(context.Background(), dto.UnrecognizedStockItem{
		ItemName: "Energy Drink",
		Quantity: 12,
		Price:    3.50,
	})
	if err != nil {
		t.Fatalf("promote: %v", err)
	}

	if product.Name != "Energy Drink" {
		t.Errorf("name = %q", product.Name)
	}
	if len(product.Variants) != 1 {
		t.Fatalf("variant count = %d, want 1", len(product.Variants))
	}
	v := product.Variants[0]
	if v.Name != "Standard" || v.Price != 3.50 || v.Cost != 0 || v.Stock != 12 {
		t.Errorf("unexpected variant: %+v", v)
	}
}

func TestCreateProductFromVoice(t *testing.T) {
	extractor := &stubExtractor{
		ParseProductDescriptionFunc: func(ctx context.Context, _, _ string) (*dto.ParsedProduct, error) {
			return &dto.ParsedProduct{
				ProductName: "Iced Tea",
				Variants: []dto.ParsedVariant{
					{Name: "Lemon", Price: 2.00, Cost: 0.80, Stock: 30},
					{Name: "Peach", Price: 2.20, Cost: 0.90, Stock: 20},
				},
			}, nil
		},
	}
	svc := inventory.NewService(testutil.SeededCatalog(t))
	uc := inventory.NewIntakeUseCase(svc, extractor, zap.NewNop())

	product, err := uc.CreateProductFromVoice(context.Background(), "AAAA", "audio/webm")
	if err != nil {
		t.Fatalf("create from voice: %v", err)
	}
	if product.Name != "Iced Tea" || len(product.Variants) != 2 {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.Variants[1].Name != "Peach" || product.Variants[1].Price != 2.20 {
		t.Errorf("unexpected second variant: %+v", product.Variants[1])
	}
}

func TestCreateProductFromVoice_NoVariantsRejected(t *testing.T) {
	extractor := &stubExtractor{
		ParseProductDescriptionFunc: func(ctx context.Context, _, _ string) (*dto.ParsedProduct, error) {
			return &dto.ParsedProduct{ProductName: "Empty"}, nil
		},
	}
	svc := inventory.NewService(testutil.SeededCatalog(t))
	uc := inventory.NewIntakeUseCase(svc, extractor, zap.NewNop())

	if _, err := uc.CreateProductFromVoice(context.Background(), "AAAA", "audio/webm"); err == nil {
		t.Fatalf("expected validation error for empty variant list")
	}
}
