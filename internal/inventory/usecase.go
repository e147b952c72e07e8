package inventory

import (
	"context"

	"go.uber.org/zap"

	"voxpos/internal/ai"
	"voxpos/internal/domain"
	"voxpos/internal/dto"
	apperrors "voxpos/internal/errors"
)

type intakeUseCase struct {
	service   Service
	extractor ai.Extractor
	logger    *zap.Logger
}

func NewIntakeUseCase(service Service, extractor ai.Extractor, logger *zap.Logger) IntakeUseCase {
	return &intakeUseCase{
		service:   service,
		extractor: extractor,
		logger:    logger,
	}
}

func (uc *intakeUseCase) RecognizeImage(ctx context.Context, imageB64, mimeType string) (*dto.RecognizedInventory, error) {
	catalog := uc.service.Catalog(ctx)
	result, err := uc.extractor.RecognizeInventoryImage(ctx, imageB64, mimeType, catalog)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("inventory image recognized",
		zap.Int("recognized", len(result.RecognizedItems)),
		zap.Int("unrecognized", len(result.UnrecognizedItems)))
	return result, nil
}

// ApplyRecognizedStock adds counted quantities to stock for every
// recognized item carrying a variant id, and reports how many item types
// were applied. Items without a variant id are skipped.
func (uc *intakeUseCase) ApplyRecognizedStock(ctx context.Context, items []dto.RecognizedStockItem) int {
	var updates []domain.StockUpdate
	for _, item := range items {
		if item.VariantID == 0 {
			continue
		}
		updates = append(updates, domain.StockUpdate{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}
	if len(updates) == 0 {
		return 0
	}
	uc.service.AddStock(ctx, updates)
	return len(updates)
}

// PromoteUnrecognizedItem turns an unmatched counted item into a new
// product with a single "Standard" variant; the counted quantity becomes
// the initial stock, cost starts at zero.
func (uc *intakeUseCase) PromoteUnrecognizedItem(ctx context.Context, item dto.UnrecognizedStockItem) (*domain.Product, error) {
	product, err := uc.service.CreateProduct(ctx, item.ItemName)
	if err != nil {
		return nil, err
	}

	_, err = uc.service.AddVariant(ctx, product.ID, domain.ProductVariant{
		Name:  "Standard",
		Price: item.Price,
		Cost:  0,
		Stock: item.Quantity,
	})
	if err != nil {
		return nil, err
	}

	return uc.service.GetProduct(ctx, product.ID)
}

func (uc *intakeUseCase) CreateProductFromVoice(ctx context.Context, audioB64, mimeType string) (*domain.Product, error) {
	parsed, err := uc.extractor.ParseProductDescription(ctx, audioB64, mimeType)
	if err != nil {
		return nil, err
	}
	if len(parsed.Variants) == 0 {
		return nil, apperrors.NewValidationError("spoken description yielded no variants", apperrors.ValidationDetail{
			Field:   "variants",
			Message: "at least one variant is required",
		})
	}

	product, err := uc.service.CreateProduct(ctx, parsed.ProductName)
	if err != nil {
		return nil, err
	}
	for _, v := range parsed.Variants {
		if _, err := uc.service.AddVariant(ctx, product.ID, domain.ProductVariant{
			Name:  v.Name,
			Price: v.Price,
			Cost:  v.Cost,
			Stock: v.Stock,
		}); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("product created from voice description",
		zap.Int("productId", product.ID),
		zap.Int("variantCount", len(parsed.Variants)))

	return uc.service.GetProduct(ctx, product.ID)
}
