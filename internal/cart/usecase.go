package cart

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"voxpos/internal/ai"
	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
	"voxpos/internal/inventory"
)

// VoiceOrderUseCase runs the recording-to-cart flow: send audio plus the
// current catalog and cart to the extractor, then rebuild the cart from the
// extracted item list. The extraction result is the full resulting order,
// not a delta; a "remove the chips" instruction works because the returned
// list already omits the chips.
type VoiceOrderUseCase struct {
	store     *Store
	resolver  Resolver
	extractor ai.Extractor
	logger    *zap.Logger

	// generation discards responses from recordings that were superseded
	// while their extraction was still in flight.
	generation atomic.Int64
}

func NewVoiceOrderUseCase(store *Store, resolver Resolver, extractor ai.Extractor, logger *zap.Logger) *VoiceOrderUseCase {
	return &VoiceOrderUseCase{
		store:     store,
		resolver:  resolver,
		extractor: extractor,
		logger:    logger,
	}
}

// ErrSuperseded reports that a newer recording started before this one's
// extraction came back; the stale result was discarded without touching
// the cart.
var ErrSuperseded = apperrors.NewConflictError("superseded by a newer recording")

func (uc *VoiceOrderUseCase) ProcessVoiceOrder(ctx context.Context, audioB64, mimeType string) (Snapshot, error) {
	gen := uc.generation.Add(1)

	catalog := uc.resolver.Catalog(ctx)
	currentItems := uc.store.Items()

	result, err := uc.extractor.ExtractOrder(ctx, audioB64, mimeType, catalog, currentItems)
	if err != nil {
		return Snapshot{}, err
	}

	if uc.generation.Load() != gen {
		uc.logger.Warn("discarding stale voice extraction", zap.Int64("generation", gen))
		return Snapshot{}, ErrSuperseded
	}

	unrecognized := append([]string(nil), result.UnrecognizedItems...)
	var additions []Addition
	var ambiguities []domain.Ambiguity

	for _, item := range result.Items {
		res := uc.resolver.ResolveItem(ctx, item.ProductName, item.VariantName, item.Quantity)
		switch res.Status {
		case inventory.ResolutionMatched:
			additions = append(additions, Addition{
				Product:  *res.Product,
				Variant:  *res.Variant,
				Quantity: res.Quantity,
			})
		case inventory.ResolutionUnrecognized:
			unrecognized = append(unrecognized, res.Unrecognized)
		case inventory.ResolutionAmbiguous:
			ambiguities = append(ambiguities, *res.Ambiguity)
		}
	}

	uc.store.Reconcile(result.Transcript, unrecognized, additions, ambiguities)

	uc.logger.Info("voice order reconciled",
		zap.Int("lineCount", len(additions)),
		zap.Int("unrecognized", len(unrecognized)),
		zap.Int("ambiguities", len(ambiguities)))

	return uc.store.Snapshot(), nil
}

// AddByBarcode adds one unit of the variant carrying the scanned barcode,
// bypassing fuzzy resolution.
func (uc *VoiceOrderUseCase) AddByBarcode(ctx context.Context, barcode string) (Snapshot, error) {
	product, variant := uc.resolver.FindItemByBarcode(ctx, barcode)
	if product == nil {
		return Snapshot{}, apperrors.NewNotFoundError("barcode not found in inventory")
	}
	uc.store.AddItem(*product, *variant, 1)
	return uc.store.Snapshot(), nil
}

// AddItem adds an explicitly chosen variant, e.g. from the catalog UI.
func (uc *VoiceOrderUseCase) AddItem(ctx context.Context, productID, variantID, quantity int) (Snapshot, error) {
	if quantity <= 0 {
		return Snapshot{}, apperrors.NewValidationError("quantity must be positive", apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}
	product, err := uc.resolver.GetProduct(ctx, productID)
	if err != nil {
		return Snapshot{}, err
	}
	variant := product.FindVariantByID(variantID)
	if variant == nil {
		return Snapshot{}, apperrors.NewNotFoundError("variant not found")
	}
	uc.store.AddItem(*product, *variant, quantity)
	return uc.store.Snapshot(), nil
}
