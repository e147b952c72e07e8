package order

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
)

// FinalizeUseCase converts the order in progress into a permanent history
// entry. Stock decrement and history append are two sequential steps, not
// one atomic unit; an interruption between them leaves stock decremented
// without a recorded order.
type FinalizeUseCase struct {
	cart                  Cart
	catalog               Catalog
	history               HistoryService
	blockOnStockShortfall bool
	logger                *zap.Logger
}

func NewFinalizeUseCase(cart Cart, catalog Catalog, history HistoryService, blockOnStockShortfall bool, logger *zap.Logger) *FinalizeUseCase {
	return &FinalizeUseCase{
		cart:                  cart,
		catalog:               catalog,
		history:               history,
		blockOnStockShortfall: blockOnStockShortfall,
		logger:                logger,
	}
}

func (uc *FinalizeUseCase) Finalize(ctx context.Context) (*domain.Order, error) {
	snap := uc.cart.Snapshot()

	if len(snap.Items) == 0 {
		return nil, apperrors.NewValidationError("order is empty", apperrors.ValidationDetail{
			Field:   "items",
			Message: "add items to the order before finalizing",
		})
	}
	if len(snap.Ambiguities) > 0 {
		return nil, apperrors.NewConflictError("resolve all ambiguous items before finalizing")
	}

	issues := uc.catalog.CheckStockAvailability(snap.Items)
	if len(issues) > 0 {
		if uc.blockOnStockShortfall {
			return nil, apperrors.NewConflictError("insufficient stock: " + describeIssues(issues))
		}
		uc.logger.Warn("finalizing despite stock shortfall", zap.String("issues", describeIssues(issues)))
	}

	updates := make([]domain.StockUpdate, 0, len(snap.Items))
	for _, li := range snap.Items {
		updates = append(updates, domain.StockUpdate{
			VariantID: li.VariantID,
			Quantity:  li.Quantity,
		})
	}
	uc.catalog.DecrementStock(ctx, updates)

	order, err := uc.history.AddOrderToHistory(ctx, snap.Items, snap.GrandTotal, snap.Transcript, snap.CustomerName, snap.Notes)
	if err != nil {
		return nil, err
	}

	uc.cart.Clear()
	return order, nil
}

func describeIssues(issues []domain.StockIssue) string {
	parts := make([]string, 0, len(issues))
	for _, i := range issues {
		parts = append(parts, fmt.Sprintf("%s (requested %d, available %d)", i.Name, i.Requested, i.Available))
	}
	return strings.Join(parts, ", ")
}
