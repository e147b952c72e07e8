package order

import (
	"go.uber.org/zap"

	"voxpos/internal/config"
	"voxpos/internal/order/repository"
)

type Module struct {
	Repository *repository.MemoryRepository
	History    HistoryService
	Finalize   *FinalizeUseCase
	Controller *Controller
}

func NewModule(repo *repository.MemoryRepository, cart Cart, catalog Catalog, customers CustomerDirectory, cfg config.OrderConfig, logger *zap.Logger) *Module {
	history := NewHistoryService(repo, customers, logger)
	finalize := NewFinalizeUseCase(cart, catalog, history, cfg.BlockOnStockShortfall, logger)
	return &Module{
		Repository: repo,
		History:    history,
		Finalize:   finalize,
		Controller: NewController(finalize, history, logger),
	}
}
