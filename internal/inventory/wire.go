package inventory

import (
	"go.uber.org/zap"

	"voxpos/internal/ai"
	"voxpos/internal/inventory/repository"
)

type Module struct {
	Service    Service
	Controller *Controller
}

func NewModule(repo *repository.MemoryRepository, extractor ai.Extractor, logger *zap.Logger) *Module {
	svc := NewService(repo)
	intake := NewIntakeUseCase(svc, extractor, logger)
	return &Module{
		Service:    svc,
		Controller: NewController(svc, intake, logger),
	}
}
