package customer

import (
	"go.uber.org/zap"

	"voxpos/internal/customer/repository"
)

type Module struct {
	Service    Service
	Controller *Controller
}

func NewModule(repo *repository.MemoryRepository, history OrderHistory, logger *zap.Logger) *Module {
	svc := NewService(repo)
	return &Module{
		Service:    svc,
		Controller: NewController(svc, history, logger),
	}
}
