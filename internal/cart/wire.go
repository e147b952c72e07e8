package cart

import (
	"go.uber.org/zap"

	"voxpos/internal/ai"
)

type Module struct {
	Store      *Store
	UseCase    *VoiceOrderUseCase
	Controller *Controller
}

func NewModule(resolver Resolver, extractor ai.Extractor, logger *zap.Logger) *Module {
	store := NewStore()
	uc := NewVoiceOrderUseCase(store, resolver, extractor, logger)
	return &Module{
		Store:      store,
		UseCase:    uc,
		Controller: NewController(store, uc, resolver, logger),
	}
}
