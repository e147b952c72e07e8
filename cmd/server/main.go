package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"voxpos/internal/ai"
	"voxpos/internal/analytics"
	"voxpos/internal/cart"
	"voxpos/internal/commons"
	"voxpos/internal/customer"
	customerrepo "voxpos/internal/customer/repository"
	"voxpos/internal/infrastructure/logger"
	"voxpos/internal/inventory"
	inventoryrepo "voxpos/internal/inventory/repository"
	"voxpos/internal/order"
	orderrepo "voxpos/internal/order/repository"
	"voxpos/internal/server"
)

func main() {
	cfg, err := commons.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	extractor := ai.NewClient(cfg.AI, zapLogger)

	catalogRepo := inventoryrepo.NewMemoryRepository()
	if err := inventory.Seed(context.Background(), catalogRepo); err != nil {
		zapLogger.Fatal("seeding catalog", zap.Error(err))
	}
	zapLogger.Info("catalog seeded")

	historyRepo := orderrepo.NewMemoryRepository()
	directoryRepo := customerrepo.NewMemoryRepository()

	inventoryMod := inventory.NewModule(catalogRepo, extractor, zapLogger)
	cartMod := cart.NewModule(inventoryMod.Service, extractor, zapLogger)
	customerMod := customer.NewModule(directoryRepo, historyRepo, zapLogger)
	orderMod := order.NewModule(historyRepo, cartMod.Store, inventoryMod.Service, customerMod.Service, cfg.Order, zapLogger)
	analyticsCtrl := analytics.NewController(analytics.NewService(historyRepo), zapLogger)

	router := server.NewRouter(
		inventoryMod.Controller,
		cartMod.Controller,
		orderMod.Controller,
		customerMod.Controller,
		analyticsCtrl,
		zapLogger,
	)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
