package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"voxpos/internal/analytics"
	"voxpos/internal/cart"
	"voxpos/internal/customer"
	"voxpos/internal/inventory"
	"voxpos/internal/order"
)

func NewRouter(
	inventoryCtrl *inventory.Controller,
	cartCtrl *cart.Controller,
	orderCtrl *order.Controller,
	customerCtrl *customer.Controller,
	analyticsCtrl *analytics.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", inventoryCtrl.HandleListProducts)
			r.Post("/", inventoryCtrl.HandleCreateProduct)
			r.Put("/{productId}", inventoryCtrl.HandleRenameProduct)
			r.Delete("/{productId}", inventoryCtrl.HandleDeleteProduct)
			r.Post("/{productId}/variants", inventoryCtrl.HandleAddVariant)
			r.Put("/{productId}/variants/{variantId}", inventoryCtrl.HandleUpdateVariant)
			r.Delete("/{productId}/variants/{variantId}", inventoryCtrl.HandleDeleteVariant)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/image-intake", inventoryCtrl.HandleImageIntake)
			r.Post("/image-intake/apply", inventoryCtrl.HandleApplyRecognizedStock)
			r.Post("/image-intake/promote", inventoryCtrl.HandlePromoteUnrecognizedItem)
			r.Post("/voice-product", inventoryCtrl.HandleVoiceProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartCtrl.HandleGetCart)
			r.Delete("/", cartCtrl.HandleClearCart)
			r.Post("/voice", cartCtrl.HandleVoiceOrder)
			r.Post("/barcode", cartCtrl.HandleBarcode)
			r.Post("/items", cartCtrl.HandleAddItem)
			r.Patch("/items/{variantId}", cartCtrl.HandleUpdateQuantity)
			r.Post("/ambiguities/resolve", cartCtrl.HandleResolveAmbiguity)
			r.Delete("/ambiguities/{term}", cartCtrl.HandleDismissAmbiguity)
			r.Put("/customer", cartCtrl.HandleSetCustomerName)
			r.Put("/notes", cartCtrl.HandleSetNotes)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderCtrl.HandleFinalizeOrder)
			r.Get("/", orderCtrl.HandleListOrders)
			r.Get("/{orderId}", orderCtrl.HandleGetOrder)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customerCtrl.HandleSearchCustomers)
			r.Get("/{customerId}", customerCtrl.HandleGetCustomer)
			r.Get("/{customerId}/orders", customerCtrl.HandleGetCustomerOrders)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", analyticsCtrl.HandleSummary)
			r.Get("/top-products", analyticsCtrl.HandleTopProducts)
			r.Get("/sales-by-day", analyticsCtrl.HandleSalesByDay)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
