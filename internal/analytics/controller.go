package analytics

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

func (c *Controller) HandleSummary(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, c.service.Summary(r.Context()))
}

func (c *Controller) HandleTopProducts(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, c.service.TopProductsByProfit(r.Context()))
}

func (c *Controller) HandleSalesByDay(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, c.service.SalesByDay(r.Context()))
}

func (c *Controller) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
