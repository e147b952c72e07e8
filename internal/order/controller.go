package order

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "voxpos/internal/errors"
)

type Controller struct {
	finalize *FinalizeUseCase
	history  HistoryService
	logger   *zap.Logger
}

func NewController(finalize *FinalizeUseCase, history HistoryService, logger *zap.Logger) *Controller {
	return &Controller{
		finalize: finalize,
		history:  history,
		logger:   logger,
	}
}

func (c *Controller) HandleFinalizeOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, err := c.finalize.Finalize(r.Context())
	if err != nil {
		logger.Warn("finalize rejected", zap.Error(err))
		c.writeError(w, err)
		return
	}

	logger.Info("order finalized", zap.Int("orderId", order.ID))
	c.writeJSON(w, http.StatusCreated, ToOrderDTO(*order))
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders := c.history.SearchOrders(r.Context(), r.URL.Query().Get("search"))
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderDTO(o))
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderId"))
	if err != nil || orderID <= 0 {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "orderId must be a positive integer",
		})
		return
	}

	order, err := c.history.GetOrder(r.Context(), orderID)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, ToOrderDTO(*order))
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "VALIDATION_ERROR",
			"message": ve.Message,
			"details": ve.Details,
		})
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "CONFLICT",
			"message": ce.Message,
		})
		return
	}
	c.logger.Error("order request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
