package cart

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "voxpos/internal/errors"
)

type Controller struct {
	store    *Store
	useCase  *VoiceOrderUseCase
	resolver Resolver
	logger   *zap.Logger
}

func NewController(store *Store, useCase *VoiceOrderUseCase, resolver Resolver, logger *zap.Logger) *Controller {
	return &Controller{
		store:    store,
		useCase:  useCase,
		resolver: resolver,
		logger:   logger,
	}
}

func (c *Controller) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	c.writeCart(w)
}

func (c *Controller) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	c.store.Clear()
	c.writeCart(w)
}

func (c *Controller) HandleVoiceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req VoiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if strings.TrimSpace(req.AudioBase64) == "" || strings.TrimSpace(req.MimeType) == "" {
		c.writeValidationError(w, "audioBase64 and mimeType are required", apperrors.ValidationDetail{
			Field:   "audioBase64",
			Message: "audioBase64 and mimeType are required",
		})
		return
	}

	snap, err := c.useCase.ProcessVoiceOrder(r.Context(), req.AudioBase64, req.MimeType)
	if err != nil {
		logger.Warn("voice order processing failed", zap.Error(err))
		c.writeError(w, err)
		return
	}

	issues := c.resolver.CheckStockAvailability(snap.Items)
	c.writeJSON(w, http.StatusOK, toCartView(snap, issues))
}

func (c *Controller) HandleBarcode(w http.ResponseWriter, r *http.Request) {
	var req BarcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if strings.TrimSpace(req.Barcode) == "" {
		c.writeValidationError(w, "barcode is required", apperrors.ValidationDetail{
			Field:   "barcode",
			Message: "barcode must not be blank",
		})
		return
	}

	snap, err := c.useCase.AddByBarcode(r.Context(), req.Barcode)
	if err != nil {
		c.writeError(w, err)
		return
	}

	issues := c.resolver.CheckStockAvailability(snap.Items)
	c.writeJSON(w, http.StatusOK, toCartView(snap, issues))
}

func (c *Controller) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	snap, err := c.useCase.AddItem(r.Context(), req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		c.writeError(w, err)
		return
	}

	issues := c.resolver.CheckStockAvailability(snap.Items)
	c.writeJSON(w, http.StatusOK, toCartView(snap, issues))
}

func (c *Controller) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	variantID, err := strconv.Atoi(chi.URLParam(r, "variantId"))
	if err != nil || variantID <= 0 {
		c.writeValidationError(w, "invalid variantId", apperrors.ValidationDetail{
			Field:   "variantId",
			Message: "variantId must be a positive integer",
		})
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	c.store.UpdateQuantity(variantID, req.Quantity)
	c.writeCart(w)
}

func (c *Controller) HandleResolveAmbiguity(w http.ResponseWriter, r *http.Request) {
	var req ResolveAmbiguityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.store.ResolveAmbiguity(req.Term, req.VariantID); err != nil {
		c.writeError(w, err)
		return
	}
	c.writeCart(w)
}

func (c *Controller) HandleDismissAmbiguity(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	if term == "" {
		c.writeValidationError(w, "term is required", apperrors.ValidationDetail{
			Field:   "term",
			Message: "term must not be blank",
		})
		return
	}
	c.store.DismissAmbiguity(term)
	c.writeCart(w)
}

func (c *Controller) HandleSetCustomerName(w http.ResponseWriter, r *http.Request) {
	var req CustomerNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	c.store.SetCustomerName(req.CustomerName)
	c.writeCart(w)
}

func (c *Controller) HandleSetNotes(w http.ResponseWriter, r *http.Request) {
	var req NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	c.store.SetNotes(req.Notes)
	c.writeCart(w)
}

func (c *Controller) writeCart(w http.ResponseWriter) {
	snap := c.store.Snapshot()
	issues := c.resolver.CheckStockAvailability(snap.Items)
	c.writeJSON(w, http.StatusOK, toCartView(snap, issues))
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
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
	c.logger.Error("cart request failed", zap.Error(err))
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
