package inventory

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"voxpos/internal/domain"
	"voxpos/internal/dto"
	apperrors "voxpos/internal/errors"
)

type Controller struct {
	service Service
	intake  IntakeUseCase
	logger  *zap.Logger
}

func NewController(service Service, intake IntakeUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		intake:  intake,
		logger:  logger,
	}
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	catalog := c.service.Catalog(r.Context())
	products := make([]ProductDTO, 0, len(catalog))
	for _, p := range catalog {
		products = append(products, toProductDTO(p))
	}
	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	product, err := c.service.CreateProduct(r.Context(), req.Name)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, toProductDTO(*product))
}

func (c *Controller) HandleRenameProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.pathID(w, r, "productId")
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.service.RenameProduct(r.Context(), productID, req.Name); err != nil {
		c.writeError(w, err)
		return
	}

	product, err := c.service.GetProduct(r.Context(), productID)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toProductDTO(*product))
}

func (c *Controller) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.pathID(w, r, "productId")
	if !ok {
		return
	}
	if err := c.service.DeleteProduct(r.Context(), productID); err != nil {
		c.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleAddVariant(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.pathID(w, r, "productId")
	if !ok {
		return
	}

	var req VariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	variant, err := c.service.AddVariant(r.Context(), productID, domain.ProductVariant{
		Name:    req.Name,
		Price:   req.Price,
		Cost:    req.Cost,
		Stock:   req.Stock,
		Barcode: req.Barcode,
	})
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, VariantDTO{
		ID:      variant.ID,
		Name:    variant.Name,
		Price:   variant.Price,
		Cost:    variant.Cost,
		Stock:   variant.Stock,
		Barcode: variant.Barcode,
	})
}

func (c *Controller) HandleUpdateVariant(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.pathID(w, r, "productId")
	if !ok {
		return
	}
	variantID, ok := c.pathID(w, r, "variantId")
	if !ok {
		return
	}

	var req VariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	err := c.service.UpdateVariant(r.Context(), productID, domain.ProductVariant{
		ID:      variantID,
		Name:    req.Name,
		Price:   req.Price,
		Cost:    req.Cost,
		Stock:   req.Stock,
		Barcode: req.Barcode,
	})
	if err != nil {
		c.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleDeleteVariant(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.pathID(w, r, "productId")
	if !ok {
		return
	}
	variantID, ok := c.pathID(w, r, "variantId")
	if !ok {
		return
	}
	if err := c.service.DeleteVariant(r.Context(), productID, variantID); err != nil {
		c.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleImageIntake(w http.ResponseWriter, r *http.Request) {
	var req ImageIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if strings.TrimSpace(req.ImageBase64) == "" || strings.TrimSpace(req.MimeType) == "" {
		c.writeValidationError(w, "imageBase64 and mimeType are required", apperrors.ValidationDetail{
			Field:   "imageBase64",
			Message: "imageBase64 and mimeType are required",
		})
		return
	}

	result, err := c.intake.RecognizeImage(r.Context(), req.ImageBase64, req.MimeType)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, result)
}

func (c *Controller) HandleApplyRecognizedStock(w http.ResponseWriter, r *http.Request) {
	var req ApplyStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	items := make([]dto.RecognizedStockItem, 0, len(req.RecognizedItems))
	for _, it := range req.RecognizedItems {
		items = append(items, dto.RecognizedStockItem{
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			VariantID: it.VariantID,
		})
	}

	applied := c.intake.ApplyRecognizedStock(r.Context(), items)
	c.writeJSON(w, http.StatusOK, ApplyStockResponse{Applied: applied})
}

func (c *Controller) HandlePromoteUnrecognizedItem(w http.ResponseWriter, r *http.Request) {
	var req PromoteItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	product, err := c.intake.PromoteUnrecognizedItem(r.Context(), dto.UnrecognizedStockItem{
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, toProductDTO(*product))
}

func (c *Controller) HandleVoiceProduct(w http.ResponseWriter, r *http.Request) {
	var req VoiceProductRequest
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

	product, err := c.intake.CreateProductFromVoice(r.Context(), req.AudioBase64, req.MimeType)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, toProductDTO(*product))
}

func (c *Controller) pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid "+param, apperrors.ValidationDetail{
			Field:   param,
			Message: param + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
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
	c.logger.Error("inventory request failed", zap.Error(err))
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
