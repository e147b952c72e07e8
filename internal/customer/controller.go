package customer

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
	"voxpos/internal/order"
)

type CustomerDTO struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	FirstSeen   time.Time `json:"firstSeen"`
	LastSeen    time.Time `json:"lastSeen"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  float64   `json:"totalSpent"`
}

func toCustomerDTO(c domain.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID,
		Name:        c.Name,
		FirstSeen:   c.FirstSeen,
		LastSeen:    c.LastSeen,
		TotalOrders: c.TotalOrders,
		TotalSpent:  c.TotalSpent,
	}
}

type Controller struct {
	service Service
	history OrderHistory
	logger  *zap.Logger
}

func NewController(service Service, history OrderHistory, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		history: history,
		logger:  logger,
	}
}

func (c *Controller) HandleSearchCustomers(w http.ResponseWriter, r *http.Request) {
	customers := c.service.SearchCustomers(r.Context(), r.URL.Query().Get("search"))
	out := make([]CustomerDTO, 0, len(customers))
	for _, cust := range customers {
		out = append(out, toCustomerDTO(cust))
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleGetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "customerId"))
	if err != nil || customerID <= 0 {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "customerId must be a positive integer",
		})
		return
	}

	customer, err := c.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toCustomerDTO(*customer))
}

// HandleGetCustomerOrders returns the customer's slice of the order
// history, most recent first.
func (c *Controller) HandleGetCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "customerId"))
	if err != nil || customerID <= 0 {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "customerId must be a positive integer",
		})
		return
	}

	if _, err := c.service.GetCustomer(r.Context(), customerID); err != nil {
		c.writeError(w, err)
		return
	}

	orders := c.history.FindByCustomerID(r.Context(), customerID)
	out := make([]order.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, order.ToOrderDTO(o))
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}
	c.logger.Error("customer request failed", zap.Error(err))
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
