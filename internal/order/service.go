package order

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"voxpos/internal/domain"
)

type historyService struct {
	repo      Repository
	customers CustomerDirectory
	logger    *zap.Logger
}

func NewHistoryService(repo Repository, customers CustomerDirectory, logger *zap.Logger) HistoryService {
	return &historyService{
		repo:      repo,
		customers: customers,
		logger:    logger,
	}
}

// AddOrderToHistory computes the cost and profit totals, links the customer
// when a non-blank name was given (creating the record and bumping its
// stats in the same call), and prepends the order to the history.
func (s *historyService) AddOrderToHistory(ctx context.Context, items []domain.OrderLineItem, grandTotal float64, transcript, customerName, notes string) (*domain.Order, error) {
	var customer *domain.Customer
	if strings.TrimSpace(customerName) != "" {
		var err error
		customer, err = s.customers.FindOrCreateCustomer(ctx, customerName)
		if err != nil {
			return nil, err
		}
		if err := s.customers.UpdateCustomerStats(ctx, customer.ID, grandTotal); err != nil {
			return nil, err
		}
	}

	var totalCost float64
	for _, li := range items {
		totalCost += li.TotalCost
	}

	order := domain.Order{
		Items:      items,
		GrandTotal: grandTotal,
		TotalCost:  totalCost,
		Profit:     grandTotal - totalCost,
		Transcript: transcript,
		Notes:      notes,
	}
	if customer != nil {
		order.CustomerID = customer.ID
		order.CustomerName = customer.Name
	}

	stored := s.repo.Append(ctx, order)
	s.logger.Info("order recorded",
		zap.Int("orderId", stored.ID),
		zap.Float64("grandTotal", stored.GrandTotal),
		zap.Float64("profit", stored.Profit))

	return &stored, nil
}

// SearchOrders filters the history by order id substring, customer name
// substring or customer id substring; a blank term returns everything.
func (s *historyService) SearchOrders(ctx context.Context, term string) []domain.Order {
	orders := s.repo.List(ctx)
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return orders
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		idMatch := strings.Contains(strconv.Itoa(o.ID), term)
		nameMatch := o.CustomerName != "" && strings.Contains(strings.ToLower(o.CustomerName), term)
		customerIDMatch := o.CustomerID != 0 && strings.Contains(strconv.Itoa(o.CustomerID), term)
		if idMatch || nameMatch || customerIDMatch {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func (s *historyService) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	return s.repo.GetByID(ctx, orderID)
}
