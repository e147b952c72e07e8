package customer

import (
	"context"
	"strconv"
	"strings"

	"voxpos/internal/domain"
)

type directoryService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &directoryService{repo: repo}
}

func (s *directoryService) FindOrCreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	return s.repo.FindOrCreate(ctx, name)
}

func (s *directoryService) UpdateCustomerStats(ctx context.Context, customerID int, orderTotal float64) error {
	return s.repo.UpdateStats(ctx, customerID, orderTotal)
}

func (s *directoryService) GetCustomer(ctx context.Context, customerID int) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, customerID)
}

// SearchCustomers filters by name substring or id substring; a blank term
// returns everyone.
func (s *directoryService) SearchCustomers(ctx context.Context, term string) []domain.Customer {
	customers := s.repo.List(ctx)
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return customers
	}

	filtered := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strconv.Itoa(c.ID), term) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
