package order_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"voxpos/internal/domain"
	"voxpos/internal/order"
	orderrepo "voxpos/internal/order/repository"
)

type mockDirectory struct {
	FindOrCreateCustomerFunc func(ctx context.Context, name string) (*domain.Customer, error)
	UpdateCustomerStatsFunc  func(ctx context.Context, customerID int, orderTotal float64) error
}

func (m *mockDirectory) FindOrCreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	return m.FindOrCreateCustomerFunc(ctx, name)
}

func (m *mockDirectory) UpdateCustomerStats(ctx context.Context, customerID int, orderTotal float64) error {
	return m.UpdateCustomerStatsFunc(ctx, customerID, orderTotal)
}

func lineItem(name string, qty int, price, cost float64) domain.OrderLineItem {
	li := domain.OrderLineItem{Name: name, Quantity: qty, Price: price, Cost: cost}
	li.Recompute()
	return li
}

func TestAddOrderToHistory_TotalsAndCustomerLinkage(t *testing.T) {
	repo := orderrepo.NewMemoryRepository()
	statsCalls := 0
	directory := &mockDirectory{
		FindOrCreateCustomerFunc: func(ctx context.Context, name string) (*domain.Customer, error) {
			return &domain.Customer{ID: 7, Name: "Sam"}, nil
		},
		UpdateCustomerStatsFunc: func(ctx context.Context, customerID int, orderTotal float64) error {
			statsCalls++
			if customerID != 7 {
				t.Errorf("stats updated for customer %d, want 7", customerID)
			}
			if orderTotal != 5.25 {
				t.Errorf("stats updated with total %v, want 5.25", orderTotal)
			}
			return nil
		},
	}
	svc := order.NewHistoryService(repo, directory, zap.NewNop())

	items := []domain.OrderLineItem{
		lineItem("Classic Cola (Small)", 2, 1.50, 0.50),
		lineItem("Potato Chips (Regular)", 1, 2.25, 0.75),
	}
	stored, err := svc.AddOrderToHistory(context.Background(), items, 5.25, "a transcript", "Sam", "no ice")
	if err != nil {
		t.Fatalf("add order: %v", err)
	}

	if stored.ID != 1 {
		t.Errorf("id = %d, want 1", stored.ID)
	}
	if stored.TotalCost != 1.75 {
		t.Errorf("total cost = %v, want 1.75", stored.TotalCost)
	}
	if stored.Profit != 3.5 {
		t.Errorf("profit = %v, want 3.5", stored.Profit)
	}
	if stored.CustomerID != 7 || stored.CustomerName != "Sam" {
		t.Errorf("customer linkage missing: %+v", stored)
	}
	if stored.Notes != "no ice" || stored.Transcript != "a transcript" {
		t.Errorf("transcript or notes dropped: %+v", stored)
	}
	if statsCalls != 1 {
		t.Errorf("stats calls = %d, want 1", statsCalls)
	}
}

func TestAddOrderToHistory_BlankCustomerSkipsDirectory(t *testing.T) {
	repo := orderrepo.NewMemoryRepository()
	directory := &mockDirectory{
		FindOrCreateCustomerFunc: func(ctx context.Context, name string) (*domain.Customer, error) {
			t.Fatalf("directory must not be consulted for a blank name")
			return nil, nil
		},
	}
	svc := order.NewHistoryService(repo, directory, zap.NewNop())

	stored, err := svc.AddOrderToHistory(context.Background(),
		[]domain.OrderLineItem{lineItem("Chocolate Bar (Standard)", 1, 1.75, 0.60)},
		1.75, "", "   ", "")
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	if stored.CustomerID != 0 || stored.CustomerName != "" {
		t.Errorf("anonymous order carries customer fields: %+v", stored)
	}
}

func TestSearchOrders(t *testing.T) {
	repo := orderrepo.NewMemoryRepository()
	directory := &mockDirectory{
		FindOrCreateCustomerFunc: func(ctx context.Context, name string) (*domain.Customer, error) {
			id := 1
			if name == "Jane" {
				id = 2
			}
			return &domain.Customer{ID: id, Name: name}, nil
		},
		UpdateCustomerStatsFunc: func(ctx context.Context, customerID int, orderTotal float64) error {
			return nil
		},
	}
	svc := order.NewHistoryService(repo, directory, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.AddOrderToHistory(ctx, []domain.OrderLineItem{lineItem("x", 1, 1, 0)}, 1, "", "Sam", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddOrderToHistory(ctx, []domain.OrderLineItem{lineItem("x", 1, 1, 0)}, 1, "", "Jane", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddOrderToHistory(ctx, []domain.OrderLineItem{lineItem("x", 1, 1, 0)}, 1, "", "", ""); err != nil {
		t.Fatal(err)
	}

	all := svc.SearchOrders(ctx, "")
	if len(all) != 3 {
		t.Fatalf("blank term returned %d orders, want 3", len(all))
	}
	if all[0].ID != 3 {
		t.Errorf("search results not most-recent-first: %+v", all[0])
	}

	byName := svc.SearchOrders(ctx, "jan")
	if len(byName) != 1 || byName[0].CustomerName != "Jane" {
		t.Errorf("name search = %+v", byName)
	}

	byID := svc.SearchOrders(ctx, "3")
	if len(byID) != 1 || byID[0].ID != 3 {
		t.Errorf("id search = %+v", byID)
	}
}
