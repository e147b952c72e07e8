package analytics_test

import (
	"context"
	"testing"
	"time"

	"voxpos/internal/analytics"
	"voxpos/internal/domain"
)

type stubHistory struct {
	orders []domain.Order
}

func (s *stubHistory) List(ctx context.Context) []domain.Order {
	return s.orders
}

func day(dateStr string) time.Time {
	ts, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	return ts
}

func line(productName string, qty int, price, cost float64) domain.OrderLineItem {
	li := domain.OrderLineItem{ProductName: productName, Quantity: qty, Price: price, Cost: cost}
	li.Recompute()
	return li
}

func TestSummary(t *testing.T) {
	svc := analytics.NewService(&stubHistory{orders: []domain.Order{
		{GrandTotal: 3.00, TotalCost: 1.00},
		{GrandTotal: 5.00, TotalCost: 2.00},
	}})

	got := svc.Summary(context.Background())
	if got.TotalOrders != 2 {
		t.Errorf("orders = %d, want 2", got.TotalOrders)
	}
	if got.TotalRevenue != 8.00 {
		t.Errorf("revenue = %v, want 8.00", got.TotalRevenue)
	}
	if got.AverageOrderValue != 4.00 {
		t.Errorf("aov = %v, want 4.00", got.AverageOrderValue)
	}
	if got.TotalProfit != 5.00 {
		t.Errorf("profit = %v, want 5.00", got.TotalProfit)
	}
	if got.ProfitMargin != 62.5 {
		t.Errorf("margin = %v, want 62.5", got.ProfitMargin)
	}
}

func TestSummary_Empty(t *testing.T) {
	svc := analytics.NewService(&stubHistory{})

	got := svc.Summary(context.Background())
	if got.TotalOrders != 0 || got.AverageOrderValue != 0 || got.ProfitMargin != 0 {
		t.Errorf("empty summary = %+v", got)
	}
}

func TestTopProductsByProfit(t *testing.T) {
	// six products so the top-five cut applies; Cola appears in two orders
	// and must be grouped across them
	orders := []domain.Order{
		{Items: []domain.OrderLineItem{
			line("Classic Cola", 2, 1.50, 0.50),
			line("Potato Chips", 1, 2.25, 0.75),
		}},
		{Items: []domain.OrderLineItem{
			line("Classic Cola", 1, 2.50, 1.00),
			line("Chocolate Bar", 1, 1.75, 0.75),
			line("Iced Tea", 1, 2.00, 1.75),
			line("Gum", 1, 0.50, 0.25),
			line("Water", 1, 1.00, 0.875),
		}},
	}
	svc := analytics.NewService(&stubHistory{orders: orders})

	got := svc.TopProductsByProfit(context.Background())
	if len(got) != 5 {
		t.Fatalf("got %d products, want 5", len(got))
	}
	if got[0].Name != "Classic Cola" {
		t.Errorf("top product = %q, want Classic Cola", got[0].Name)
	}
	if got[0].Quantity != 3 {
		t.Errorf("cola quantity = %d, want 3 across orders", got[0].Quantity)
	}
	if got[0].Profit != 3.50 {
		t.Errorf("cola profit = %v, want 3.50", got[0].Profit)
	}
	for _, ps := range got {
		if ps.Name == "Water" {
			t.Errorf("sixth-place product made the top five: %+v", got)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Profit > got[i-1].Profit {
			t.Errorf("not sorted by profit: %+v", got)
		}
	}
}

func TestSalesByDay(t *testing.T) {
	orders := []domain.Order{
		{GrandTotal: 3.00, Timestamp: day("2026-08-30")},
		{GrandTotal: 2.00, Timestamp: day("2026-08-29")},
		{GrandTotal: 4.00, Timestamp: day("2026-08-30").Add(6 * time.Hour)},
	}
	svc := analytics.NewService(&stubHistory{orders: orders})

	got := svc.SalesByDay(context.Background())
	if len(got) != 2 {
		t.Fatalf("got %d buckets, want 2", len(got))
	}
	if got[0].Date != "2026-08-29" || got[0].Revenue != 2.00 {
		t.Errorf("first bucket = %+v", got[0])
	}
	if got[1].Date != "2026-08-30" || got[1].Revenue != 7.00 {
		t.Errorf("second bucket = %+v", got[1])
	}
}
