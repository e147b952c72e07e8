package analytics

import (
	"context"
	"sort"

	"voxpos/internal/domain"
)

// History is the read-only slice of order storage analytics works from.
type History interface {
	List(ctx context.Context) []domain.Order
}

type Summary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalCost         float64 `json:"totalCost"`
	TotalProfit       float64 `json:"totalProfit"`
	ProfitMargin      float64 `json:"profitMargin"`
}

type ProductStats struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
}

type DailySales struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type Service struct {
	history History
}

func NewService(history History) *Service {
	return &Service{history: history}
}

func (s *Service) Summary(ctx context.Context) Summary {
	orders := s.history.List(ctx)

	var summary Summary
	summary.TotalOrders = len(orders)
	for _, o := range orders {
		summary.TotalRevenue += o.GrandTotal
		summary.TotalCost += o.TotalCost
	}
	summary.TotalProfit = summary.TotalRevenue - summary.TotalCost
	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}
	if summary.TotalRevenue > 0 {
		summary.ProfitMargin = summary.TotalProfit / summary.TotalRevenue * 100
	}
	return summary
}

// TopProductsByProfit groups line items by base product name and returns
// the five most profitable products.
func (s *Service) TopProductsByProfit(ctx context.Context) []ProductStats {
	stats := make(map[string]*ProductStats)
	var names []string

	for _, o := range s.history.List(ctx) {
		for _, li := range o.Items {
			ps, ok := stats[li.ProductName]
			if !ok {
				ps = &ProductStats{Name: li.ProductName}
				stats[li.ProductName] = ps
				names = append(names, li.ProductName)
			}
			ps.Quantity += li.Quantity
			ps.Revenue += li.Total
			ps.Profit += li.Total - li.TotalCost
		}
	}

	out := make([]ProductStats, 0, len(names))
	for _, name := range names {
		out = append(out, *stats[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Profit > out[j].Profit })

	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// SalesByDay buckets revenue by UTC calendar date, sorted ascending.
func (s *Service) SalesByDay(ctx context.Context) []DailySales {
	buckets := make(map[string]float64)
	for _, o := range s.history.List(ctx) {
		key := o.Timestamp.UTC().Format("2006-01-02")
		buckets[key] += o.GrandTotal
	}

	out := make([]DailySales, 0, len(buckets))
	for date, revenue := range buckets {
		out = append(out, DailySales{Date: date, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
