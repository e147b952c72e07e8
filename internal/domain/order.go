package domain

import "time"

// OrderLineItem is one product+variant+quantity entry in a cart or a
// finalized order. Total and TotalCost are recomputed on every quantity
// change and are never stored out of sync.
type OrderLineItem struct {
	ProductID   int
	VariantID   int
	ProductName string
	VariantName string
	Name        string
	Quantity    int
	Price       float64
	Cost        float64
	Total       float64
	TotalCost   float64
	Stock       int
}

// Recompute refreshes the derived totals after a quantity change.
func (li *OrderLineItem) Recompute() {
	li.Total = float64(li.Quantity) * li.Price
	li.TotalCost = float64(li.Quantity) * li.Cost
}

// Order is an immutable history entry. Profit always equals
// GrandTotal - TotalCost.
type Order struct {
	ID           int
	Timestamp    time.Time
	Items        []OrderLineItem
	GrandTotal   float64
	TotalCost    float64
	Profit       float64
	Transcript   string
	CustomerID   int
	CustomerName string
	Notes        string
}

// Ambiguity is a resolved product with an unresolved variant choice,
// pending user selection. Transient; keyed by Term.
type Ambiguity struct {
	Term     string
	Product  Product
	Quantity int
}
