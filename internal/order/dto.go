package order

import (
	"time"

	"voxpos/internal/domain"
)

type LineItemDTO struct {
	ProductID   int     `json:"productId"`
	VariantID   int     `json:"variantId"`
	ProductName string  `json:"productName"`
	VariantName string  `json:"variantName"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Total       float64 `json:"total"`
	TotalCost   float64 `json:"totalCost"`
}

type OrderDTO struct {
	ID           int           `json:"id"`
	Timestamp    time.Time     `json:"timestamp"`
	Items        []LineItemDTO `json:"items"`
	GrandTotal   float64       `json:"grandTotal"`
	TotalCost    float64       `json:"totalCost"`
	Profit       float64       `json:"profit"`
	Transcript   string        `json:"transcript,omitempty"`
	CustomerID   int           `json:"customerId,omitempty"`
	CustomerName string        `json:"customerName,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}

func ToOrderDTO(o domain.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, LineItemDTO{
			ProductID:   li.ProductID,
			VariantID:   li.VariantID,
			ProductName: li.ProductName,
			VariantName: li.VariantName,
			Name:        li.Name,
			Quantity:    li.Quantity,
			Price:       li.Price,
			Cost:        li.Cost,
			Total:       li.Total,
			TotalCost:   li.TotalCost,
		})
	}
	return OrderDTO{
		ID:           o.ID,
		Timestamp:    o.Timestamp,
		Items:        items,
		GrandTotal:   o.GrandTotal,
		TotalCost:    o.TotalCost,
		Profit:       o.Profit,
		Transcript:   o.Transcript,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Notes:        o.Notes,
	}
}
