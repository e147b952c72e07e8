package cart

import (
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
	Stock       int     `json:"stock"`
}

type AmbiguityDTO struct {
	Term     string               `json:"term"`
	Quantity int                  `json:"quantity"`
	Options  []AmbiguityOptionDTO `json:"options"`
}

type AmbiguityOptionDTO struct {
	VariantID int     `json:"variantId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type StockIssueDTO struct {
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

type CartView struct {
	State        State           `json:"state"`
	Items        []LineItemDTO   `json:"items"`
	GrandTotal   float64         `json:"grandTotal"`
	CustomerName string          `json:"customerName"`
	Notes        string          `json:"notes"`
	Transcript   string          `json:"transcript"`
	Unrecognized []string        `json:"unrecognizedItems"`
	Ambiguities  []AmbiguityDTO  `json:"ambiguousItems"`
	StockIssues  []StockIssueDTO `json:"stockIssues"`
}

func toCartView(snap Snapshot, issues []domain.StockIssue) CartView {
	view := CartView{
		State:        DeriveState(snap.Items, snap.Ambiguities, issues),
		Items:        make([]LineItemDTO, 0, len(snap.Items)),
		GrandTotal:   snap.GrandTotal,
		CustomerName: snap.CustomerName,
		Notes:        snap.Notes,
		Transcript:   snap.Transcript,
		Unrecognized: snap.Unrecognized,
		Ambiguities:  make([]AmbiguityDTO, 0, len(snap.Ambiguities)),
		StockIssues:  make([]StockIssueDTO, 0, len(issues)),
	}
	if view.Unrecognized == nil {
		view.Unrecognized = []string{}
	}

	for _, li := range snap.Items {
		view.Items = append(view.Items, LineItemDTO{
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
			Stock:       li.Stock,
		})
	}

	for _, amb := range snap.Ambiguities {
		options := make([]AmbiguityOptionDTO, 0, len(amb.Product.Variants))
		for _, v := range amb.Product.Variants {
			options = append(options, AmbiguityOptionDTO{
				VariantID: v.ID,
				Name:      v.Name,
				Price:     v.Price,
			})
		}
		view.Ambiguities = append(view.Ambiguities, AmbiguityDTO{
			Term:     amb.Term,
			Quantity: amb.Quantity,
			Options:  options,
		})
	}

	for _, issue := range issues {
		view.StockIssues = append(view.StockIssues, StockIssueDTO{
			Name:      issue.Name,
			Requested: issue.Requested,
			Available: issue.Available,
		})
	}

	return view
}

type VoiceOrderRequest struct {
	AudioBase64 string `json:"audioBase64"`
	MimeType    string `json:"mimeType"`
}

type BarcodeRequest struct {
	Barcode string `json:"barcode"`
}

type AddItemRequest struct {
	ProductID int `json:"productId"`
	VariantID int `json:"variantId"`
	Quantity  int `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ResolveAmbiguityRequest struct {
	Term      string `json:"term"`
	VariantID int    `json:"variantId"`
}

type CustomerNameRequest struct {
	CustomerName string `json:"customerName"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}
