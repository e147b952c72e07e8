package inventory

import (
	"time"

	"voxpos/internal/domain"
)

type VariantDTO struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Cost    float64 `json:"cost"`
	Stock   int     `json:"stock"`
	Barcode string  `json:"barcode,omitempty"`
}

type ProductDTO struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Variants    []VariantDTO `json:"variants"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

func toProductDTO(p domain.Product) ProductDTO {
	variants := make([]VariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantDTO{
			ID:      v.ID,
			Name:    v.Name,
			Price:   v.Price,
			Cost:    v.Cost,
			Stock:   v.Stock,
			Barcode: v.Barcode,
		})
	}
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Variants:    variants,
		LastUpdated: p.LastUpdated,
	}
}

type CreateProductRequest struct {
	Name string `json:"name"`
}

type VariantRequest struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Cost    float64 `json:"cost"`
	Stock   int     `json:"stock"`
	Barcode string  `json:"barcode"`
}

type ImageIntakeRequest struct {
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType"`
}

type ApplyStockRequest struct {
	RecognizedItems []RecognizedItemRequest `json:"recognizedItems"`
}

type RecognizedItemRequest struct {
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
	VariantID int    `json:"variantId"`
}

type ApplyStockResponse struct {
	Applied int `json:"applied"`
}

type PromoteItemRequest struct {
	ItemName string  `json:"itemName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type VoiceProductRequest struct {
	AudioBase64 string `json:"audioBase64"`
	MimeType    string `json:"mimeType"`
}
