package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProductVariant struct {
	ID      int
	Name    string
	Price   float64
	Cost    float64
	Stock   int
	Barcode string
}

type Product struct {
	ID          int
	Name        string
	Variants    []ProductVariant
	LastUpdated time.Time
}

// FindVariantByID scans the product's own variants; variant ids are unique
// catalog-wide, so a hit here is the global owner.
func (p *Product) FindVariantByID(variantID int) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// MatchVariant prefers an exact case-insensitive name match and falls back
// to substring containment.
func (p *Product) MatchVariant(name string) *ProductVariant {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i := range p.Variants {
		if strings.ToLower(p.Variants[i].Name) == lower {
			return &p.Variants[i]
		}
	}
	for i := range p.Variants {
		if strings.Contains(strings.ToLower(p.Variants[i].Name), lower) {
			return &p.Variants[i]
		}
	}
	return nil
}

// CompositeName renders the display name used on order lines,
// e.g. "Classic Cola (Small)".
func CompositeName(productName, variantName string) string {
	return fmt.Sprintf("%s (%s)", productName, variantName)
}

// StockIssue describes an advisory shortfall between a requested quantity
// and the stock snapshot taken when the line was added.
type StockIssue struct {
	Name      string
	Requested int
	Available int
}

// StockUpdate is one variant-level stock delta, keyed by the catalog-wide
// variant id.
type StockUpdate struct {
	VariantID int
	Quantity  int
}
