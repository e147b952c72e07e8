package inventory

import (
	"context"
	"strings"

	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
)

type ResolutionStatus string

const (
	ResolutionMatched      ResolutionStatus = "MATCHED"
	ResolutionUnrecognized ResolutionStatus = "UNRECOGNIZED"
	ResolutionAmbiguous    ResolutionStatus = "AMBIGUOUS"
)

// ItemResolution is the outcome of mapping free text onto the catalog.
// Exactly one of the outcome fields is populated, per Status.
type ItemResolution struct {
	Status       ResolutionStatus
	Product      *domain.Product
	Variant      *domain.ProductVariant
	Quantity     int
	Unrecognized string
	Ambiguity    *domain.Ambiguity
}

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &catalogService{repo: repo}
}

func (s *catalogService) Catalog(ctx context.Context) []domain.Product {
	return s.repo.List(ctx)
}

func (s *catalogService) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, productID)
}

func (s *catalogService) CreateProduct(ctx context.Context, name string) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("product name must not be blank", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must not be blank",
		})
	}
	return s.repo.AddProduct(ctx, name)
}

func (s *catalogService) RenameProduct(ctx context.Context, productID int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewValidationError("product name must not be blank", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must not be blank",
		})
	}
	return s.repo.UpdateProduct(ctx, productID, name)
}

func (s *catalogService) DeleteProduct(ctx context.Context, productID int) error {
	return s.repo.DeleteProduct(ctx, productID)
}

func (s *catalogService) AddVariant(ctx context.Context, productID int, variant domain.ProductVariant) (*domain.ProductVariant, error) {
	if strings.TrimSpace(variant.Name) == "" {
		return nil, apperrors.NewValidationError("variant name must not be blank", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must not be blank",
		})
	}
	return s.repo.AddVariant(ctx, productID, variant)
}

func (s *catalogService) UpdateVariant(ctx context.Context, productID int, variant domain.ProductVariant) error {
	if strings.TrimSpace(variant.Name) == "" {
		return apperrors.NewValidationError("variant name must not be blank", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must not be blank",
		})
	}
	return s.repo.UpdateVariant(ctx, productID, variant)
}

func (s *catalogService) DeleteVariant(ctx context.Context, productID, variantID int) error {
	return s.repo.DeleteVariant(ctx, productID, variantID)
}

// FindProductByFuzzyName does a case-insensitive substring match over the
// catalog in insertion order. First match wins; there is no ranking.
func (s *catalogService) FindProductByFuzzyName(ctx context.Context, name string) *domain.Product {
	term := strings.ToLower(strings.TrimSpace(name))
	for _, p := range s.repo.List(ctx) {
		if strings.Contains(strings.ToLower(p.Name), term) {
			cp := p
			return &cp
		}
	}
	return nil
}

// FindItemByBarcode is an exact scan over all variants, bypassing fuzzy
// resolution entirely.
func (s *catalogService) FindItemByBarcode(ctx context.Context, barcode string) (*domain.Product, *domain.ProductVariant) {
	for _, p := range s.repo.List(ctx) {
		for i := range p.Variants {
			if p.Variants[i].Barcode != "" && p.Variants[i].Barcode == barcode {
				cp := p
				cv := p.Variants[i]
				return &cp, &cv
			}
		}
	}
	return nil, nil
}

// ResolveItem applies the resolution policy for one extracted item:
//  1. unknown product        -> unrecognized ("name variant" trimmed)
//  2. known product, unknown variant -> unrecognized ("name (variant)")
//  3. variant omitted, sole variant  -> auto-selected
//  4. variant omitted, several       -> ambiguity keyed by product name
func (s *catalogService) ResolveItem(ctx context.Context, productName, variantName string, quantity int) ItemResolution {
	product := s.FindProductByFuzzyName(ctx, productName)
	if product == nil {
		return ItemResolution{
			Status:       ResolutionUnrecognized,
			Quantity:     quantity,
			Unrecognized: strings.TrimSpace(productName + " " + variantName),
		}
	}

	if variantName != "" {
		variant := product.MatchVariant(variantName)
		if variant == nil {
			return ItemResolution{
				Status:       ResolutionUnrecognized,
				Quantity:     quantity,
				Unrecognized: domain.CompositeName(productName, variantName),
			}
		}
		return ItemResolution{
			Status:   ResolutionMatched,
			Product:  product,
			Variant:  variant,
			Quantity: quantity,
		}
	}

	if len(product.Variants) == 1 {
		return ItemResolution{
			Status:   ResolutionMatched,
			Product:  product,
			Variant:  &product.Variants[0],
			Quantity: quantity,
		}
	}

	return ItemResolution{
		Status:   ResolutionAmbiguous,
		Product:  product,
		Quantity: quantity,
		Ambiguity: &domain.Ambiguity{
			Term:     product.Name,
			Product:  *product,
			Quantity: quantity,
		},
	}
}

// CheckStockAvailability compares requested quantities against the stock
// snapshots captured when each line was added. Advisory only.
func (s *catalogService) CheckStockAvailability(items []domain.OrderLineItem) []domain.StockIssue {
	var issues []domain.StockIssue
	for _, li := range items {
		if li.Stock < li.Quantity {
			issues = append(issues, domain.StockIssue{
				Name:      li.Name,
				Requested: li.Quantity,
				Available: li.Stock,
			})
		}
	}
	return issues
}

func (s *catalogService) DecrementStock(ctx context.Context, updates []domain.StockUpdate) {
	s.repo.DecrementStock(ctx, updates)
}

func (s *catalogService) AddStock(ctx context.Context, updates []domain.StockUpdate) {
	s.repo.AddStock(ctx, updates)
}
