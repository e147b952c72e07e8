package ai

import (
	"context"

	"voxpos/internal/domain"
	"voxpos/internal/dto"
)

// Extractor is the contract with the external generative-AI service. The
// service itself is not part of this repository; implementations translate
// captured media into the structured results the core consumes.
type Extractor interface {
	// ExtractOrder turns recorded audio into the complete resulting order.
	// The catalog and current cart are sent as context so the extraction
	// can compute the net item list ("remove the chips" works because the
	// returned Items replace the cart wholesale).
	ExtractOrder(ctx context.Context, audioB64, mimeType string, catalog []domain.Product, cart []domain.OrderLineItem) (*dto.ExtractedOrder, error)

	// RecognizeInventoryImage counts stock items on a shelf photo and
	// matches them against the known product names.
	RecognizeInventoryImage(ctx context.Context, imageB64, mimeType string, catalog []domain.Product) (*dto.RecognizedInventory, error)

	// ParseProductDescription turns a spoken new-product description into
	// a product name plus priced variants.
	ParseProductDescription(ctx context.Context, audioB64, mimeType string) (*dto.ParsedProduct, error)
}
