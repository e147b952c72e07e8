package dto

// Types exchanged with the speech/image extraction adapter. The adapter is
// an external collaborator; these structs are its wire contract as consumed
// by the cart and inventory flows.

// ExtractedItem is one (product name, optional variant name, quantity)
// triple pulled out of a voice order.
type ExtractedItem struct {
	ProductName string `json:"productName"`
	VariantName string `json:"variantName,omitempty"`
	Quantity    int    `json:"quantity"`
}

// ExtractedOrder is the full result of a voice-order extraction. Items is
// the complete resulting order, not a delta against the previous cart.
type ExtractedOrder struct {
	Transcript        string          `json:"transcript"`
	Items             []ExtractedItem `json:"items"`
	UnrecognizedItems []string        `json:"unrecognizedItems"`
}

// RecognizedStockItem is a counted item matched against the catalog by the
// image recognition step. VariantID is 0 when no variant was matched.
type RecognizedStockItem struct {
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
	VariantID int    `json:"variantId,omitempty"`
}

// UnrecognizedStockItem is a counted item the image recognition step could
// not match; Price is a suggestion, zero when unknown.
type UnrecognizedStockItem struct {
	ItemName string  `json:"itemName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price,omitempty"`
}

// RecognizedInventory is the result of parsing an inventory photo.
type RecognizedInventory struct {
	RecognizedItems   []RecognizedStockItem   `json:"recognizedItems"`
	UnrecognizedItems []UnrecognizedStockItem `json:"unrecognizedItems"`
}

// ParsedVariant is one variant of a spoken new-product description.
type ParsedVariant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
	Stock int     `json:"stock"`
}

// ParsedProduct is the result of parsing a spoken new-product description.
type ParsedProduct struct {
	ProductName string          `json:"productName"`
	Variants    []ParsedVariant `json:"variants"`
}
