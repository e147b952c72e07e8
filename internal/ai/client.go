package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"voxpos/internal/config"
	"voxpos/internal/domain"
	"voxpos/internal/dto"
	apperrors "voxpos/internal/errors"
)

// EmptyTranscriptFallback is returned when the extraction service answers
// with an empty body for a voice order. This is the one malformed-response
// case that is not an error.
const EmptyTranscriptFallback = "Could not understand audio."

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds the REST adapter. No client-side timeout is set; the
// request lives and dies with its context.
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

var _ Extractor = (*Client)(nil)

type contentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) ExtractOrder(ctx context.Context, audioB64, mimeType string, catalog []domain.Product, cart []domain.OrderLineItem) (*dto.ExtractedOrder, error) {
	instruction := voiceOrderInstruction(catalog, cart)
	parts := []contentPart{
		{InlineData: &inlineData{MimeType: mimeType, Data: audioB64}},
		{Text: "Process this voice order based on the system instructions."},
	}

	text, err := c.generate(ctx, instruction, parts)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		c.logger.Warn("empty extraction response, using transcript fallback")
		return &dto.ExtractedOrder{
			Transcript:        EmptyTranscriptFallback,
			Items:             []dto.ExtractedItem{},
			UnrecognizedItems: []string{},
		}, nil
	}

	var result dto.ExtractedOrder
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, apperrors.NewInternalError("parsing voice order extraction", err)
	}
	if result.Items == nil {
		result.Items = []dto.ExtractedItem{}
	}
	if result.UnrecognizedItems == nil {
		result.UnrecognizedItems = []string{}
	}
	return &result, nil
}

func (c *Client) RecognizeInventoryImage(ctx context.Context, imageB64, mimeType string, catalog []domain.Product) (*dto.RecognizedInventory, error) {
	instruction := inventoryImageInstruction(catalog)
	parts := []contentPart{
		{InlineData: &inlineData{MimeType: mimeType, Data: imageB64}},
		{Text: "Count the stock items in this photo based on the system instructions."},
	}

	text, err := c.generate(ctx, instruction, parts)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewInternalError("empty image recognition response", nil)
	}

	var result dto.RecognizedInventory
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, apperrors.NewInternalError("parsing image recognition result", err)
	}
	return &result, nil
}

func (c *Client) ParseProductDescription(ctx context.Context, audioB64, mimeType string) (*dto.ParsedProduct, error) {
	parts := []contentPart{
		{InlineData: &inlineData{MimeType: mimeType, Data: audioB64}},
		{Text: "Parse this spoken product description based on the system instructions."},
	}

	text, err := c.generate(ctx, productDescriptionInstruction, parts)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewInternalError("empty product description response", nil)
	}

	var result dto.ParsedProduct
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, apperrors.NewInternalError("parsing product description result", err)
	}
	if strings.TrimSpace(result.ProductName) == "" {
		return nil, apperrors.NewInternalError("product description result missing product name", nil)
	}
	return &result, nil
}

func (c *Client) generate(ctx context.Context, instruction string, parts []contentPart) (string, error) {
	reqBody := generateRequest{
		Contents:          []content{{Parts: parts}},
		SystemInstruction: &content{Parts: []contentPart{{Text: instruction}}},
		GenerationConfig:  &generationConfig{ResponseMimeType: "application/json"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.NewInternalError("encoding extraction request", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.NewInternalError("building extraction request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewInternalError("extraction request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewInternalError("reading extraction response", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("extraction service returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", apperrors.NewInternalError(fmt.Sprintf("extraction service returned status %d", resp.StatusCode), nil)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", apperrors.NewInternalError("decoding extraction response", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

func voiceOrderInstruction(catalog []domain.Product, cart []domain.OrderLineItem) string {
	var inventory []string
	for _, p := range catalog {
		var variants []string
		for _, v := range p.Variants {
			variants = append(variants, fmt.Sprintf("%s at $%.2f", v.Name, v.Price))
		}
		inventory = append(inventory, fmt.Sprintf("%s (variants: %s)", p.Name, strings.Join(variants, ", ")))
	}

	var b strings.Builder
	b.WriteString("You are a point-of-sale assistant. ")
	b.WriteString("Transcribe the audio order and identify products, variants and quantities. ")
	b.WriteString("For each item return the base product name and the specific variant name. ")
	b.WriteString("If no variant is specified and the product has multiple options, leave variantName empty. ")
	b.WriteString("Items unrelated to the inventory go into unrecognizedItems. ")
	b.WriteString("The available inventory is: ")
	b.WriteString(strings.Join(inventory, "; "))
	b.WriteString(".")

	if len(cart) > 0 {
		var lines []string
		for _, li := range cart {
			lines = append(lines, fmt.Sprintf("%dx %s", li.Quantity, li.Name))
		}
		b.WriteString(" The current order is: ")
		b.WriteString(strings.Join(lines, ", "))
		b.WriteString(". The instruction may add, remove or change items; ")
		b.WriteString("the items array must contain the complete final state of the order after the changes.")
	}

	b.WriteString(` Respond with JSON: {"transcript": string, "items": [{"productName": string, "variantName": string, "quantity": int}], "unrecognizedItems": [string]}.`)
	return b.String()
}

func inventoryImageInstruction(catalog []domain.Product) string {
	var known []string
	for _, p := range catalog {
		for _, v := range p.Variants {
			known = append(known, fmt.Sprintf("%s (variantId %d)", domain.CompositeName(p.Name, v.Name), v.ID))
		}
	}

	var b strings.Builder
	b.WriteString("You are a stock intake assistant. Count the items visible in the photo. ")
	b.WriteString("Items matching the known catalog go into recognizedItems with their variantId; ")
	b.WriteString("everything else goes into unrecognizedItems with an estimated price when a tag is visible. ")
	b.WriteString("The known catalog is: ")
	b.WriteString(strings.Join(known, "; "))
	b.WriteString(`. Respond with JSON: {"recognizedItems": [{"itemName": string, "quantity": int, "variantId": int}], "unrecognizedItems": [{"itemName": string, "quantity": int, "price": number}]}.`)
	return b.String()
}

const productDescriptionInstruction = `You are a product intake assistant. ` +
	`The audio describes a new product with one or more variants, each with a name, selling price, unit cost and initial stock. ` +
	`Respond with JSON: {"productName": string, "variants": [{"name": string, "price": number, "cost": number, "stock": int}]}.`
