package cart

import (
	"sync"

	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
)

// State is derived from the current lines, ambiguities and stock check on
// every read; it is never stored.
type State string

const (
	StateEmpty      State = "EMPTY"
	StateReady      State = "READY"
	StateAmbiguous  State = "HAS_AMBIGUITY"
	StateStockIssue State = "HAS_STOCK_ISSUE"
)

// DeriveState ranks issues: an unresolved ambiguity blocks finalize, a
// stock issue is only advisory.
func DeriveState(items []domain.OrderLineItem, ambiguities []domain.Ambiguity, issues []domain.StockIssue) State {
	switch {
	case len(items) == 0:
		return StateEmpty
	case len(ambiguities) > 0:
		return StateAmbiguous
	case len(issues) > 0:
		return StateStockIssue
	default:
		return StateReady
	}
}

// Store holds the order in progress: line items, free-text customer name
// and notes, the last transcript, and the unrecognized/ambiguous terms left
// over from voice parsing. All mutation goes through its methods; reads
// return copies.
type Store struct {
	mu           sync.RWMutex
	lines        []domain.OrderLineItem
	customerName string
	notes        string
	transcript   string
	unrecognized []string
	ambiguities  []domain.Ambiguity
}

func NewStore() *Store {
	return &Store{}
}

// AddItem merges into an existing line for the same variant id or appends a
// new line carrying a point-in-time stock snapshot.
func (s *Store) AddItem(product domain.Product, variant domain.ProductVariant, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addItemLocked(product, variant, quantity)
}

func (s *Store) addItemLocked(product domain.Product, variant domain.ProductVariant, quantity int) {
	for i := range s.lines {
		if s.lines[i].VariantID == variant.ID {
			s.lines[i].Quantity += quantity
			s.lines[i].Recompute()
			return
		}
	}

	line := domain.OrderLineItem{
		ProductID:   product.ID,
		VariantID:   variant.ID,
		ProductName: product.Name,
		VariantName: variant.Name,
		Name:        domain.CompositeName(product.Name, variant.Name),
		Quantity:    quantity,
		Price:       variant.Price,
		Cost:        variant.Cost,
		Stock:       variant.Stock,
	}
	line.Recompute()
	s.lines = append(s.lines, line)
}

// UpdateQuantity sets a line's quantity, removing the line when the new
// quantity is zero or below. No other bounds are enforced.
func (s *Store) UpdateQuantity(variantID, newQuantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newQuantity <= 0 {
		for i := range s.lines {
			if s.lines[i].VariantID == variantID {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
				return
			}
		}
		return
	}

	for i := range s.lines {
		if s.lines[i].VariantID == variantID {
			s.lines[i].Quantity = newQuantity
			s.lines[i].Recompute()
			return
		}
	}
}

// ResolveAmbiguity adds the chosen variant as a line with the quantity the
// ambiguity carries, then drops the entry.
func (s *Store) ResolveAmbiguity(term string, variantID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ambiguities {
		if s.ambiguities[i].Term != term {
			continue
		}
		amb := s.ambiguities[i]
		variant := amb.Product.FindVariantByID(variantID)
		if variant == nil {
			return apperrors.NewNotFoundError("variant not found for ambiguous product")
		}
		s.addItemLocked(amb.Product, *variant, amb.Quantity)
		s.ambiguities = append(s.ambiguities[:i], s.ambiguities[i+1:]...)
		return nil
	}
	return apperrors.NewNotFoundError("no ambiguity for term")
}

// DismissAmbiguity drops the entry without adding a line; the requested
// quantity is lost.
func (s *Store) DismissAmbiguity(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ambiguities {
		if s.ambiguities[i].Term == term {
			s.ambiguities = append(s.ambiguities[:i], s.ambiguities[i+1:]...)
			return
		}
	}
}

// Addition is one resolved (product, variant, quantity) triple produced by
// reconciliation.
type Addition struct {
	Product  domain.Product
	Variant  domain.ProductVariant
	Quantity int
}

// Reconcile replaces the whole order-in-progress with the outcome of a
// voice extraction: the previous lines are discarded and rebuilt from the
// resolved additions (duplicate variants merge, as with AddItem). Customer
// name and notes survive reconciliation.
func (s *Store) Reconcile(transcript string, unrecognized []string, additions []Addition, ambiguities []domain.Ambiguity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = transcript
	s.unrecognized = append([]string(nil), unrecognized...)
	s.lines = nil
	for _, a := range additions {
		s.addItemLocked(a.Product, a.Variant, a.Quantity)
	}
	s.ambiguities = append([]domain.Ambiguity(nil), ambiguities...)
}

func (s *Store) SetCustomerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerName = name
}

func (s *Store) SetNotes(notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
}

// Clear is the terminal transition back to empty: lines, unrecognized,
// ambiguities, transcript, customer name and notes all reset.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.unrecognized = nil
	s.ambiguities = nil
	s.transcript = ""
	s.customerName = ""
	s.notes = ""
}

// Snapshot is a consistent copy of the whole order in progress.
type Snapshot struct {
	Items        []domain.OrderLineItem
	CustomerName string
	Notes        string
	Transcript   string
	Unrecognized []string
	Ambiguities  []domain.Ambiguity
	GrandTotal   float64
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Items:        append([]domain.OrderLineItem(nil), s.lines...),
		CustomerName: s.customerName,
		Notes:        s.notes,
		Transcript:   s.transcript,
		Unrecognized: append([]string(nil), s.unrecognized...),
		Ambiguities:  append([]domain.Ambiguity(nil), s.ambiguities...),
	}
	for _, li := range snap.Items {
		snap.GrandTotal += li.Total
	}
	return snap
}

// Items returns just the current lines, for extraction context.
func (s *Store) Items() []domain.OrderLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.OrderLineItem(nil), s.lines...)
}
