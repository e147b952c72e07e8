package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxpos/internal/domain"
)

func colaProduct() domain.Product {
	return domain.Product{
		ID:   1,
		Name: "Classic Cola",
		Variants: []domain.ProductVariant{
			{ID: 10, Name: "Small", Price: 1.50, Cost: 0.50, Stock: 100},
			{ID: 11, Name: "Medium", Price: 2.00, Cost: 0.70, Stock: 80},
		},
	}
}

func TestStore_AddItem_NewLine(t *testing.T) {
	store := NewStore()
	product := colaProduct()

	store.AddItem(product, product.Variants[0], 2)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	line := snap.Items[0]
	assert.Equal(t, "Classic Cola (Small)", line.Name)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 3.00, line.Total)
	assert.Equal(t, 1.00, line.TotalCost)
	assert.Equal(t, 100, line.Stock)
	assert.Equal(t, 3.00, snap.GrandTotal)
}

func TestStore_AddItem_MergesByVariant(t *testing.T) {
	store := NewStore()
	product := colaProduct()

	store.AddItem(product, product.Variants[0], 2)
	store.AddItem(product, product.Variants[0], 3)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 5, snap.Items[0].Quantity)
	assert.Equal(t, 5*1.50, snap.Items[0].Total)
	assert.Equal(t, 5*0.50, snap.Items[0].TotalCost)
}

func TestStore_UpdateQuantity_Recomputes(t *testing.T) {
	store := NewStore()
	product := colaProduct()
	store.AddItem(product, product.Variants[0], 2)

	store.UpdateQuantity(10, 7)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 7, snap.Items[0].Quantity)
	assert.Equal(t, 7*1.50, snap.Items[0].Total)
}

func TestStore_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	store := NewStore()
	product := colaProduct()
	store.AddItem(product, product.Variants[0], 2)
	store.AddItem(product, product.Variants[1], 1)

	store.UpdateQuantity(10, 0)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 11, snap.Items[0].VariantID)
}

func TestStore_UpdateQuantity_UnknownVariantNoChange(t *testing.T) {
	store := NewStore()
	product := colaProduct()
	store.AddItem(product, product.Variants[0], 2)

	store.UpdateQuantity(999, 0)

	assert.Len(t, store.Snapshot().Items, 1)
}

func TestStore_ResolveAmbiguity_AddsLineAndDropsEntry(t *testing.T) {
	store := NewStore()
	product := colaProduct()
	store.Reconcile("two colas", nil, nil, []domain.Ambiguity{
		{Term: "Classic Cola", Product: product, Quantity: 2},
	})

	err := store.ResolveAmbiguity("Classic Cola", 11)
	require.NoError(t, err)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 11, snap.Items[0].VariantID)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Empty(t, snap.Ambiguities)
}

func TestStore_ResolveAmbiguity_UnknownTerm(t *testing.T) {
	store := NewStore()

	err := store.ResolveAmbiguity("Nothing", 11)
	assert.Error(t, err)
}

func TestStore_DismissAmbiguity_NetZeroEffect(t *testing.T) {
	store := NewStore()
	product := colaProduct()
	store.Reconcile("", nil, nil, []domain.Ambiguity{
		{Term: "Classic Cola", Product: product, Quantity: 2},
	})

	store.DismissAmbiguity("Classic Cola")

	snap := store.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Ambiguities)
}

func TestStore_Reconcile_ReplacesLinesAndMergesDuplicates(t *testing.T) {
	store := NewStore()
	product := colaProduct()
	store.AddItem(product, product.Variants[1], 4)
	store.SetCustomerName("Sam")
	store.SetNotes("no ice")

	store.Reconcile("one small cola twice", []string{"mystery item"}, []Addition{
		{Product: product, Variant: product.Variants[0], Quantity: 1},
		{Product: product, Variant: product.Variants[0], Quantity: 1},
	}, nil)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 10, snap.Items[0].VariantID)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, []string{"mystery item"}, snap.Unrecognized)
	assert.Equal(t, "one small cola twice", snap.Transcript)

	// customer name and notes survive reconciliation
	assert.Equal(t, "Sam", snap.CustomerName)
	assert.Equal(t, "no ice", snap.Notes)
}

func TestStore_Clear_ResetsEverything(t *testing.T) {
	store := NewStore()
	product := colaProduct()
	store.AddItem(product, product.Variants[0], 2)
	store.SetCustomerName("Sam")
	store.SetNotes("later")
	store.Reconcile("transcript", []string{"x"}, nil, []domain.Ambiguity{
		{Term: "Classic Cola", Product: product, Quantity: 1},
	})

	store.Clear()

	snap := store.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Unrecognized)
	assert.Empty(t, snap.Ambiguities)
	assert.Empty(t, snap.Transcript)
	assert.Empty(t, snap.CustomerName)
	assert.Empty(t, snap.Notes)
	assert.Zero(t, snap.GrandTotal)
}

func TestDeriveState(t *testing.T) {
	product := colaProduct()
	items := []domain.OrderLineItem{{VariantID: 10, Quantity: 1}}
	ambiguities := []domain.Ambiguity{{Term: "Classic Cola", Product: product, Quantity: 1}}
	issues := []domain.StockIssue{{Name: "Classic Cola (Small)", Requested: 5, Available: 2}}

	assert.Equal(t, StateEmpty, DeriveState(nil, nil, nil))
	assert.Equal(t, StateReady, DeriveState(items, nil, nil))
	assert.Equal(t, StateAmbiguous, DeriveState(items, ambiguities, nil))
	assert.Equal(t, StateStockIssue, DeriveState(items, nil, issues))
	// ambiguity outranks the advisory stock issue
	assert.Equal(t, StateAmbiguous, DeriveState(items, ambiguities, issues))
}
