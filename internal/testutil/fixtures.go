package testutil

import (
	"context"
	"testing"

	"voxpos/internal/inventory"
	inventoryrepo "voxpos/internal/inventory/repository"
)

// SeededCatalog returns an inventory repository preloaded with the demo
// catalog (Classic Cola Small/Medium/Large, Potato Chips Regular,
// Chocolate Bar Standard).
func SeededCatalog(t *testing.T) *inventoryrepo.MemoryRepository {
	t.Helper()

	repo := inventoryrepo.NewMemoryRepository()
	if err := inventory.Seed(context.Background(), repo); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}
	return repo
}

// VariantID looks up a variant id by product and variant name, failing the
// test when either is missing.
func VariantID(t *testing.T, repo *inventoryrepo.MemoryRepository, productName, variantName string) int {
	t.Helper()

	for _, p := range repo.List(context.Background()) {
		if p.Name != productName {
			continue
		}
		for _, v := range p.Variants {
			if v.Name == variantName {
				return v.ID
			}
		}
	}
	t.Fatalf("variant %s/%s not in seeded catalog", productName, variantName)
	return 0
}
