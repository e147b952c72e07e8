package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxpos/internal/domain"
	apperrors "voxpos/internal/errors"
)

func TestAppendPrependsAndAssignsIncreasingIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := repo.Append(ctx, domain.Order{GrandTotal: 1.00})
	second := repo.Append(ctx, domain.Order{GrandTotal: 2.00})
	third := repo.Append(ctx, domain.Order{GrandTotal: 3.00})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
	assert.False(t, third.Timestamp.IsZero())

	orders := repo.List(ctx)
	require.Len(t, orders, 3)
	assert.Equal(t, 3, orders[0].ID, "most recent order must be first")
	assert.Equal(t, 2, orders[1].ID)
	assert.Equal(t, 1, orders[2].ID)
}

func TestGetByID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	stored := repo.Append(ctx, domain.Order{
		GrandTotal: 4.50,
		Items:      []domain.OrderLineItem{{Name: "Classic Cola (Small)", Quantity: 3}},
	})

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.50, got.GrandTotal)
	require.Len(t, got.Items, 1)

	// mutating the returned copy must not leak into the stored order
	got.Items[0].Quantity = 99
	again, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Items[0].Quantity)

	_, err = repo.GetByID(ctx, 42)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestFindByCustomerID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	repo.Append(ctx, domain.Order{CustomerID: 1, CustomerName: "Sam"})
	repo.Append(ctx, domain.Order{CustomerID: 2, CustomerName: "Jane"})
	repo.Append(ctx, domain.Order{CustomerID: 1, CustomerName: "Sam"})

	orders := repo.FindByCustomerID(ctx, 1)
	require.Len(t, orders, 2)
	assert.Equal(t, 3, orders[0].ID, "customer orders keep most-recent-first ordering")
	assert.Equal(t, 1, orders[1].ID)

	assert.Empty(t, repo.FindByCustomerID(ctx, 9))
}
