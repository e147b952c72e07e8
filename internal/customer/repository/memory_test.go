package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "voxpos/internal/errors"
)

func TestFindOrCreate_CaseInsensitiveDedup(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, "Jane")
	require.NoError(t, err)

	again, err := repo.FindOrCreate(ctx, "  jane ")
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Jane", again.Name, "stored casing comes from first creation")
	assert.Len(t, repo.List(ctx), 1)
}

func TestFindOrCreate_BlankNameRejected(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.FindOrCreate(context.Background(), "   ")
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestFindOrCreate_NewCustomerStartsZeroed(t *testing.T) {
	repo := NewMemoryRepository()

	c, err := repo.FindOrCreate(context.Background(), "Sam")
	require.NoError(t, err)

	assert.Equal(t, 1, c.ID)
	assert.Zero(t, c.TotalOrders)
	assert.Zero(t, c.TotalSpent)
	assert.False(t, c.FirstSeen.IsZero())
	assert.Equal(t, c.FirstSeen, c.LastSeen)
}

func TestUpdateStats(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	c, err := repo.FindOrCreate(ctx, "Sam")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStats(ctx, c.ID, 3.00))
	require.NoError(t, repo.UpdateStats(ctx, c.ID, 1.75))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalOrders)
	assert.Equal(t, 4.75, got.TotalSpent)
	assert.False(t, got.LastSeen.Before(got.FirstSeen))

	err = repo.UpdateStats(ctx, 42, 1.00)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	c, err := repo.FindOrCreate(ctx, "Sam")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.TotalSpent = 999

	again, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, again.TotalSpent)
}
