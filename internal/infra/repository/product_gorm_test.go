package repository

import (
	"context"
	"testing"
	"time"

	repo "retail/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGormRepository_CreateAndFind(t *testing.T) {
	gdb, _ := newTestDB(t)
	r := NewProductGormRepository(gdb)
	ctx := context.Background()

	p := newProduct("P1")
	p.Price = decimal.RequireFromString("19.99")
	_, err := r.Create(ctx, p)
	require.NoError(t, err)

	got, err := r.FindByCode(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Widget P1", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("19.99")), got.Price.String())
	assert.True(t, got.Stock.Equal(decimal.NewFromInt(10)), got.Stock.String())

	_, err = r.FindByCode(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductGormRepository_DuplicateCode(t *testing.T) {
	gdb, _ := newTestDB(t)
	r := NewProductGormRepository(gdb)
	ctx := context.Background()

	_, err := r.Create(ctx, newProduct("P1"))
	require.NoError(t, err)

	_, err = r.Create(ctx, newProduct("P1"))
	assert.ErrorIs(t, err, repo.ErrDuplicateKey)
	assert.ErrorIs(t, err, repo.ErrIntegrityViolation)
}

func TestProductGormRepository_Timestamps(t *testing.T) {
	gdb, clock := newTestDB(t)
	r := NewProductGormRepository(gdb)
	ctx := context.Background()

	//呼び出し側のupdated_atは無視される
	p := newProduct("P1")
	p.UpdatedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := r.Create(ctx, p)
	require.NoError(t, err)
	assert.True(t, created.CreatedAt.Equal(t0), created.CreatedAt)
	assert.True(t, created.UpdatedAt.Equal(t0), created.UpdatedAt)

	clock.Advance(time.Hour)

	//created_atを空で渡しても初回の値が残る
	upd := newProduct("P1")
	upd.Name = "Renamed"
	updated, err := r.Update(ctx, upd)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.CreatedAt.Equal(t0), updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.Equal(t0.Add(time.Hour)), updated.UpdatedAt)
}

func TestProductGormRepository_KeepsSuppliedCreatedAt(t *testing.T) {
	gdb, _ := newTestDB(t)
	r := NewProductGormRepository(gdb)

	p := newProduct("P1")
	p.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := r.Create(context.Background(), p)
	require.NoError(t, err)

	got, err := r.FindByCode(context.Background(), "P1")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt), got.CreatedAt)
	assert.True(t, got.UpdatedAt.Equal(t0), got.UpdatedAt)
}

func TestProductGormRepository_UpdateDeleteNotFound(t *testing.T) {
	gdb, _ := newTestDB(t)
	r := NewProductGormRepository(gdb)
	ctx := context.Background()

	_, err := r.Update(ctx, newProduct("nope"))
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.ErrorIs(t, r.Delete(ctx, "nope"), repo.ErrNotFound)
}

func TestProductGormRepository_List(t *testing.T) {
	gdb, _ := newTestDB(t)
	r := NewProductGormRepository(gdb)
	ctx := context.Background()

	for _, code := range []string{"B2", "A1", "C3"} {
		_, err := r.Create(ctx, newProduct(code))
		require.NoError(t, err)
	}

	items, total, err := r.List(ctx, repo.ProductListQuery{Pagination: repo.Pagination{Page: 1, Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, "A1", items[0].Code)
	assert.Equal(t, "B2", items[1].Code)

	items, total, err = r.List(ctx, repo.ProductListQuery{Q: "c3"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "C3", items[0].Code)
}

func TestProductGormRepository_ListStores(t *testing.T) {
	gdb, _ := newTestDB(t)
	f := seed(t, gdb)
	r := NewProductGormRepository(gdb)

	stores, err := r.ListStores(context.Background(), f.product.Code)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, f.store.ID, stores[0].ID)

	_, err = r.ListStores(context.Background(), "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
