package repository

import (
	"context"
	"testing"
	"time"

	"retail/internal/domain/model"
	repo "retail/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderGormRepository_ForeignKeys(t *testing.T) {
	gdb, _ := newTestDB(t)
	f := seed(t, gdb)
	r := NewOrderGormRepository(gdb)
	ctx := context.Background()

	o := f.order
	o.ID = 0
	o.ClientID = 999
	_, err := r.Create(ctx, o)
	assert.ErrorIs(t, err, repo.ErrForeignKey)

	o.ClientID = f.client.ID
	o.StoreID = 999
	_, err = r.Create(ctx, o)
	assert.ErrorIs(t, err, repo.ErrForeignKey)
}

func TestOrderGormRepository_ListAndDetails(t *testing.T) {
	gdb, _ := newTestDB(t)
	f := seed(t, gdb)
	r := NewOrderGormRepository(gdb)
	ctx := context.Background()

	items, total, err := r.List(ctx, repo.OrderListFilter{ClientID: &f.client.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)

	other := f.employee.ID
	_, total, err = r.List(ctx, repo.OrderListFilter{ClientID: &other})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, total, err = r.List(ctx, repo.OrderListFilter{StoreID: &f.store.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	o, err := r.FindWithDetails(ctx, f.order.ID)
	require.NoError(t, err)
	require.Len(t, o.Details, 1)
	assert.Equal(t, int64(2), o.Details[0].Quantity)

	_, err = r.FindWithDetails(ctx, 999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderGormRepository_Update(t *testing.T) {
	gdb, clock := newTestDB(t)
	f := seed(t, gdb)
	r := NewOrderGormRepository(gdb)

	clock.Advance(24 * time.Hour)
	o := f.order
	o.City = "Capital City"
	o.CreatedAt = time.Time{}
	updated, err := r.Update(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, "Capital City", updated.City)
	assert.True(t, updated.CreatedAt.Equal(t0), updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.Equal(t0.Add(24*time.Hour)), updated.UpdatedAt)
}

func TestOrderDetailsGormRepository(t *testing.T) {
	gdb, _ := newTestDB(t)
	f := seed(t, gdb)
	r := NewOrderDetailsGormRepository(gdb)
	ctx := context.Background()

	created, err := r.CreateBulk(ctx, f.order.ID, []model.OrderDetails{
		{ProductCode: f.product.Code, Quantity: 1},
		{ProductCode: f.product.Code, Quantity: 0},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, d := range created {
		assert.Equal(t, f.order.ID, d.OrderID)
		assert.NotZero(t, d.ID)
		assert.True(t, d.CreatedAt.Equal(t0))
	}

	items, err := r.ListByOrderID(ctx, f.order.ID)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	d := created[0]
	d.Quantity = 5
	updated, err := r.Update(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Quantity)

	require.NoError(t, r.Delete(ctx, d.ID))
	assert.ErrorIs(t, r.Delete(ctx, d.ID), repo.ErrNotFound)

	_, err = r.Create(ctx, model.OrderDetails{OrderID: f.order.ID, ProductCode: "missing", Quantity: 1})
	assert.ErrorIs(t, err, repo.ErrForeignKey)
}

func TestTxManagerGorm_RollsBack(t *testing.T) {
	gdb, _ := newTestDB(t)
	f := seed(t, gdb)
	tm := NewTxManagerGorm(gdb)

	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		o := f.order
		o.ID = 0
		created, err := r.Orders().Create(context.Background(), o)
		if err != nil {
			return err
		}
		_, err = r.OrderDetails().CreateBulk(context.Background(), created.ID, []model.OrderDetails{
			{ProductCode: "missing", Quantity: 1},
		})
		return err
	})
	assert.ErrorIs(t, err, repo.ErrForeignKey)
	assert.Equal(t, int64(1), count(t, gdb, "orders"))
	assert.Equal(t, int64(1), count(t, gdb, "orders_details"))
}

func TestTxManagerGorm_Commits(t *testing.T) {
	gdb, _ := newTestDB(t)
	f := seed(t, gdb)
	tm := NewTxManagerGorm(gdb)

	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		o := f.order
		o.ID = 0
		created, err := r.Orders().Create(context.Background(), o)
		if err != nil {
			return err
		}
		_, err = r.OrderDetails().CreateBulk(context.Background(), created.ID, []model.OrderDetails{
			{ProductCode: f.product.Code, Quantity: 3},
		})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count(t, gdb, "orders"))
	assert.Equal(t, int64(2), count(t, gdb, "orders_details"))
}
