package repository

import (
	"context"
	"testing"
	"time"

	"retail/internal/domain/model"
	"retail/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var t0 = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

// テストごとに独立したインメモリDB
func newTestDB(t *testing.T) (*gorm.DB, *testClock) {
	t.Helper()

	clock := &testClock{now: t0}
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	gdb, err := db.OpenSQLite(dsn, db.WithNowFunc(clock.Now))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb, clock
}

// 店舗・顧客・従業員・商品・注文・明細を1件ずつ
type fixture struct {
	product  model.Product
	store    model.Store
	client   model.Person
	employee model.Person
	order    model.Order
	detail   model.OrderDetails
}

func seed(t *testing.T, gdb *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()

	products := NewProductGormRepository(gdb)
	stores := NewStoreGormRepository(gdb)
	persons := NewPersonGormRepository(gdb)
	orders := NewOrderGormRepository(gdb)
	details := NewOrderDetailsGormRepository(gdb)

	var f fixture
	var err error

	f.product, err = products.Create(ctx, newProduct("P1"))
	require.NoError(t, err)

	f.store, err = stores.Create(ctx, newStore("Main Street"))
	require.NoError(t, err)
	require.NoError(t, stores.AddProduct(ctx, f.store.ID, f.product.Code))

	f.client, err = persons.Create(ctx, newPerson("Ada", nil))
	require.NoError(t, err)

	f.employee, err = persons.Create(ctx, newPerson("Grace", &f.store.ID))
	require.NoError(t, err)

	f.order, err = orders.Create(ctx, model.Order{
		ClientID:     f.client.ID,
		StoreID:      f.store.ID,
		PurchaseDate: t0,
		Address:      "1 Main St",
		City:         "Springfield",
		Country:      "US",
		Phone:        "555-0100",
	})
	require.NoError(t, err)

	f.detail, err = details.Create(ctx, model.OrderDetails{
		OrderID:     f.order.ID,
		ProductCode: f.product.Code,
		Quantity:    2,
	})
	require.NoError(t, err)

	return f
}

func newProduct(code string) model.Product {
	return model.Product{
		Code:  code,
		Name:  "Widget " + code,
		Price: decimal.RequireFromString("25"),
		Stock: decimal.RequireFromString("10"),
	}
}

func newStore(name string) model.Store {
	return model.Store{
		Name:    name,
		Email:   "shop@example.com",
		Address: "1 Main St",
		City:    "Springfield",
		Country: "US",
		Phone:   "555-0100",
	}
}

func newPerson(first string, worksAt *int64) model.Person {
	return model.Person{
		FirstName: first,
		LastName:  "Tester",
		Birthday:  time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		Email:     "person@example.com",
		Address:   "12 St James Sq",
		City:      "London",
		Country:   "UK",
		Phone:     "020-0000",
		WorksAtID: worksAt,
	}
}

func count(t *testing.T, gdb *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Table(table).Count(&n).Error)
	return n
}
