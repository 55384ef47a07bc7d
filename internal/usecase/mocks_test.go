package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"retail/internal/domain/model"
	repo "retail/internal/repository"
	"retail/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// 共通
// =====================

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newValidator() *validator.RecordValidator {
	return validator.NewRecordValidator(fixedClock{t: testNow})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByCode(ctx context.Context, code string) (model.Product, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	updated, _ := args.Get(0).(model.Product)
	return updated, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *ProductRepoMock) ListStores(ctx context.Context, code string) ([]model.Store, error) {
	args := m.Called(ctx, code)
	items, _ := args.Get(0).([]model.Store)
	return items, args.Error(1)
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

type StoreRepoMock struct{ mock.Mock }

func (m *StoreRepoMock) List(ctx context.Context, p repo.Pagination) ([]model.Store, int64, error) {
	args := m.Called(ctx, p)
	items, _ := args.Get(0).([]model.Store)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *StoreRepoMock) FindByID(ctx context.Context, id int64) (model.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Store)
	return s, args.Error(1)
}

func (m *StoreRepoMock) Create(ctx context.Context, s model.Store) (model.Store, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Store)
	return created, args.Error(1)
}

func (m *StoreRepoMock) Update(ctx context.Context, s model.Store) (model.Store, error) {
	args := m.Called(ctx, s)
	updated, _ := args.Get(0).(model.Store)
	return updated, args.Error(1)
}

func (m *StoreRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *StoreRepoMock) AddProduct(ctx context.Context, storeID int64, productCode string) error {
	return m.Called(ctx, storeID, productCode).Error(0)
}

func (m *StoreRepoMock) RemoveProduct(ctx context.Context, storeID int64, productCode string) error {
	return m.Called(ctx, storeID, productCode).Error(0)
}

func (m *StoreRepoMock) ListProducts(ctx context.Context, storeID int64) ([]model.Product, error) {
	args := m.Called(ctx, storeID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *StoreRepoMock) ListEmployees(ctx context.Context, storeID int64) ([]model.Person, error) {
	args := m.Called(ctx, storeID)
	items, _ := args.Get(0).([]model.Person)
	return items, args.Error(1)
}

var _ repo.StoreRepository = (*StoreRepoMock)(nil)

type PersonRepoMock struct{ mock.Mock }

func (m *PersonRepoMock) List(ctx context.Context, p repo.Pagination) ([]model.Person, int64, error) {
	args := m.Called(ctx, p)
	items, _ := args.Get(0).([]model.Person)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *PersonRepoMock) FindByID(ctx context.Context, id int64) (model.Person, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Person)
	return p, args.Error(1)
}

func (m *PersonRepoMock) Create(ctx context.Context, p model.Person) (model.Person, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Person)
	return created, args.Error(1)
}

func (m *PersonRepoMock) Update(ctx context.Context, p model.Person) (model.Person, error) {
	args := m.Called(ctx, p)
	updated, _ := args.Get(0).(model.Person)
	return updated, args.Error(1)
}

func (m *PersonRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.PersonRepository = (*PersonRepoMock)(nil)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindWithDetails(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	return m.Called(ctx, orderID).Error(0)
}

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

type DetailsRepoMock struct{ mock.Mock }

func (m *DetailsRepoMock) FindByID(ctx context.Context, id int64) (model.OrderDetails, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(model.OrderDetails)
	return d, args.Error(1)
}

func (m *DetailsRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetails, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderDetails)
	return items, args.Error(1)
}

func (m *DetailsRepoMock) Create(ctx context.Context, d model.OrderDetails) (model.OrderDetails, error) {
	args := m.Called(ctx, d)
	created, _ := args.Get(0).(model.OrderDetails)
	return created, args.Error(1)
}

func (m *DetailsRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderDetails) ([]model.OrderDetails, error) {
	args := m.Called(ctx, orderID, items)
	created, _ := args.Get(0).([]model.OrderDetails)
	return created, args.Error(1)
}

func (m *DetailsRepoMock) Update(ctx context.Context, d model.OrderDetails) (model.OrderDetails, error) {
	args := m.Called(ctx, d)
	updated, _ := args.Get(0).(model.OrderDetails)
	return updated, args.Error(1)
}

func (m *DetailsRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.OrderDetailsRepository = (*DetailsRepoMock)(nil)

// fnをそのまま実行するだけのTx
type TxManagerMock struct {
	mock.Mock
	repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.repos)
}

type txRepos struct {
	orders  repo.OrderRepository
	details repo.OrderDetailsRepository
}

func (r txRepos) Orders() repo.OrderRepository              { return r.orders }
func (r txRepos) OrderDetails() repo.OrderDetailsRepository { return r.details }
