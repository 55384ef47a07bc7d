package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"retail/internal/domain/model"
	"retail/internal/observability/metrics"
	repo "retail/internal/repository"
	"retail/internal/validator"
)

const entityStore = "store"

type StoreUsecase struct {
	deps
	storeRepo repo.StoreRepository
}

// DI
func NewStoreUsecase(
	storeRepo repo.StoreRepository,
	v RecordValidator,
	m *metrics.Recorder,
	logger *slog.Logger,
) *StoreUsecase {
	return &StoreUsecase{
		deps:      newDeps(v, m, logger),
		storeRepo: storeRepo,
	}
}

func (u *StoreUsecase) List(ctx context.Context, page, limit int) (ListOutput[model.Store], error) {
	p := repo.Pagination{Page: page, Limit: limit}.Normalize()
	items, total, err := u.storeRepo.List(ctx, p)
	if err != nil {
		return ListOutput[model.Store]{}, u.fail(ctx, entityStore, "list", err)
	}
	return newListOutput(items, total, p), nil
}

func (u *StoreUsecase) Get(ctx context.Context, id int64) (model.Store, error) {
	if id <= 0 {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "invalid store id")
	}
	s, err := u.storeRepo.FindByID(ctx, id)
	if err != nil {
		return model.Store{}, u.fail(ctx, entityStore, "get", err)
	}
	return s, nil
}

func (u *StoreUsecase) Create(ctx context.Context, rec validator.StoreRecord) (model.Store, error) {
	s, err := u.build(rec)
	if err != nil {
		return model.Store{}, err
	}

	created, err := u.storeRepo.Create(ctx, s)
	if err != nil {
		return model.Store{}, u.fail(ctx, entityStore, "create", err)
	}
	return created, nil
}

func (u *StoreUsecase) Update(ctx context.Context, id int64, rec validator.StoreRecord) (model.Store, error) {
	if id <= 0 {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "invalid store id")
	}
	s, err := u.build(rec)
	if err != nil {
		return model.Store{}, err
	}
	s.ID = id

	updated, err := u.storeRepo.Update(ctx, s)
	if err != nil {
		return model.Store{}, u.fail(ctx, entityStore, "update", err)
	}
	return updated, nil
}

// 従業員・注文もスキーマ側で削除される
func (u *StoreUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid store id")
	}
	if err := u.storeRepo.Delete(ctx, id); err != nil {
		return u.fail(ctx, entityStore, "delete", err)
	}
	return nil
}

// 取扱商品に追加
func (u *StoreUsecase) AddProduct(ctx context.Context, storeID int64, productCode string) error {
	productCode = strings.TrimSpace(productCode)
	if storeID <= 0 || productCode == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid store id or product code")
	}
	if err := u.storeRepo.AddProduct(ctx, storeID, productCode); err != nil {
		return u.fail(ctx, entityStore, "add_product", err)
	}
	return nil
}

func (u *StoreUsecase) RemoveProduct(ctx context.Context, storeID int64, productCode string) error {
	if storeID <= 0 || productCode == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid store id or product code")
	}
	if err := u.storeRepo.RemoveProduct(ctx, storeID, productCode); err != nil {
		return u.fail(ctx, entityStore, "remove_product", err)
	}
	return nil
}

func (u *StoreUsecase) ListProducts(ctx context.Context, storeID int64) ([]model.Product, error) {
	products, err := u.storeRepo.ListProducts(ctx, storeID)
	if err != nil {
		return nil, u.fail(ctx, entityStore, "list_products", err)
	}
	return products, nil
}

func (u *StoreUsecase) ListEmployees(ctx context.Context, storeID int64) ([]model.Person, error) {
	persons, err := u.storeRepo.ListEmployees(ctx, storeID)
	if err != nil {
		return nil, u.fail(ctx, entityStore, "list_employees", err)
	}
	return persons, nil
}

func (u *StoreUsecase) build(rec validator.StoreRecord) (model.Store, error) {
	errs, err := u.validator.Store(rec)
	if err := u.check(entityStore, errs, err); err != nil {
		return model.Store{}, err
	}
	return model.Store{
		Name:    rec.Name,
		Email:   rec.Email,
		Address: rec.Address,
		City:    rec.City,
		Country: rec.Country,
		Phone:   rec.Phone,
	}, nil
}
