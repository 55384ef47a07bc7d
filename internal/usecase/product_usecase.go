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

const entityProduct = "product"

type ProductUsecase struct {
	deps
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	v RecordValidator,
	m *metrics.Recorder,
	logger *slog.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		deps:        newDeps(v, m, logger),
		productRepo: productRepo,
	}
}

// GET /productsの入力
type ListProductsInput struct {
	Page  int
	Limit int
	Q     string
}

func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) (ListOutput[model.Product], error) {
	if len(in.Q) > 100 {
		return ListOutput[model.Product]{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	page := repo.Pagination{Page: in.Page, Limit: in.Limit}.Normalize()
	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Pagination: page,
		Q:          strings.TrimSpace(in.Q),
	})
	if err != nil {
		return ListOutput[model.Product]{}, u.fail(ctx, entityProduct, "list", err)
	}
	return newListOutput(items, total, page), nil
}

func (u *ProductUsecase) Get(ctx context.Context, code string) (model.Product, error) {
	p, err := u.productRepo.FindByCode(ctx, code)
	if err != nil {
		return model.Product{}, u.fail(ctx, entityProduct, "get", err)
	}
	return p, nil
}

// 商品を登録する
func (u *ProductUsecase) Create(ctx context.Context, rec validator.ProductRecord) (model.Product, error) {
	p, err := u.build(rec)
	if err != nil {
		return model.Product{}, err
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, u.fail(ctx, entityProduct, "create", err)
	}
	return created, nil
}

// 商品を更新する。コードは変更できない
func (u *ProductUsecase) Update(ctx context.Context, code string, rec validator.ProductRecord) (model.Product, error) {
	if rec.Code != "" && rec.Code != code {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "code cannot be changed")
	}
	if rec.Code == "" {
		rec.Code = code
	}

	p, err := u.build(rec)
	if err != nil {
		return model.Product{}, err
	}

	updated, err := u.productRepo.Update(ctx, p)
	if err != nil {
		return model.Product{}, u.fail(ctx, entityProduct, "update", err)
	}
	return updated, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, code string) error {
	if err := u.productRepo.Delete(ctx, code); err != nil {
		return u.fail(ctx, entityProduct, "delete", err)
	}
	return nil
}

// この商品を扱う店舗
func (u *ProductUsecase) ListStores(ctx context.Context, code string) ([]model.Store, error) {
	stores, err := u.productRepo.ListStores(ctx, code)
	if err != nil {
		return nil, u.fail(ctx, entityProduct, "list_stores", err)
	}
	return stores, nil
}

// 検証してから商品を組み立てる
func (u *ProductUsecase) build(rec validator.ProductRecord) (model.Product, error) {
	errs, err := u.validator.Product(rec)
	if err := u.check(entityProduct, errs, err); err != nil {
		return model.Product{}, err
	}

	price, err := validator.ParseDecimal("price", rec.Price)
	if err != nil {
		return model.Product{}, contractError(err)
	}
	stock, err := validator.ParseDecimal("stock", rec.Stock)
	if err != nil {
		return model.Product{}, contractError(err)
	}

	return model.Product{
		Code:        rec.Code,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       price,
		Stock:       stock,
	}, nil
}
