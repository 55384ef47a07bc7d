package repository

import (
	"context"

	"retail/internal/domain/model"
)

// 一覧検索
type ProductListQuery struct {
	Pagination
	Q string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByCode(ctx context.Context, code string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, code string) error

	//この商品を扱う店舗
	ListStores(ctx context.Context, code string) ([]model.Store, error)
}
