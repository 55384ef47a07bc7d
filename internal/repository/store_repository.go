package repository

import (
	"context"

	"retail/internal/domain/model"
)

type StoreRepository interface {
	List(ctx context.Context, p Pagination) ([]model.Store, int64, error)
	FindByID(ctx context.Context, id int64) (model.Store, error)

	Create(ctx context.Context, s model.Store) (model.Store, error)
	Update(ctx context.Context, s model.Store) (model.Store, error)
	//従業員・注文・取扱商品の紐付けはスキーマ側でカスケード削除
	Delete(ctx context.Context, id int64) error

	//取扱商品（stores_products）
	AddProduct(ctx context.Context, storeID int64, productCode string) error
	RemoveProduct(ctx context.Context, storeID int64, productCode string) error
	ListProducts(ctx context.Context, storeID int64) ([]model.Product, error)

	//従業員一覧
	ListEmployees(ctx context.Context, storeID int64) ([]model.Person, error)
}
