package repository

import (
	"context"

	"retail/internal/domain/model"
)

// 注文一覧の絞り込み
type OrderListFilter struct {
	Pagination
	ClientID *int64
	StoreID  *int64
}

type OrderRepository interface {
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//明細つきで取得
	FindWithDetails(ctx context.Context, orderID int64) (model.Order, error)

	Create(ctx context.Context, order model.Order) (model.Order, error)
	Update(ctx context.Context, order model.Order) (model.Order, error)
	//明細はスキーマ側でカスケード削除
	Delete(ctx context.Context, orderID int64) error
}
