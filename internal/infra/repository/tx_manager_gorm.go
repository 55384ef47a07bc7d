package repository

import (
	"context"

	repo "retail/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailsRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository              { return r.orders }
func (r *txReposGorm) OrderDetails() repo.OrderDetailsRepository { return r.orderDetails }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:       NewOrderGormRepository(tx),
			orderDetails: NewOrderDetailsGormRepository(tx),
		}
		return fn(r)
	})
}
