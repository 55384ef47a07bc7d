package repository

import (
	"context"

	"retail/internal/domain/model"
)

type OrderDetailsRepository interface {
	FindByID(ctx context.Context, id int64) (model.OrderDetails, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetails, error)

	Create(ctx context.Context, d model.OrderDetails) (model.OrderDetails, error)
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderDetails) ([]model.OrderDetails, error)
	Update(ctx context.Context, d model.OrderDetails) (model.OrderDetails, error)
	Delete(ctx context.Context, id int64) error
}
