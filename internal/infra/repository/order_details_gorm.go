package repository

import (
	"context"

	"retail/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderDetailsGormRepository struct {
	db *gorm.DB
}

func NewOrderDetailsGormRepository(db *gorm.DB) *OrderDetailsGormRepository {
	return &OrderDetailsGormRepository{db: db}
}

func (r *OrderDetailsGormRepository) FindByID(ctx context.Context, id int64) (model.OrderDetails, error) {
	var d model.OrderDetails
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return model.OrderDetails{}, translate(err)
	}
	return d, nil
}

func (r *OrderDetailsGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetails, error) {
	var items []model.OrderDetails
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.OrderDetails{}, translate(err)
	}
	return items, nil
}

func (r *OrderDetailsGormRepository) Create(ctx context.Context, d model.OrderDetails) (model.OrderDetails, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&d).Error; err != nil {
		return model.OrderDetails{}, translate(err)
	}
	return d, nil
}

func (r *OrderDetailsGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderDetails) ([]model.OrderDetails, error) {
	if len(items) == 0 {
		return []model.OrderDetails{}, nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *OrderDetailsGormRepository) Update(ctx context.Context, d model.OrderDetails) (model.OrderDetails, error) {
	res := r.db.WithContext(ctx).
		Model(&d).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(&d)
	if err := affected(res); err != nil {
		return model.OrderDetails{}, err
	}
	return r.FindByID(ctx, d.ID)
}

func (r *OrderDetailsGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.OrderDetails{}, id)
	return affected(res)
}
