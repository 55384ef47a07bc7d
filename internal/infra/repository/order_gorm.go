package repository

import (
	"context"

	"retail/internal/domain/model"
	repo "retail/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	page := f.Pagination.Normalize()

	q := r.db.WithContext(ctx).Model(&model.Order{})

	//顧客で絞り込み
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}

	//店舗で絞り込み
	if f.StoreID != nil {
		q = q.Where("store_id = ?", *f.StoreID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Order{}, 0, translate(err)
	}

	var items []model.Order
	if err := q.Order("id desc").Limit(page.Limit).Offset(page.Offset()).Find(&items).Error; err != nil {
		return []model.Order{}, 0, translate(err)
	}

	return items, total, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error; err != nil {
		return model.Order{}, translate(err)
	}
	return o, nil
}

func (r *OrderGormRepository) FindWithDetails(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Where("id = ?", orderID).
		First(&o).Error
	if err != nil {
		return model.Order{}, translate(err)
	}
	return o, nil
}

// 顧客・店舗がなければErrForeignKey。明細は別に作る
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&order).Error; err != nil {
		return model.Order{}, translate(err)
	}
	return order, nil
}

func (r *OrderGormRepository) Update(ctx context.Context, order model.Order) (model.Order, error) {
	res := r.db.WithContext(ctx).
		Model(&order).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(&order)
	if err := affected(res); err != nil {
		return model.Order{}, err
	}
	return r.FindByID(ctx, order.ID)
}

func (r *OrderGormRepository) Delete(ctx context.Context, orderID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, orderID)
	return affected(res)
}
