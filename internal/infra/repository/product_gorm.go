package repository

import (
	"context"
	"strings"

	"retail/internal/domain/model"
	repo "retail/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品一覧（コード/名前の部分一致、コード順）
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	page := q.Pagination.Normalize()
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", like, like)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, translate(err)
	}

	if err := tx.Order("code asc").Offset(page.Offset()).Limit(page.Limit).Find(&products).Error; err != nil {
		return []model.Product{}, 0, translate(err)
	}

	return products, total, nil
}

// コードで商品を取得
func (r *ProductGormRepository) FindByCode(ctx context.Context, code string) (model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&p).Error; err != nil {
		return model.Product{}, translate(err)
	}
	return p, nil
}

// 商品の作成（コード重複はErrDuplicateKey）
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, translate(err)
	}
	return p, nil
}

// 商品の更新。created_atは触らない
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	res := r.db.WithContext(ctx).
		Model(&p).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(&p)
	if err := affected(res); err != nil {
		return model.Product{}, err
	}
	return r.FindByCode(ctx, p.Code)
}

// 商品削除（明細・店舗との紐付けはカスケード）
func (r *ProductGormRepository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Product{})
	return affected(res)
}

// この商品を扱う店舗
func (r *ProductGormRepository) ListStores(ctx context.Context, code string) ([]model.Store, error) {
	if _, err := r.FindByCode(ctx, code); err != nil {
		return []model.Store{}, err
	}

	var stores []model.Store
	err := r.db.WithContext(ctx).
		Joins("JOIN stores_products ON stores_products.store_id = stores.id").
		Where("stores_products.product_code = ?", code).
		Order("stores.id asc").
		Find(&stores).Error
	if err != nil {
		return []model.Store{}, translate(err)
	}
	return stores, nil
}
