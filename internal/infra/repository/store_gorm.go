package repository

import (
	"context"

	"retail/internal/domain/model"
	repo "retail/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const storesProductsTable = "stores_products"

type StoreGormRepository struct {
	db *gorm.DB
}

// DI
func NewStoreGormRepository(db *gorm.DB) *StoreGormRepository {
	return &StoreGormRepository{db: db}
}

func (r *StoreGormRepository) List(ctx context.Context, p repo.Pagination) ([]model.Store, int64, error) {
	p = p.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Store{}).Count(&total).Error; err != nil {
		return []model.Store{}, 0, translate(err)
	}

	var stores []model.Store
	err := r.db.WithContext(ctx).
		Order("id asc").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&stores).Error
	if err != nil {
		return []model.Store{}, 0, translate(err)
	}
	return stores, total, nil
}

func (r *StoreGormRepository) FindByID(ctx context.Context, id int64) (model.Store, error) {
	var s model.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return model.Store{}, translate(err)
	}
	return s, nil
}

func (r *StoreGormRepository) Create(ctx context.Context, s model.Store) (model.Store, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&s).Error; err != nil {
		return model.Store{}, translate(err)
	}
	return s, nil
}

func (r *StoreGormRepository) Update(ctx context.Context, s model.Store) (model.Store, error) {
	res := r.db.WithContext(ctx).
		Model(&s).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(&s)
	if err := affected(res); err != nil {
		return model.Store{}, err
	}
	return r.FindByID(ctx, s.ID)
}

func (r *StoreGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Store{}, id)
	return affected(res)
}

// 取扱商品に追加。既に紐付いていれば何もしない
// 店舗・商品がなければErrForeignKey
func (r *StoreGormRepository) AddProduct(ctx context.Context, storeID int64, productCode string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Table(storesProductsTable).
		Create(map[string]interface{}{
			"store_id":     storeID,
			"product_code": productCode,
		}).Error
	return translate(err)
}

func (r *StoreGormRepository) RemoveProduct(ctx context.Context, storeID int64, productCode string) error {
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM "+storesProductsTable+" WHERE store_id = ? AND product_code = ?", storeID, productCode)
	return affected(res)
}

func (r *StoreGormRepository) ListProducts(ctx context.Context, storeID int64) ([]model.Product, error) {
	if _, err := r.FindByID(ctx, storeID); err != nil {
		return []model.Product{}, err
	}

	var products []model.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN "+storesProductsTable+" ON "+storesProductsTable+".product_code = products.code").
		Where(storesProductsTable+".store_id = ?", storeID).
		Order("products.code asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, translate(err)
	}
	return products, nil
}

// 従業員一覧
func (r *StoreGormRepository) ListEmployees(ctx context.Context, storeID int64) ([]model.Person, error) {
	if _, err := r.FindByID(ctx, storeID); err != nil {
		return []model.Person{}, err
	}

	var persons []model.Person
	err := r.db.WithContext(ctx).
		Where("works_at_id = ?", storeID).
		Order("id asc").
		Find(&persons).Error
	if err != nil {
		return []model.Person{}, translate(err)
	}
	return persons, nil
}
