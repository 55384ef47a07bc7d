package repository

import (
	"context"

	"retail/internal/domain/model"
	repo "retail/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PersonGormRepository struct {
	db *gorm.DB
}

// DI
func NewPersonGormRepository(db *gorm.DB) *PersonGormRepository {
	return &PersonGormRepository{db: db}
}

func (r *PersonGormRepository) List(ctx context.Context, p repo.Pagination) ([]model.Person, int64, error) {
	p = p.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Person{}).Count(&total).Error; err != nil {
		return []model.Person{}, 0, translate(err)
	}

	var persons []model.Person
	err := r.db.WithContext(ctx).
		Order("id asc").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&persons).Error
	if err != nil {
		return []model.Person{}, 0, translate(err)
	}
	return persons, total, nil
}

func (r *PersonGormRepository) FindByID(ctx context.Context, id int64) (model.Person, error) {
	var p model.Person
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return model.Person{}, translate(err)
	}
	return p, nil
}

// 勤務先の店舗がなければErrForeignKey
func (r *PersonGormRepository) Create(ctx context.Context, p model.Person) (model.Person, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&p).Error; err != nil {
		return model.Person{}, translate(err)
	}
	return p, nil
}

func (r *PersonGormRepository) Update(ctx context.Context, p model.Person) (model.Person, error) {
	res := r.db.WithContext(ctx).
		Model(&p).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(&p)
	if err := affected(res); err != nil {
		return model.Person{}, err
	}
	return r.FindByID(ctx, p.ID)
}

// 顧客としての注文はカスケード削除
func (r *PersonGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Person{}, id)
	return affected(res)
}
