package repository

import (
	"context"

	"retail/internal/domain/model"
)

type PersonRepository interface {
	List(ctx context.Context, p Pagination) ([]model.Person, int64, error)
	FindByID(ctx context.Context, id int64) (model.Person, error)

	Create(ctx context.Context, p model.Person) (model.Person, error)
	Update(ctx context.Context, p model.Person) (model.Person, error)
	Delete(ctx context.Context, id int64) error
}
