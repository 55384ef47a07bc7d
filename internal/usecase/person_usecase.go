package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"retail/internal/domain/model"
	"retail/internal/observability/metrics"
	repo "retail/internal/repository"
	"retail/internal/validator"
)

const entityPerson = "person"

type PersonUsecase struct {
	deps
	personRepo repo.PersonRepository
}

// DI
func NewPersonUsecase(
	personRepo repo.PersonRepository,
	v RecordValidator,
	m *metrics.Recorder,
	logger *slog.Logger,
) *PersonUsecase {
	return &PersonUsecase{
		deps:       newDeps(v, m, logger),
		personRepo: personRepo,
	}
}

func (u *PersonUsecase) List(ctx context.Context, page, limit int) (ListOutput[model.Person], error) {
	p := repo.Pagination{Page: page, Limit: limit}.Normalize()
	items, total, err := u.personRepo.List(ctx, p)
	if err != nil {
		return ListOutput[model.Person]{}, u.fail(ctx, entityPerson, "list", err)
	}
	return newListOutput(items, total, p), nil
}

func (u *PersonUsecase) Get(ctx context.Context, id int64) (model.Person, error) {
	if id <= 0 {
		return model.Person{}, NewHTTPError(http.StatusBadRequest, "invalid person id")
	}
	p, err := u.personRepo.FindByID(ctx, id)
	if err != nil {
		return model.Person{}, u.fail(ctx, entityPerson, "get", err)
	}
	return p, nil
}

func (u *PersonUsecase) Create(ctx context.Context, rec validator.PersonRecord) (model.Person, error) {
	p, err := u.build(rec)
	if err != nil {
		return model.Person{}, err
	}

	created, err := u.personRepo.Create(ctx, p)
	if err != nil {
		return model.Person{}, u.fail(ctx, entityPerson, "create", err)
	}
	return created, nil
}

func (u *PersonUsecase) Update(ctx context.Context, id int64, rec validator.PersonRecord) (model.Person, error) {
	if id <= 0 {
		return model.Person{}, NewHTTPError(http.StatusBadRequest, "invalid person id")
	}
	p, err := u.build(rec)
	if err != nil {
		return model.Person{}, err
	}
	p.ID = id

	updated, err := u.personRepo.Update(ctx, p)
	if err != nil {
		return model.Person{}, u.fail(ctx, entityPerson, "update", err)
	}
	return updated, nil
}

// 顧客としての注文もスキーマ側で削除される
func (u *PersonUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid person id")
	}
	if err := u.personRepo.Delete(ctx, id); err != nil {
		return u.fail(ctx, entityPerson, "delete", err)
	}
	return nil
}

func (u *PersonUsecase) build(rec validator.PersonRecord) (model.Person, error) {
	errs, err := u.validator.Person(rec)
	if err := u.check(entityPerson, errs, err); err != nil {
		return model.Person{}, err
	}

	loc := u.validator.Now().Location()
	birthday, err := validator.ParseDate("birthday", rec.Birthday, loc)
	if err != nil {
		return model.Person{}, contractError(err)
	}
	worksAt, err := validator.ParseOptionalID("works_at", rec.WorksAt)
	if err != nil {
		return model.Person{}, contractError(err)
	}

	return model.Person{
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Birthday:  birthday,
		Email:     rec.Email,
		Address:   rec.Address,
		City:      rec.City,
		Country:   rec.Country,
		Phone:     rec.Phone,
		WorksAtID: worksAt,
	}, nil
}
