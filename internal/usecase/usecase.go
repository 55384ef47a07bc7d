package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"retail/internal/observability/metrics"
	repo "retail/internal/repository"
	"retail/internal/validator"
)

// 入力レコードの検証（validator.RecordValidatorが実装）
type RecordValidator interface {
	Now() time.Time
	Product(r validator.ProductRecord) (validator.FieldErrors, error)
	Store(r validator.StoreRecord) (validator.FieldErrors, error)
	Person(r validator.PersonRecord) (validator.FieldErrors, error)
	Order(r validator.OrderRecord) (validator.FieldErrors, error)
	OrderDetails(r validator.OrderDetailsRecord) (validator.FieldErrors, error)
}

// 各Usecase共通の部品
type deps struct {
	validator RecordValidator
	metrics   *metrics.Recorder
	logger    *slog.Logger
}

func newDeps(v RecordValidator, m *metrics.Recorder, l *slog.Logger) deps {
	if l == nil {
		l = slog.Default()
	}
	return deps{validator: v, metrics: m, logger: l}
}

// 検証結果をエラーに変換する
func (d deps) check(entity string, errs validator.FieldErrors, err error) error {
	if err != nil {
		return contractError(err)
	}
	if errs.Any() {
		d.metrics.ValidationFailed(entity, errs.Fields())
		return &ValidationFailedError{Entity: entity, Fields: errs}
	}
	return nil
}

// 永続化の失敗を記録してHTTPErrorにする
func (d deps) fail(ctx context.Context, entity string, op string, err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
	case errors.Is(err, repo.ErrIntegrityViolation):
		d.metrics.IntegrityViolation(entity)
		d.logger.WarnContext(ctx, "write rejected by constraint",
			slog.String("entity", entity), slog.String("op", op), slog.Any("error", err))
	default:
		d.logger.ErrorContext(ctx, "repository failure",
			slog.String("entity", entity), slog.String("op", op), slog.Any("error", err))
	}
	return repoError(err)
}

// 一覧の共通出力
type ListOutput[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func newListOutput[T any](items []T, total int64, p repo.Pagination) ListOutput[T] {
	if items == nil {
		items = []T{}
	}
	return ListOutput[T]{Items: items, Total: total, Page: p.Page, Limit: p.Limit}
}
