package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	repo "retail/internal/repository"
	"retail/internal/validator"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 入力値の検証エラー（フィールドごとのメッセージ）
// 画面側で再入力させる想定
type ValidationFailedError struct {
	Entity string
	Fields validator.FieldErrors
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(e.Fields.Fields(), ", "))
}

func AsValidationFailed(err error) (*ValidationFailedError, bool) {
	var ve *ValidationFailedError
	ok := errors.As(err, &ve)
	return ve, ok
}

// 検証できない入力（キー欠落・数値でない値）は400
func contractError(err error) error {
	return NewHTTPError(http.StatusBadRequest, err.Error())
}

// repositoryのエラーをHTTPErrorにする
func repoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrDuplicateKey):
		return NewHTTPError(http.StatusConflict, "already exists")
	case errors.Is(err, repo.ErrForeignKey):
		return NewHTTPError(http.StatusConflict, "referenced record not found")
	case errors.Is(err, repo.ErrIntegrityViolation):
		return NewHTTPError(http.StatusConflict, "integrity violation")
	default:
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
}
