package repository

import (
	"errors"
	"testing"

	repo "retail/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), repo.ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), repo.ErrDuplicateKey)
	assert.ErrorIs(t, translate(gorm.ErrForeignKeyViolated), repo.ErrForeignKey)

	pgDup := &pgconn.PgError{Code: "23505", ConstraintName: "products_pkey"}
	err := translate(pgDup)
	assert.ErrorIs(t, err, repo.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "products_pkey")

	pgFK := &pgconn.PgError{Code: "23503", ConstraintName: "fk_orders_client"}
	assert.ErrorIs(t, translate(pgFK), repo.ErrForeignKey)

	assert.ErrorIs(t, translate(errors.New("FOREIGN KEY constraint failed")), repo.ErrForeignKey)
	assert.ErrorIs(t, translate(errors.New("UNIQUE constraint failed: products.code")), repo.ErrDuplicateKey)

	other := errors.New("connection refused")
	assert.Equal(t, other, translate(other))
}
