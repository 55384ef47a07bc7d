package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Layouts(t *testing.T) {
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2024-06-15",
		"2024-06-15T23:59",
		"2024-06-15T08:00:00",
		"2024-06-15T08:00:00Z",
		" 2024-06-15 ",
	} {
		got, err := ParseDate("d", in, time.UTC)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(want), "%s -> %s", in, got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("birthday", "15/06/2024", time.UTC)
	assert.True(t, errors.Is(err, ErrContractViolation))
	assert.ErrorContains(t, err, "birthday")
}

func TestParseDateTime_KeepsTime(t *testing.T) {
	got, err := ParseDateTime("purchase_date", "2024-06-15T09:45", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 6, 15, 9, 45, 0, 0, time.UTC)))
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("price", "12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = ParseDecimal("price", "1,5")
	assert.True(t, errors.Is(err, ErrContractViolation))
}

func TestParseOptionalID(t *testing.T) {
	id, err := ParseOptionalID("works_at", "")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = ParseOptionalID("works_at", "7")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(7), *id)

	_, err = ParseOptionalID("works_at", "seven")
	assert.True(t, errors.Is(err, ErrContractViolation))
}

func TestParseDecimal_ColumnLimits(t *testing.T) {
	for _, in := range []string{"99999999.99", "-99999999.99", "0.1", "12.50", "7"} {
		_, err := ParseDecimal("price", in)
		assert.NoError(t, err, in)
	}

	for _, in := range []string{"12.345", "0.001", "100000000", "-100000000.5"} {
		_, err := ParseDecimal("price", in)
		assert.True(t, errors.Is(err, ErrContractViolation), in)
	}
}

func TestValidateProduct_PriceBeyondColumn(t *testing.T) {
	r := validProduct()
	r.Price = "12.345"

	_, err := ValidateProduct(r)
	assert.True(t, errors.Is(err, ErrContractViolation))
	assert.ErrorContains(t, err, "decimal places")
}
