package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// 受け付ける日付フォーマット
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// decimal(10,2)に収まる範囲
const (
	decimalScale     = 2
	decimalIntDigits = 8
)

var decimalLimit = decimal.New(1, decimalIntDigits)

// 小数として解釈する（整数もそのまま通る）
// 列に収まらない値（小数3桁以上・整数部9桁以上）は丸めずに拒否する
func ParseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is not a number: %v", ErrContractViolation, field, err)
	}
	if !d.Equal(d.Truncate(decimalScale)) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s has more than %d decimal places", ErrContractViolation, field, decimalScale)
	}
	if d.Abs().GreaterThanOrEqual(decimalLimit) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is out of range", ErrContractViolation, field)
	}
	return d, nil
}

func ParseInteger(field, s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer: %v", ErrContractViolation, field, err)
	}
	return i, nil
}

// 空文字ならnil（任意の外部キー用）
func ParseOptionalID(field, s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, err := ParseInteger(field, s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// 時刻つきの値もlocの暦日に丸める
func ParseDate(field, s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return truncateToDate(t, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s is not a date: %q", ErrContractViolation, field, s)
}

// 時刻をそのまま保持して解釈する（購入日時の保存用）
func ParseDateTime(field, s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s is not a date: %q", ErrContractViolation, field, s)
}

func truncateToDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
