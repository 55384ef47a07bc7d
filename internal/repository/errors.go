package repository

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// 永続化層が拒否した書き込み（一意制約・外部キー）
var ErrIntegrityViolation = errors.New("integrity violation")

var (
	// 商品コードの重複
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrIntegrityViolation)

	// 参照先の行が存在しない
	ErrForeignKey = fmt.Errorf("%w: referenced row not found", ErrIntegrityViolation)
)
