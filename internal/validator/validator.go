package validator

import (
	"fmt"
	"time"
)

// 現在時刻の取得元（テストで固定できるように）
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// 日付の検証に使う「今日」をclockから取る
type RecordValidator struct {
	clock Clock
}

// DI
func NewRecordValidator(clock Clock) *RecordValidator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &RecordValidator{clock: clock}
}

func (v *RecordValidator) Now() time.Time {
	return v.clock.Now()
}

func (v *RecordValidator) Product(r ProductRecord) (FieldErrors, error) {
	return ValidateProduct(r)
}

func (v *RecordValidator) Store(r StoreRecord) (FieldErrors, error) {
	return ValidateStore(r), nil
}

func (v *RecordValidator) Person(r PersonRecord) (FieldErrors, error) {
	return ValidatePerson(r, v.clock.Now())
}

func (v *RecordValidator) Order(r OrderRecord) (FieldErrors, error) {
	return ValidateOrder(r, v.clock.Now())
}

func (v *RecordValidator) OrderDetails(r OrderDetailsRecord) (FieldErrors, error) {
	return ValidateOrderDetails(r)
}

// 種類を指定して生のmapを検証する
// 必須キーが欠けていればErrContractViolation
func (v *RecordValidator) Validate(kind EntityKind, raw map[string]string) (FieldErrors, error) {
	if err := requireKeys(kind, raw); err != nil {
		return nil, err
	}

	switch kind {
	case KindProduct:
		return v.Product(productRecordFromMap(raw))
	case KindStore:
		return v.Store(storeRecordFromMap(raw))
	case KindPerson:
		return v.Person(personRecordFromMap(raw))
	case KindOrder:
		return v.Order(orderRecordFromMap(raw))
	case KindOrderDetails:
		return v.OrderDetails(orderDetailsRecordFromMap(raw))
	default:
		return nil, fmt.Errorf("%w: unknown entity kind %q", ErrContractViolation, kind)
	}
}
