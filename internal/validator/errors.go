package validator

import "errors"

// 呼び出し側の契約違反（必須キーの欠落、数値/日付として解釈できない値）
// ユーザー向けのメッセージではなく不具合として扱う
var ErrContractViolation = errors.New("record contract violation")

// 画面に出す固定メッセージ。文言は変えないこと
const (
	MsgCodeEmpty         = "Code field cannot be empty"
	MsgNameEmpty         = "Name field cannot be empty"
	MsgPriceEmpty        = "Price field cannot be empty"
	MsgPriceNegative     = "Price cannot be negative"
	MsgStockEmpty        = "Stock field cannot be empty"
	MsgStockNegative     = "Stock cannot be negative"
	MsgEmailEmpty        = "Email field cannot be empty"
	MsgEmailInvalid      = "Not valid email"
	MsgAddressEmpty      = "Address field cannot be empty"
	MsgCityEmpty         = "City field cannot be empty"
	MsgCountryEmpty      = "Country field cannot be empty"
	MsgPhoneEmpty        = "Phone field cannot be empty"
	MsgFirstNameEmpty    = "First name field cannot be empty"
	MsgLastNameEmpty     = "Last name field cannot be empty"
	MsgBirthdayEmpty     = "Birthday field cannot be empty"
	MsgBirthdayNotPast   = "Birthday must be in the past"
	MsgPurchaseDateEmpty = "Purchase date field cannot be empty"
	MsgPurchaseDateAhead = "Purchase date cannot be in the future"
	MsgQuantityEmpty     = "Quantity field cannot be empty"
	MsgQuantityNegative  = "Quantity cannot be negative"
)
