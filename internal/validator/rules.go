package validator

import "time"

// 空文字チェック（前後の空白は値として扱う）
func requireText(errs FieldErrors, field, value, msg string) {
	if len(value) == 0 {
		errs[field] = msg
	}
}

// 店舗・人物で共通のメール欄
func checkEmail(errs FieldErrors, value string) {
	if len(value) == 0 {
		errs["email"] = MsgEmailEmpty
		return
	}
	if !IsEmailLike(value) {
		errs["email"] = MsgEmailInvalid
	}
}

// 住所・電話など連絡先の4項目
func checkContact(errs FieldErrors, address, city, country, phone string) {
	requireText(errs, "address", address, MsgAddressEmpty)
	requireText(errs, "city", city, MsgCityEmpty)
	requireText(errs, "country", country, MsgCountryEmpty)
	requireText(errs, "phone", phone, MsgPhoneEmpty)
}

// 商品の入力を検証
func ValidateProduct(r ProductRecord) (FieldErrors, error) {
	errs := FieldErrors{}
	requireText(errs, "code", r.Code, MsgCodeEmpty)
	requireText(errs, "name", r.Name, MsgNameEmpty)

	if len(r.Price) == 0 {
		errs["price"] = MsgPriceEmpty
	} else {
		price, err := ParseDecimal("price", r.Price)
		if err != nil {
			return nil, err
		}
		if !price.IsPositive() {
			errs["price"] = MsgPriceNegative
		}
	}

	if len(r.Stock) == 0 {
		errs["stock"] = MsgStockEmpty
	} else {
		stock, err := ParseDecimal("stock", r.Stock)
		if err != nil {
			return nil, err
		}
		if stock.IsNegative() {
			errs["stock"] = MsgStockNegative
		}
	}

	return errs, nil
}

// 店舗の入力を検証
func ValidateStore(r StoreRecord) FieldErrors {
	errs := FieldErrors{}
	requireText(errs, "name", r.Name, MsgNameEmpty)
	checkEmail(errs, r.Email)
	checkContact(errs, r.Address, r.City, r.Country, r.Phone)
	return errs
}

// 人物の入力を検証。誕生日はnowの暦日より前であること
func ValidatePerson(r PersonRecord, now time.Time) (FieldErrors, error) {
	errs := FieldErrors{}
	requireText(errs, "first_name", r.FirstName, MsgFirstNameEmpty)
	requireText(errs, "last_name", r.LastName, MsgLastNameEmpty)

	if len(r.Birthday) == 0 {
		errs["birthday"] = MsgBirthdayEmpty
	} else {
		birthday, err := ParseDate("birthday", r.Birthday, now.Location())
		if err != nil {
			return nil, err
		}
		if !birthday.Before(truncateToDate(now, now.Location())) {
			errs["birthday"] = MsgBirthdayNotPast
		}
	}

	checkEmail(errs, r.Email)
	checkContact(errs, r.Address, r.City, r.Country, r.Phone)
	return errs, nil
}

// 注文の入力を検証。購入日は今日まで
func ValidateOrder(r OrderRecord, now time.Time) (FieldErrors, error) {
	errs := FieldErrors{}

	if len(r.PurchaseDate) == 0 {
		errs["purchase_date"] = MsgPurchaseDateEmpty
	} else {
		purchased, err := ParseDate("purchase_date", r.PurchaseDate, now.Location())
		if err != nil {
			return nil, err
		}
		if purchased.After(truncateToDate(now, now.Location())) {
			errs["purchase_date"] = MsgPurchaseDateAhead
		}
	}

	checkContact(errs, r.Address, r.City, r.Country, r.Phone)
	return errs, nil
}

// 注文明細の入力を検証
func ValidateOrderDetails(r OrderDetailsRecord) (FieldErrors, error) {
	errs := FieldErrors{}
	if len(r.Quantity) == 0 {
		errs["quantity"] = MsgQuantityEmpty
		return errs, nil
	}

	qty, err := ParseInteger("quantity", r.Quantity)
	if err != nil {
		return nil, err
	}
	if qty < 0 {
		errs["quantity"] = MsgQuantityNegative
	}
	return errs, nil
}
