package validator

import (
	"fmt"
	"sort"
)

// 入力レコードの種類
type EntityKind string

const (
	KindProduct      EntityKind = "product"
	KindStore        EntityKind = "store"
	KindPerson       EntityKind = "person"
	KindOrder        EntityKind = "order"
	KindOrderDetails EntityKind = "order_details"
)

// フィールド名 -> エラーメッセージ。空なら受け付け可
type FieldErrors map[string]string

// 1件でもエラーがあるか
func (e FieldErrors) Any() bool {
	return len(e) > 0
}

// エラーのあるフィールド名（昇順）
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// 型変換前のフォーム値。すべて文字列で受け取る
type ProductRecord struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
}

type StoreRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

type PersonRecord struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Birthday  string `json:"birthday"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`

	//空なら勤務先なし
	WorksAt string `json:"works_at"`
}

type OrderRecord struct {
	Client       string `json:"client"`
	Store        string `json:"store"`
	PurchaseDate string `json:"purchase_date"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

type OrderDetailsRecord struct {
	Order    string `json:"order"`
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
}

// 種類ごとに必須のキー
var requiredKeys = map[EntityKind][]string{
	KindProduct:      {"code", "name", "price", "stock"},
	KindStore:        {"name", "email", "address", "city", "country", "phone"},
	KindPerson:       {"first_name", "last_name", "birthday", "email", "address", "city", "country", "phone"},
	KindOrder:        {"purchase_date", "address", "city", "country", "phone"},
	KindOrderDetails: {"quantity"},
}

// 必須キーが揃っているか確認する（値の中身は見ない）
func requireKeys(kind EntityKind, raw map[string]string) error {
	keys, ok := requiredKeys[kind]
	if !ok {
		return fmt.Errorf("%w: unknown entity kind %q", ErrContractViolation, kind)
	}
	for _, k := range keys {
		if _, ok := raw[k]; !ok {
			return fmt.Errorf("%w: missing key %q", ErrContractViolation, k)
		}
	}
	return nil
}

func productRecordFromMap(raw map[string]string) ProductRecord {
	return ProductRecord{
		Code:        raw["code"],
		Name:        raw["name"],
		Description: raw["description"],
		Price:       raw["price"],
		Stock:       raw["stock"],
	}
}

func storeRecordFromMap(raw map[string]string) StoreRecord {
	return StoreRecord{
		Name:    raw["name"],
		Email:   raw["email"],
		Address: raw["address"],
		City:    raw["city"],
		Country: raw["country"],
		Phone:   raw["phone"],
	}
}

func personRecordFromMap(raw map[string]string) PersonRecord {
	return PersonRecord{
		FirstName: raw["first_name"],
		LastName:  raw["last_name"],
		Birthday:  raw["birthday"],
		Email:     raw["email"],
		Address:   raw["address"],
		City:      raw["city"],
		Country:   raw["country"],
		Phone:     raw["phone"],
		WorksAt:   raw["works_at"],
	}
}

func orderRecordFromMap(raw map[string]string) OrderRecord {
	return OrderRecord{
		Client:       raw["client"],
		Store:        raw["store"],
		PurchaseDate: raw["purchase_date"],
		Address:      raw["address"],
		City:         raw["city"],
		Country:      raw["country"],
		Phone:        raw["phone"],
	}
}

func orderDetailsRecordFromMap(raw map[string]string) OrderDetailsRecord {
	return OrderDetailsRecord{
		Order:    raw["order"],
		Product:  raw["product"],
		Quantity: raw["quantity"],
	}
}
