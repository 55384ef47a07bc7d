package model

import (
	"github.com/shopspring/decimal"
)

// 商品。codeが自然キー
type Product struct {
	Code        string          `gorm:"primaryKey;type:varchar(20)" json:"code"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:varchar(1000)" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"stock"`
	Timestamps
}

func (Product) TableName() string { return "products" }
