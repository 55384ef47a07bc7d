package model

import "time"

// 注文
// 顧客または店舗が削除されると注文も削除される
type Order struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID     int64     `gorm:"not null;index" json:"client_id"`
	Client       *Person   `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	StoreID      int64     `gorm:"not null;index" json:"store_id"`
	Store        *Store    `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	PurchaseDate time.Time `gorm:"not null" json:"purchase_date"`
	Address      string    `gorm:"type:varchar(300)" json:"address"`
	City         string    `gorm:"type:varchar(100)" json:"city"`
	Country      string    `gorm:"type:varchar(100)" json:"country"`
	Phone        string    `gorm:"type:varchar(100)" json:"phone"`
	Timestamps

	Details []OrderDetails `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

func (Order) TableName() string { return "orders" }
