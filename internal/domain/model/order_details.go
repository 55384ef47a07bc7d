package model

// 注文明細
type OrderDetails struct {
	ID          int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64    `gorm:"not null;index" json:"order_id"`
	Order       *Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	ProductCode string   `gorm:"type:varchar(20);not null;index" json:"product_code"`
	Product     *Product `gorm:"foreignKey:ProductCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
	Quantity    int64    `gorm:"not null" json:"quantity"`
	Timestamps
}

func (OrderDetails) TableName() string { return "orders_details" }
