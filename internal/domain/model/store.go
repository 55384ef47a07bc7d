package model

// 店舗
// 取扱商品(stores_products)と従業員を持つ
type Store struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(200);not null" json:"name"`
	Email   string `gorm:"type:varchar(225)" json:"email"`
	Address string `gorm:"type:varchar(300)" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	Country string `gorm:"type:varchar(100)" json:"country"`
	Phone   string `gorm:"type:varchar(100)" json:"phone"`
	Timestamps

	Products  []Product `gorm:"many2many:stores_products;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Employees []Person  `gorm:"foreignKey:WorksAtID;constraint:OnDelete:CASCADE" json:"employees,omitempty"`
}

func (Store) TableName() string { return "stores" }
