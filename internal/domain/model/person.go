package model

import "time"

// 従業員または顧客
type Person struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Birthday  time.Time `gorm:"type:date" json:"birthday"`
	Email     string    `gorm:"type:varchar(225)" json:"email"`
	Address   string    `gorm:"type:varchar(300)" json:"address"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	Country   string    `gorm:"type:varchar(100)" json:"country"`
	Phone     string    `gorm:"type:varchar(100)" json:"phone"`

	//勤務先（なければnil）
	WorksAtID *int64 `gorm:"index" json:"works_at_id"`
	WorksAt   *Store `gorm:"foreignKey:WorksAtID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamps
}

func (Person) TableName() string { return "persons" }
