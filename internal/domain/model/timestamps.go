package model

import (
	"time"

	"gorm.io/gorm"
)

// 全エンティティ共通の作成/更新時刻
// 書き込み前フックで必ず上書きする（呼び出し側の値は無視）
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// 初回INSERT時のみ、未設定ならcreated_atを入れる
func (t *Timestamps) BeforeCreate(tx *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		tx.Statement.SetColumn("CreatedAt", tx.NowFunc())
	}
	return nil
}

// 保存のたびにupdated_atを現在時刻にする
func (t *Timestamps) BeforeSave(tx *gorm.DB) error {
	tx.Statement.SetColumn("UpdatedAt", tx.NowFunc())
	return nil
}
