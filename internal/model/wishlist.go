package model

import "time"

// WishList 心愿清单。UserID 在创建时由仓储层写死为当前登录用户，之后不可改。
type WishList struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// TableName 强制指定表名
func (WishList) TableName() string {
	return "wish_lists"
}
