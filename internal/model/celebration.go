package model

import "time"

// Celebration 纪念日 (生日/周年等)。Date 按原样存字符串，不做日历校验。
type Celebration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Date      string    `gorm:"type:varchar(64);not null" json:"date"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// TableName 强制指定表名
func (Celebration) TableName() string {
	return "celebrations"
}
