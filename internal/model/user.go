package model

import "time"

// User 用户账号。Username 唯一索引是并发注册去重的最终保障 (见 repository.UserRepository)。
// PasswordHash 永远不出现在任何响应里，json:"-" 兜底。
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 强制指定表名
func (User) TableName() string {
	return "users"
}
