package database

import (
	"fmt"
	"time"

	"github.com/leon37/WishLedger/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection 按配置选择驱动建立连接。本地/单机部署用 sqlite 文件库即可，
// mysql 留给需要的人。TranslateError 必须开：users.username 的唯一索引冲突
// 要以 gorm.ErrDuplicatedKey 的形式报出来，上层靠它区分"用户名已占用"。
func NewConnection(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	case "mysql":
		db, err = gorm.Open(mysql.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 自动建表 (Auto Migrate)
	if err := db.AutoMigrate(&model.User{}, &model.WishList{}, &model.Celebration{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "mysql" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// sqlite 写入单线程，连接池收窄避免 database is locked
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
