package repository

import (
	"context"

	"github.com/leon37/WishLedger/internal/model"
	"gorm.io/gorm"
)

// WishListRepo 定义接口 (为了以后方便 Mock)
type WishListRepo interface {
	Create(ctx context.Context, ownerID uint, name string) (*model.WishList, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.WishList, error)
}

type wishListRepo struct {
	db *gorm.DB
}

// NewWishListRepo 构造函数
func NewWishListRepo(db *gorm.DB) WishListRepo {
	return &wishListRepo{db: db}
}

// Create 插入一条清单。ownerID 在这里写死，调用方传什么 payload 都改不了归属，
// 这是整个系统的核心授权不变量。
func (r *wishListRepo) Create(ctx context.Context, ownerID uint, name string) (*model.WishList, error) {
	wl := &model.WishList{
		Name:   name,
		UserID: ownerID,
	}
	if err := r.db.WithContext(ctx).Create(wl).Error; err != nil {
		return nil, err
	}
	return wl, nil
}

// ListByOwner 只返回 user_id 等于 ownerID 的记录，按插入顺序。
// 注意必须是等值比较，不要写成 bool 表达式。
func (r *wishListRepo) ListByOwner(ctx context.Context, ownerID uint) ([]model.WishList, error) {
	var lists []model.WishList
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}
