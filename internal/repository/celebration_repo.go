package repository

import (
	"context"

	"github.com/leon37/WishLedger/internal/model"
	"gorm.io/gorm"
)

// CelebrationRepo 和 WishListRepo 同构：归属写死在 Create 里，查询只认 user_id 等值过滤。
type CelebrationRepo interface {
	Create(ctx context.Context, ownerID uint, title, date string) (*model.Celebration, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Celebration, error)
}

type celebrationRepo struct {
	db *gorm.DB
}

// NewCelebrationRepo 构造函数
func NewCelebrationRepo(db *gorm.DB) CelebrationRepo {
	return &celebrationRepo{db: db}
}

func (r *celebrationRepo) Create(ctx context.Context, ownerID uint, title, date string) (*model.Celebration, error) {
	cel := &model.Celebration{
		Title:  title,
		Date:   date,
		UserID: ownerID,
	}
	if err := r.db.WithContext(ctx).Create(cel).Error; err != nil {
		return nil, err
	}
	return cel, nil
}

func (r *celebrationRepo) ListByOwner(ctx context.Context, ownerID uint) ([]model.Celebration, error) {
	var cels []model.Celebration
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&cels).Error
	if err != nil {
		return nil, err
	}
	return cels, nil
}
