package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/myErrors"
)

// CarouselRepository 定义了轮播配置的持久化接口。
// 配置归属用户，所有读写按 user_id 收口。
type CarouselRepository interface {
	// CreateConfig 持久化一条新的轮播配置。
	CreateConfig(ctx context.Context, config *entities.CarouselConfig) error

	// UpdateConfig 整体更新名称、图片列表与切换间隔。
	// - 配置不存在或不属于该用户时返回 ErrRepoNotFound。
	UpdateConfig(ctx context.Context, config *entities.CarouselConfig) error

	// DeleteConfig 物理删除一条轮播配置。
	DeleteConfig(ctx context.Context, id, userID uint64) error

	// GetOwnedConfig 获取该用户拥有的轮播配置。
	GetOwnedConfig(ctx context.Context, id, userID uint64) (*entities.CarouselConfig, error)

	// ListConfigsByUser 列出用户的全部轮播配置，按创建时间倒序。
	ListConfigsByUser(ctx context.Context, userID uint64) ([]*entities.CarouselConfig, error)
}

type carouselRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCarouselRepository 是 carouselRepository 的构造函数。
func NewCarouselRepository(db *gorm.DB, logger *core.ZapLogger) CarouselRepository {
	return &carouselRepository{db: db, logger: logger}
}

func (r *carouselRepository) CreateConfig(ctx context.Context, config *entities.CarouselConfig) error {
	return r.db.WithContext(ctx).Create(config).Error
}

func (r *carouselRepository) UpdateConfig(ctx context.Context, config *entities.CarouselConfig) error {
	result := r.db.WithContext(ctx).Model(&entities.CarouselConfig{}).
		Where("id = ? AND user_id = ?", config.ID, config.UserID).
		Updates(map[string]interface{}{
			"name":             config.Name,
			"images":           config.Images,
			"interval_seconds": config.IntervalSeconds,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}

func (r *carouselRepository) DeleteConfig(ctx context.Context, id, userID uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.CarouselConfig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}

func (r *carouselRepository) GetOwnedConfig(ctx context.Context, id, userID uint64) (*entities.CarouselConfig, error) {
	var config entities.CarouselConfig
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &config, nil
}

func (r *carouselRepository) ListConfigsByUser(ctx context.Context, userID uint64) ([]*entities.CarouselConfig, error) {
	var configs []*entities.CarouselConfig
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}
