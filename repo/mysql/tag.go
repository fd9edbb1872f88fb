package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/models/enums"
	"github.com/Xushengqwer/image_service/myErrors"
)

// TagRepository 定义了标签与图片-标签关联的持久化接口。
// 标签表是全局共享的：同名标签只存一条，类型由首个创建者决定。
type TagRepository interface {
	// FindOrCreateByName 按名称查找标签，不存在则以给定类型创建。
	// - 已存在的标签保持原类型不变（先写者定型）。
	FindOrCreateByName(ctx context.Context, db *gorm.DB, name string, tagType enums.TagType) (*entities.Tag, error)

	// AttachTagToImage 建立图片与标签的关联，幂等。
	// - 返回本次是否真的新建了关联（已存在时返回 false）。
	AttachTagToImage(ctx context.Context, db *gorm.DB, imageID, tagID uint64) (bool, error)

	// DetachTagFromImage 移除图片与标签的关联。
	// - 关联不存在时返回 ErrRepoNotFound。
	DetachTagFromImage(ctx context.Context, imageID, tagID uint64) error

	// GetTagByID 按主键获取标签。
	GetTagByID(ctx context.Context, id uint64) (*entities.Tag, error)

	// ListAllTags 列出全部标签，按类型、名称排序。
	ListAllTags(ctx context.Context) ([]*entities.Tag, error)
}

type tagRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTagRepository 是 tagRepository 的构造函数。
func NewTagRepository(db *gorm.DB, logger *core.ZapLogger) TagRepository {
	return &tagRepository{db: db, logger: logger}
}

func (r *tagRepository) FindOrCreateByName(ctx context.Context, db *gorm.DB, name string, tagType enums.TagType) (*entities.Tag, error) {
	var tag entities.Tag
	err := db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = entities.Tag{Name: name, Type: tagType}
	if createErr := db.WithContext(ctx).Create(&tag).Error; createErr != nil {
		// 并发创建同名标签会撞唯一索引，重查一次拿到先写者的那条。
		var existing entities.Tag
		if findErr := db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; findErr == nil {
			return &existing, nil
		}
		return nil, createErr
	}
	return &tag, nil
}

func (r *tagRepository) AttachTagToImage(ctx context.Context, db *gorm.DB, imageID, tagID uint64) (bool, error) {
	link := entities.ImageTag{ImageID: imageID, TagID: tagID}
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *tagRepository) DetachTagFromImage(ctx context.Context, imageID, tagID uint64) error {
	result := r.db.WithContext(ctx).
		Where("image_id = ? AND tag_id = ?", imageID, tagID).
		Delete(&entities.ImageTag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}

func (r *tagRepository) GetTagByID(ctx context.Context, id uint64) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) ListAllTags(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	err := r.db.WithContext(ctx).
		Order("type ASC, name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
