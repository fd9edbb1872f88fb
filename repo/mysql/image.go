package mysql

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/myErrors"
)

// ImageRepository 定义了图片数据在 MySQL 中的持久化操作接口。
// 所有读写都带 user_id 过滤；所有权不符与不存在统一表现为 ErrRepoNotFound，
// 不向上区分 403/404。
type ImageRepository interface {
	// CreateImage 持久化一条新的图片记录。
	// - 上传流程的最后一步，此前缩略图与元数据提取必须已经成功。
	CreateImage(ctx context.Context, db *gorm.DB, image *entities.Image) error

	// GetOwnedImage 获取调用方拥有且未软删除的图片。
	// - withTags 为 true 时预加载标签（列表/详情视图需要）。
	GetOwnedImage(ctx context.Context, id, userID uint64, withTags bool) (*entities.Image, error)

	// ListImages 分页列举用户未删除的图片，按上传时间倒序，预加载标签。
	// - search 非空时对展示文件名做模糊匹配。
	// - 返回当前页列表与符合条件的总数。
	ListImages(ctx context.Context, userID uint64, search string, offset, limit int) ([]*entities.Image, int64, error)

	// ListImagesByIDs 批量查找用户未删除的图片，一次查询，轮播解析使用。
	// - 结果顺序不保证，调用方按自己的顺序重排。
	ListImagesByIDs(ctx context.Context, userID uint64, ids []uint64) ([]*entities.Image, error)

	// SoftDeleteImage 置软删除标志，行保留。
	SoftDeleteImage(ctx context.Context, id, userID uint64) error

	// UpdateEditResult 单条 UPDATE 同时写入编辑产物路径与编辑描述符。
	// - 两个字段同生共死的不变式由这里的原子写保证。
	UpdateEditResult(ctx context.Context, id uint64, editedPath string, operations datatypes.JSON) error

	// ClearEditResult 还原：单条 UPDATE 同时清空两个编辑字段。
	ClearEditResult(ctx context.Context, id uint64) error

	// RenameImage 更新展示文件名。
	RenameImage(ctx context.Context, id uint64, filename string) error

	// FilenameExists 检查同一用户下（排除指定图片）是否存在同名未删除图片。
	FilenameExists(ctx context.Context, userID uint64, filename string, excludeID uint64) (bool, error)

	// SearchByKeywords 按关键词在文件名与标签名上做 OR 模糊检索。
	// - 关键词之间为 OR；整体再与 owner/not-deleted 过滤做 AND。
	SearchByKeywords(ctx context.Context, userID uint64, keywords []string, offset, limit int) ([]*entities.Image, int64, error)

	// ListReferencedPaths 列出数据库当前引用的全部磁盘路径（原图/编辑产物/缩略图）。
	// - 孤儿文件清扫任务使用。
	ListReferencedPaths(ctx context.Context) ([]string, error)
}

type imageRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewImageRepository 是 imageRepository 的构造函数。
func NewImageRepository(db *gorm.DB, logger *core.ZapLogger) ImageRepository {
	return &imageRepository{db: db, logger: logger}
}

func (r *imageRepository) CreateImage(ctx context.Context, db *gorm.DB, image *entities.Image) error {
	return db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) GetOwnedImage(ctx context.Context, id, userID uint64, withTags bool) (*entities.Image, error) {
	query := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false)
	if withTags {
		query = query.Preload("Tags")
	}

	var image entities.Image
	if err := query.First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) ListImages(ctx context.Context, userID uint64, search string, offset, limit int) ([]*entities.Image, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Image{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)
	if search != "" {
		query = query.Where("filename LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []*entities.Image
	err := query.Preload("Tags").
		Order("upload_time DESC").
		Offset(offset).Limit(limit).
		Find(&images).Error
	if err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

func (r *imageRepository) ListImagesByIDs(ctx context.Context, userID uint64, ids []uint64) ([]*entities.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var images []*entities.Image
	err := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ? AND is_deleted = ?", ids, userID, false).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) SoftDeleteImage(ctx context.Context, id, userID uint64) error {
	result := r.db.WithContext(ctx).Model(&entities.Image{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}

func (r *imageRepository) UpdateEditResult(ctx context.Context, id uint64, editedPath string, operations datatypes.JSON) error {
	return r.db.WithContext(ctx).Model(&entities.Image{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"edited_path":     editedPath,
			"edit_operations": operations,
		}).Error
}

func (r *imageRepository) ClearEditResult(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Model(&entities.Image{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"edited_path":     nil,
			"edit_operations": nil,
		}).Error
}

func (r *imageRepository) RenameImage(ctx context.Context, id uint64, filename string) error {
	return r.db.WithContext(ctx).Model(&entities.Image{}).
		Where("id = ?", id).
		Update("filename", filename).Error
}

func (r *imageRepository) FilenameExists(ctx context.Context, userID uint64, filename string, excludeID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Image{}).
		Where("user_id = ? AND filename = ? AND id <> ? AND is_deleted = ?", userID, filename, excludeID, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *imageRepository) SearchByKeywords(ctx context.Context, userID uint64, keywords []string, offset, limit int) ([]*entities.Image, int64, error) {
	base := r.db.WithContext(ctx).Model(&entities.Image{}).
		Joins("LEFT JOIN image_tags ON image_tags.image_id = images.id").
		Joins("LEFT JOIN tags ON tags.id = image_tags.tag_id").
		Where("images.user_id = ? AND images.is_deleted = ?", userID, false)

	// 关键词之间 OR，命中文件名或任一标签名即算命中。
	if len(keywords) > 0 {
		conds := make([]string, 0, len(keywords))
		args := make([]interface{}, 0, len(keywords)*2)
		for _, kw := range keywords {
			like := "%" + kw + "%"
			conds = append(conds, "(images.filename LIKE ? OR tags.name LIKE ?)")
			args = append(args, like, like)
		}
		base = base.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("images.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []*entities.Image
	err := base.Session(&gorm.Session{}).
		Select("images.*").
		Group("images.id").
		Order("images.upload_time DESC").
		Offset(offset).Limit(limit).
		Preload("Tags").
		Find(&images).Error
	if err != nil {
		r.logger.Error("关键词检索执行失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	return images, total, nil
}

func (r *imageRepository) ListReferencedPaths(ctx context.Context) ([]string, error) {
	type row struct {
		OriginalPath  string
		EditedPath    *string
		ThumbnailPath string
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&entities.Image{}).
		Select("original_path", "edited_path", "thumbnail_path").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(rows)*3)
	for _, item := range rows {
		paths = append(paths, item.OriginalPath, item.ThumbnailPath)
		if item.EditedPath != nil && *item.EditedPath != "" {
			paths = append(paths, *item.EditedPath)
		}
	}
	return paths, nil
}
