package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/models/enums"
	"github.com/Xushengqwer/image_service/models/vo"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

// TagService 定义了手动标签管理的业务接口。
type TagService interface {
	// AttachTag 给图片手动挂载一个标签，标签不存在则以 custom 类型创建。
	// - 重复挂载是幂等的，不报错。
	AttachTag(ctx context.Context, userID, imageID uint64, tagName string) (*vo.TagVO, error)

	// DetachTag 移除图片上的一个标签关联。
	// - 图片不归属调用方或关联不存在时返回 ErrRepoNotFound。
	DetachTag(ctx context.Context, userID, imageID, tagID uint64) error

	// ListTags 列出系统中全部标签。
	ListTags(ctx context.Context) (*vo.TagListVO, error)
}

type tagService struct {
	db        *gorm.DB
	imageRepo mysql.ImageRepository
	tagRepo   mysql.TagRepository
	logger    *core.ZapLogger
}

// NewTagService 是 tagService 的构造函数。
func NewTagService(db *gorm.DB, imageRepo mysql.ImageRepository, tagRepo mysql.TagRepository, logger *core.ZapLogger) TagService {
	return &tagService{
		db:        db,
		imageRepo: imageRepo,
		tagRepo:   tagRepo,
		logger:    logger,
	}
}

func (s *tagService) AttachTag(ctx context.Context, userID, imageID uint64, tagName string) (*vo.TagVO, error) {
	// 先确认图片归属，再动标签
	image, err := s.imageRepo.GetOwnedImage(ctx, imageID, userID, false)
	if err != nil {
		return nil, err
	}

	tag, err := s.tagRepo.FindOrCreateByName(ctx, s.db, tagName, enums.TagTypeCustom)
	if err != nil {
		s.logger.Error("查找或创建标签失败", zap.String("tagName", tagName), zap.Error(err))
		return nil, err
	}

	created, err := s.tagRepo.AttachTagToImage(ctx, s.db, image.ID, tag.ID)
	if err != nil {
		s.logger.Error("挂载标签失败", zap.Uint64("imageID", imageID), zap.Uint64("tagID", tag.ID), zap.Error(err))
		return nil, err
	}
	if created {
		s.logger.Info("手动挂载标签", zap.Uint64("imageID", imageID), zap.String("tagName", tag.Name))
	}

	return vo.MapTagToVO(tag), nil
}

func (s *tagService) DetachTag(ctx context.Context, userID, imageID, tagID uint64) error {
	image, err := s.imageRepo.GetOwnedImage(ctx, imageID, userID, false)
	if err != nil {
		return err
	}
	return s.tagRepo.DetachTagFromImage(ctx, image.ID, tagID)
}

func (s *tagService) ListTags(ctx context.Context) (*vo.TagListVO, error) {
	tags, err := s.tagRepo.ListAllTags(ctx)
	if err != nil {
		return nil, err
	}
	return &vo.TagListVO{Tags: vo.MapTagsToVO(tags)}, nil
}
