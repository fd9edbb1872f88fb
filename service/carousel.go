package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/models/vo"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

// CarouselService 定义了轮播配置的业务接口。
// 配置存的是图片 ID 的有序列表；解析时按存储顺序还原，
// 引用了已删除或不存在图片的项被静默剔除，存储本身不回写。
type CarouselService interface {
	CreateConfig(ctx context.Context, userID uint64, req *dto.CarouselConfigRequest) (*vo.CarouselConfigVO, error)
	UpdateConfig(ctx context.Context, userID, configID uint64, req *dto.CarouselConfigRequest) (*vo.CarouselConfigVO, error)
	DeleteConfig(ctx context.Context, userID, configID uint64) error
	GetConfig(ctx context.Context, userID, configID uint64) (*vo.CarouselConfigVO, error)
	ListConfigs(ctx context.Context, userID uint64) (*vo.CarouselListVO, error)
}

type carouselService struct {
	carouselRepo mysql.CarouselRepository
	imageRepo    mysql.ImageRepository
	logger       *core.ZapLogger
}

// NewCarouselService 是 carouselService 的构造函数。
func NewCarouselService(carouselRepo mysql.CarouselRepository, imageRepo mysql.ImageRepository, logger *core.ZapLogger) CarouselService {
	return &carouselService{
		carouselRepo: carouselRepo,
		imageRepo:    imageRepo,
		logger:       logger,
	}
}

func (s *carouselService) CreateConfig(ctx context.Context, userID uint64, req *dto.CarouselConfigRequest) (*vo.CarouselConfigVO, error) {
	imagesJSON, err := marshalImageIDs(req.ValidImageIDs())
	if err != nil {
		return nil, err
	}

	config := &entities.CarouselConfig{
		UserID:          userID,
		Name:            req.Name,
		Images:          imagesJSON,
		IntervalSeconds: req.Interval(),
	}
	if err := s.carouselRepo.CreateConfig(ctx, config); err != nil {
		s.logger.Error("创建轮播配置失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}

	return s.buildConfigVO(ctx, config)
}

func (s *carouselService) UpdateConfig(ctx context.Context, userID, configID uint64, req *dto.CarouselConfigRequest) (*vo.CarouselConfigVO, error) {
	config, err := s.carouselRepo.GetOwnedConfig(ctx, configID, userID)
	if err != nil {
		return nil, err
	}

	imagesJSON, err := marshalImageIDs(req.ValidImageIDs())
	if err != nil {
		return nil, err
	}

	config.Name = req.Name
	config.Images = imagesJSON
	config.IntervalSeconds = req.Interval()
	if err := s.carouselRepo.UpdateConfig(ctx, config); err != nil {
		s.logger.Error("更新轮播配置失败", zap.Uint64("configID", configID), zap.Error(err))
		return nil, err
	}

	return s.buildConfigVO(ctx, config)
}

func (s *carouselService) DeleteConfig(ctx context.Context, userID, configID uint64) error {
	return s.carouselRepo.DeleteConfig(ctx, configID, userID)
}

func (s *carouselService) GetConfig(ctx context.Context, userID, configID uint64) (*vo.CarouselConfigVO, error) {
	config, err := s.carouselRepo.GetOwnedConfig(ctx, configID, userID)
	if err != nil {
		return nil, err
	}
	return s.buildConfigVO(ctx, config)
}

func (s *carouselService) ListConfigs(ctx context.Context, userID uint64) (*vo.CarouselListVO, error) {
	configs, err := s.carouselRepo.ListConfigsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &vo.CarouselListVO{Configs: make([]*vo.CarouselConfigVO, 0, len(configs))}
	for _, config := range configs {
		configVO, err := s.buildConfigVO(ctx, config)
		if err != nil {
			return nil, err
		}
		result.Configs = append(result.Configs, configVO)
	}
	return result, nil
}

// buildConfigVO 把存储形态的配置解析为视图：一次批量查询，再按存储顺序重排。
func (s *carouselService) buildConfigVO(ctx context.Context, config *entities.CarouselConfig) (*vo.CarouselConfigVO, error) {
	ids, err := unmarshalImageIDs(config.Images)
	if err != nil {
		s.logger.Warn("轮播配置的图片列表无法解析，按空列表处理", zap.Uint64("configID", config.ID), zap.Error(err))
		ids = nil
	}

	images, err := s.imageRepo.ListImagesByIDs(ctx, config.UserID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*entities.Image, len(images))
	for _, img := range images {
		byID[img.ID] = img
	}

	resolved := make([]*vo.CarouselImageVO, 0, len(ids))
	for _, id := range ids {
		img, ok := byID[id]
		if !ok {
			continue // 已删除或越权引用，剔除
		}
		resolved = append(resolved, vo.MapImageToCarouselVO(img))
	}

	return &vo.CarouselConfigVO{
		ID:              config.ID,
		Name:            config.Name,
		Images:          resolved,
		IntervalSeconds: config.IntervalSeconds,
		CreatedAt:       config.CreatedAt,
	}, nil
}

func marshalImageIDs(ids []uint64) (datatypes.JSON, error) {
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("序列化图片 ID 列表失败: %w", err)
	}
	return datatypes.JSON(data), nil
}

func unmarshalImageIDs(data datatypes.JSON) ([]uint64, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ids []uint64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
