package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/models/vo"
	"github.com/Xushengqwer/image_service/myErrors"
	"github.com/Xushengqwer/image_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/image_service/repo/redis"
)

// SearchService 定义了自然语言搜图的业务接口。
// 查询先被大模型扩展成关键词，再落到文件名与标签名的模糊检索上；
// 模型不可用时退化为拿查询原文直接检索，搜索永不因 AI 故障而失败。
type SearchService interface {
	SearchImages(ctx context.Context, userID uint64, req *dto.AISearchRequest) (*vo.SearchResultVO, error)
}

type searchService struct {
	imageRepo mysql.ImageRepository
	keyword   dependencies.SearchKeywordClient
	aiCache   redisRepo.AICache
	logger    *core.ZapLogger
}

// NewSearchService 是 searchService 的构造函数。
func NewSearchService(imageRepo mysql.ImageRepository, keyword dependencies.SearchKeywordClient, aiCache redisRepo.AICache, logger *core.ZapLogger) SearchService {
	return &searchService{
		imageRepo: imageRepo,
		keyword:   keyword,
		aiCache:   aiCache,
		logger:    logger,
	}
}

func (s *searchService) SearchImages(ctx context.Context, userID uint64, req *dto.AISearchRequest) (*vo.SearchResultVO, error) {
	req.Normalize()
	query := strings.TrimSpace(req.Query)

	keywords := s.expandWithCache(ctx, query)

	images, total, err := s.imageRepo.SearchByKeywords(ctx, userID, keywords, req.GetOffset(), req.Limit)
	if err != nil {
		return nil, err
	}

	result := &vo.SearchResultVO{
		Query:      query,
		Keywords:   keywords,
		Images:     make([]*vo.SearchImageVO, 0, len(images)),
		Pagination: vo.NewPaginationVO(total, req.Page, req.Limit),
	}
	for _, img := range images {
		result.Images = append(result.Images, mapSearchImage(img))
	}
	return result, nil
}

// expandWithCache 以查询原文为键缓存关键词扩展结果。
// 模型调用失败时降级为 [query]，降级结果不写缓存，下次还有机会走模型。
func (s *searchService) expandWithCache(ctx context.Context, query string) []string {
	if s.aiCache != nil {
		if cached, err := s.aiCache.GetSearchKeywords(ctx, query); err == nil {
			s.logger.Debug("搜索关键词缓存命中", zap.String("query", query))
			return cached
		} else if !errors.Is(err, myErrors.ErrCacheMiss) {
			s.logger.Warn("读取搜索关键词缓存失败，继续打模型", zap.Error(err))
		}
	}

	keywords, err := s.keyword.ExpandQuery(ctx, query)
	if err != nil {
		s.logger.Warn("关键词扩展失败，退化为原文检索", zap.String("query", query), zap.Error(err))
		return []string{query}
	}

	if s.aiCache != nil && len(keywords) > 0 {
		if err := s.aiCache.SetSearchKeywords(ctx, query, keywords); err != nil {
			s.logger.Warn("写入搜索关键词缓存失败", zap.Error(err))
		}
	}
	return keywords
}

func mapSearchImage(img *entities.Image) *vo.SearchImageVO {
	tagNames := make([]string, 0, len(img.Tags))
	for _, tag := range img.Tags {
		if tag != nil {
			tagNames = append(tagNames, tag.Name)
		}
	}
	return &vo.SearchImageVO{
		ID:           img.ID,
		Filename:     img.Filename,
		Tags:         tagNames,
		DisplayURL:   vo.DisplayURLOf(img),
		ThumbnailURL: vo.ThumbnailURLOf(img.ThumbnailPath),
		UploadTime:   img.UploadTime,
	}
}
