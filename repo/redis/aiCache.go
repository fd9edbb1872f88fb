package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/myErrors"
)

// AICache 定义了 AI 调用结果的缓存接口。
// - 视觉打标与搜索关键词扩展都是外部大模型调用，价高且慢，命中缓存可以整段跳过。
// - 缓存未命中统一返回 myErrors.ErrCacheMiss，上层回源后负责写回。
type AICache interface {
	// GetVisionTags 按图片内容指纹获取缓存的视觉标签。
	GetVisionTags(ctx context.Context, contentHash string) ([]string, error)

	// SetVisionTags 写入视觉标签缓存。
	SetVisionTags(ctx context.Context, contentHash string, tags []string) error

	// GetSearchKeywords 按自然语言查询原文获取缓存的扩展关键词。
	GetSearchKeywords(ctx context.Context, query string) ([]string, error)

	// SetSearchKeywords 写入关键词扩展缓存。
	SetSearchKeywords(ctx context.Context, query string, keywords []string) error
}

// aiCacheImpl 是 AICache 接口的 Redis 实现。
type aiCacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
	visionTTL   time.Duration
	keywordTTL  time.Duration
}

// NewAICache 是 aiCacheImpl 的构造函数。
func NewAICache(redisClient *redis.Client, logger *core.ZapLogger, visionTTL, keywordTTL time.Duration) AICache {
	return &aiCacheImpl{
		redisClient: redisClient,
		logger:      logger,
		visionTTL:   visionTTL,
		keywordTTL:  keywordTTL,
	}
}

func (c *aiCacheImpl) GetVisionTags(ctx context.Context, contentHash string) ([]string, error) {
	return c.getStringSlice(ctx, constant.VisionTagCacheKeyPrefix+contentHash)
}

func (c *aiCacheImpl) SetVisionTags(ctx context.Context, contentHash string, tags []string) error {
	return c.setStringSlice(ctx, constant.VisionTagCacheKeyPrefix+contentHash, tags, c.visionTTL)
}

func (c *aiCacheImpl) GetSearchKeywords(ctx context.Context, query string) ([]string, error) {
	return c.getStringSlice(ctx, constant.SearchKeywordCacheKeyPrefix+query)
}

func (c *aiCacheImpl) SetSearchKeywords(ctx context.Context, query string, keywords []string) error {
	return c.setStringSlice(ctx, constant.SearchKeywordCacheKeyPrefix+query, keywords, c.keywordTTL)
}

func (c *aiCacheImpl) getStringSlice(ctx context.Context, key string) ([]string, error) {
	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取 AI 结果缓存失败", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		// 缓存内容损坏按未命中处理，回源后会被覆盖。
		c.logger.Warn("AI 结果缓存内容无法解析，视为未命中", zap.String("key", key), zap.Error(err))
		return nil, myErrors.ErrCacheMiss
	}
	return values, nil
}

func (c *aiCacheImpl) setStringSlice(ctx context.Context, key string, values []string, ttl time.Duration) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	if err := c.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Error("写入 AI 结果缓存失败", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
