package constant

// Redis Key 约定。
// - 统一带 image_service 前缀，避免与共用实例中的其他服务冲突。
const (
	// VisionTagCacheKeyPrefix 视觉分析标签缓存，后接图片 ID。
	VisionTagCacheKeyPrefix = "image_service:vision_tags:"

	// SearchKeywordCacheKeyPrefix 搜索关键词缓存，后接归一化后的查询串。
	SearchKeywordCacheKeyPrefix = "image_service:search_keywords:"
)
