package config

// RedisConfig Redis 连接与 AI 结果缓存的 TTL 配置。
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`
	Password string `mapstructure:"password" json:"password" yaml:"password"`
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`

	// VisionTagTTLMinutes 是视觉分析结果（图片ID -> 标签列表）的缓存时长。
	// 同一张图片短时间内重复触发分析时直接命中缓存，避免重复计费的外部调用。
	VisionTagTTLMinutes int `mapstructure:"visionTagTTLMinutes" json:"visionTagTTLMinutes" yaml:"visionTagTTLMinutes"`

	// SearchKeywordTTLMinutes 是搜索关键词提取结果（归一化查询串 -> 关键词列表）的缓存时长。
	SearchKeywordTTLMinutes int `mapstructure:"searchKeywordTTLMinutes" json:"searchKeywordTTLMinutes" yaml:"searchKeywordTTLMinutes"`
}
