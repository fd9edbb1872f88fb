package config

// AIConfig 两个外部 AI 服务的接入配置。
// - 视觉分析：上传/手动触发时为图片生成内容标签。
// - 关键词提取：自然语言搜图时把描述转成检索关键词。
// 两者的失败都不会上抛到调用方，各自有确定性的降级路径。
type AIConfig struct {
	Vision   VisionConfig   `mapstructure:"vision" json:"vision" yaml:"vision"`
	DeepSeek DeepSeekConfig `mapstructure:"deepseek" json:"deepseek" yaml:"deepseek"`
}

// VisionConfig 视觉分析端点配置。
type VisionConfig struct {
	APIKey         string `mapstructure:"apiKey" json:"apiKey" yaml:"apiKey"`
	APIURL         string `mapstructure:"apiURL" json:"apiURL" yaml:"apiURL"`
	Model          string `mapstructure:"model" json:"model" yaml:"model"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"` // 默认 30
}

// DeepSeekConfig 关键词提取端点配置。
type DeepSeekConfig struct {
	APIKey         string `mapstructure:"apiKey" json:"apiKey" yaml:"apiKey"`
	APIURL         string `mapstructure:"apiURL" json:"apiURL" yaml:"apiURL"`
	Model          string `mapstructure:"model" json:"model" yaml:"model"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"` // 默认 15
}
