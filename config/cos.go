package config

// COSConfig 腾讯云 COS 配置，用于原图的异地镜像备份。
// - Enabled 为 false 时服务完全不接触 COS，镜像属于尽力而为的增强能力。
type COSConfig struct {
	Enabled    bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	SecretID   string `mapstructure:"secretId" json:"secretId" yaml:"secretId"`
	SecretKey  string `mapstructure:"secretKey" json:"secretKey" yaml:"secretKey"`
	AppID      string `mapstructure:"appId" json:"appId" yaml:"appId"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	BucketName string `mapstructure:"bucketName" json:"bucketName" yaml:"bucketName"`
	BaseURL    string `mapstructure:"baseURL" json:"baseURL" yaml:"baseURL"` // 可选，CDN 或自定义域名
}
