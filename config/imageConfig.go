package config

// ImageConfig 是 image_service 的聚合配置，按关注点拆分到各子结构。
// - 配置来源：YAML 文件 + 环境变量覆盖（见 core.LoadConfig）。
type ImageConfig struct {
	ZapConfig     ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig  ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig  TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig   MySQLConfig   `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig   RedisConfig   `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig   KafkaConfig   `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig     COSConfig     `mapstructure:"originalsMirrorCosConfig" json:"originalsMirrorCosConfig" yaml:"originalsMirrorCosConfig"`
	JWTConfig     JWTConfig     `mapstructure:"jwtConfig" json:"jwtConfig" yaml:"jwtConfig"`
	UploadConfig  UploadConfig  `mapstructure:"uploadConfig" json:"uploadConfig" yaml:"uploadConfig"`
	AIConfig      AIConfig      `mapstructure:"aiConfig" json:"aiConfig" yaml:"aiConfig"`
}

// ZapConfig 日志配置。
type ZapConfig struct {
	Level    string `mapstructure:"level" json:"level" yaml:"level"`          // debug/info/warn/error
	Encoding string `mapstructure:"encoding" json:"encoding" yaml:"encoding"` // json/console
}

// GormLogConfig GORM 日志配置。
type GormLogConfig struct {
	Level           string `mapstructure:"level" json:"level" yaml:"level"` // silent/error/warn/info
	SlowThresholdMs int    `mapstructure:"slowThresholdMs" json:"slowThresholdMs" yaml:"slowThresholdMs"`
}

// ServerConfig HTTP 服务配置。
type ServerConfig struct {
	Port           string `mapstructure:"port" json:"port" yaml:"port"`
	Env            string `mapstructure:"env" json:"env" yaml:"env"` // development / production
	RequestTimeout int    `mapstructure:"requestTimeout" json:"requestTimeout" yaml:"requestTimeout"` // 秒
}

// TracerConfig 分布式追踪配置。
type TracerConfig struct {
	Enabled      bool    `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Endpoint     string  `mapstructure:"endpoint" json:"endpoint" yaml:"endpoint"`
	Insecure     bool    `mapstructure:"insecure" json:"insecure" yaml:"insecure"`
	SamplerRatio float64 `mapstructure:"samplerRatio" json:"samplerRatio" yaml:"samplerRatio"`
}

// JWTConfig 令牌签发配置。
type JWTConfig struct {
	Secret      string `mapstructure:"secret" json:"secret" yaml:"secret"`
	ExpireHours int    `mapstructure:"expireHours" json:"expireHours" yaml:"expireHours"` // 默认 168 (7 天)
}

// UploadConfig 上传根目录与大小限制。
// - 根目录下固定两级子目录：originals 与 thumbnails。
type UploadConfig struct {
	Path          string `mapstructure:"path" json:"path" yaml:"path"`
	MaxFileSizeMB int64  `mapstructure:"maxFileSizeMB" json:"maxFileSizeMB" yaml:"maxFileSizeMB"`
}
