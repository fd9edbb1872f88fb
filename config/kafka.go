package config

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	ImageUploaded string `mapstructure:"imageUploaded" yaml:"imageUploaded"` // 图片上传完成主题
	ImageEdited   string `mapstructure:"imageEdited" yaml:"imageEdited"`     // 图片编辑完成主题
	ImageDeleted  string `mapstructure:"imageDeleted" yaml:"imageDeleted"`   // 图片删除主题
}
