package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig 从指定的 YAML 文件加载配置，并允许环境变量覆盖文件中的同名配置项。
// - rawConfig 传入配置结构体指针，字段通过 mapstructure 标签映射。
// - 环境变量命名规则：层级用下划线连接并全大写，例如 mysqlConfig.write.dsn -> MYSQLCONFIG_WRITE_DSN。
func LoadConfig(configFile string, rawConfig interface{}) error {
	v := viper.New()
	v.SetConfigFile(configFile)

	// 环境变量优先于配置文件，便于容器化部署时注入敏感信息（数据库口令、API Key 等）。
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件 '%s' 失败: %w", configFile, err)
	}

	if err := v.Unmarshal(rawConfig); err != nil {
		return fmt.Errorf("解析配置文件 '%s' 失败: %w", configFile, err)
	}
	return nil
}
