package entities

import "gorm.io/datatypes"

// CarouselConfig 轮播配置实体
// - 表名: carousel_configs
// - Images 持久化为 JSON 数组（图片 ID 的有序列表），顺序即播放顺序。
// - 列表中引用了已软删除或不存在图片时，读取侧静默剔除，但不回写存储。
type CarouselConfig struct {
	BaseModel

	// 所属用户ID
	UserID uint64 `gorm:"not null;index"`

	// 配置显示名
	Name string `gorm:"type:varchar(100);not null"`

	// 有序的图片 ID 列表，JSON 数组，写入前已过滤为正整数
	Images datatypes.JSON `gorm:"type:json;not null"`

	// 播放间隔（秒），边界校验在 DTO 层（最小 1 秒）
	IntervalSeconds int `gorm:"not null;default:5"`
}
