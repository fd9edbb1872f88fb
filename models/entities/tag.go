package entities

import "github.com/Xushengqwer/image_service/models/enums"

// Tag 标签实体
// - 表名: tags
// - 名字全局唯一，与类型无关；同名再次写入时保留首个写入者的类型（显式策略，见仓库层 FindOrCreate）。
// - 标签由生成器或手动挂载时惰性创建，应用层不删除标签行。
type Tag struct {
	BaseModel

	// 标签名，全局唯一
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`

	// 标签类型: rule=规则推导 / ai=视觉分析 / custom=用户自建
	Type enums.TagType `gorm:"type:varchar(20);not null;default:custom"`
}

// ImageTag 图片-标签关联（image_tags 中间表的显式模型）
// - 与 Image.Tags 的 many2many 指向同一张表；写路径走本模型以便
//   使用 ON CONFLICT DO NOTHING 实现幂等挂载，读路径走 Preload。
type ImageTag struct {
	ImageID uint64 `gorm:"primaryKey"`
	TagID   uint64 `gorm:"primaryKey"`
}

// TableName 与 many2many 约定保持一致。
func (ImageTag) TableName() string { return "image_tags" }
