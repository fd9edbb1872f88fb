package entities

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// Image 图片实体
// - 使用场景: 每个成功上传的图片资产一行，贯穿整个生命周期（上传 -> 编辑/重命名 -> 软删除）。
// - 表名: images (GORM 默认使用结构体名复数形式)
// - 不变式: EditedPath 与 EditOperations 同生共死——有编辑产物必有编辑描述符，
//   还原时两者一起清空。该约束由服务层的单条 UPDATE 保证。
type Image struct {
	BaseModel

	// 所属用户ID，外键，所有查询都带 user_id 过滤
	// - GORM 标签: index 加速按用户列举
	UserID uint64 `gorm:"not null;index"`

	// 展示文件名（用户可改），与磁盘上的存储文件名无关
	// - 同一用户下未删除图片之间要求唯一，冲突返回 409；
	//   唯一性在服务层校验而非数据库约束，因为软删除的行不应占用名字
	Filename string `gorm:"type:varchar(255);not null"`

	// 原始文件的磁盘路径，上传后不再变化
	// - 编辑永远从这份原始资产重新解码，保证编辑不可叠加
	OriginalPath string `gorm:"type:varchar(1023);not null"`

	// 编辑产物的磁盘路径，未编辑时为 NULL
	EditedPath sql.NullString `gorm:"type:varchar(1023)"`

	// 编辑描述符，记录产出 EditedPath 所用的 crop/rotate/filters 参数
	// - 类型: JSON，结构见 dto.EditOperations
	EditOperations datatypes.JSON `gorm:"type:json"`

	// 缩略图磁盘路径，上传时生成，最长边不超过 300px
	ThumbnailPath string `gorm:"type:varchar(1023);not null"`

	// 原始文件字节数
	FileSize int64 `gorm:"not null"`

	// 原始像素尺寸
	Width  int `gorm:"not null"`
	Height int `gorm:"not null"`

	// MIME 类型，例如 image/jpeg
	MimeType string `gorm:"type:varchar(100);not null"`

	// --- EXIF 字段，解析失败或不存在时均为 NULL ---

	CameraModel  sql.NullString  `gorm:"type:varchar(255)"` // 相机型号
	TakenTime    sql.NullTime    // 拍摄时间 (DateTimeOriginal)
	ExposureTime sql.NullString  `gorm:"type:varchar(50)"` // 曝光时间，保留 "1/250" 形式
	FNumber      sql.NullFloat64 // 光圈值
	ISOSpeed     sql.NullInt64   // ISO 感光度
	FocalLength  sql.NullFloat64 // 焦距 (mm)
	LensModel    sql.NullString  `gorm:"type:varchar(255)"` // 镜头型号
	GPSLatitude  sql.NullFloat64 // GPS 纬度
	GPSLongitude sql.NullFloat64 // GPS 经度

	// 软删除标志，应用层永不物理删除图片行
	IsDeleted bool `gorm:"not null;default:false;index"`

	// 上传时间，列表默认按其倒序
	UploadTime time.Time `gorm:"autoCreateTime;index"`

	// 图片标签，多对多，中间表 image_tags
	Tags []*Tag `gorm:"many2many:image_tags" json:"tags,omitempty"`
}
