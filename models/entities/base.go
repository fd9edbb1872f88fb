package entities

import "time"

// BaseModel 各实体公用的基础字段。
// - 本服务的"删除"是业务层面的软删除（images.is_deleted 标志位），
//   不使用 gorm.DeletedAt：被软删除的图片仍会参与部分查询（如轮播解析时的剔除判断）。
type BaseModel struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
