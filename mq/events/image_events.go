package events

import (
	"encoding/json"
	"time"
)

// ImageData 事件里携带的图片核心数据快照。
type ImageData struct {
	ImageID  uint64   `json:"imageId"`
	UserID   uint64   `json:"userId"`
	Filename string   `json:"filename"`
	MimeType string   `json:"mimeType"`
	FileSize int64    `json:"fileSize"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Tags     []string `json:"tags"`
}

// ImageUploadedEvent 图片上传并完成打标后发出。
type ImageUploadedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	Image     ImageData `json:"image"`
}

// ImageEditedEvent 图片编辑产物生成（或被还原清除）后发出。
type ImageEditedEvent struct {
	EventID    string          `json:"eventId"`
	Timestamp  time.Time       `json:"timestamp"`
	ImageID    uint64          `json:"imageId"`
	UserID     uint64          `json:"userId"`
	Operations json.RawMessage `json:"operations,omitempty"`
}

// ImageDeletedEvent 图片被软删除后发出。
type ImageDeletedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	ImageID   uint64    `json:"imageId"`
	UserID    uint64    `json:"userId"`
}
