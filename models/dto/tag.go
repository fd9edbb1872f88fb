package dto

// AttachTagRequest 给图片手动挂载标签的请求体。
type AttachTagRequest struct {
	TagName string `json:"tagName" binding:"required,max=100"`
}
