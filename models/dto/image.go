package dto

// ListImagesRequest 分页列举图片的查询参数。
type ListImagesRequest struct {
	// Page 页码，从 1 开始，缺省为 1。
	Page int `form:"page" binding:"omitempty,gte=1"`
	// Limit 每页数量，缺省为 20。
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=100"`
	// Search 文件名模糊搜索关键词，可选。
	Search string `form:"search" binding:"omitempty,max=255"`
}

// Normalize 填充分页缺省值。
func (r *ListImagesRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
}

// GetOffset 计算分页偏移量。
func (r *ListImagesRequest) GetOffset() int {
	return (r.Page - 1) * r.Limit
}

// RenameImageRequest 修改图片展示文件名的请求。
type RenameImageRequest struct {
	Filename string `json:"filename" binding:"required,max=255"`
}
