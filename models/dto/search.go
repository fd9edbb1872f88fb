package dto

// AISearchRequest 自然语言搜图请求。
type AISearchRequest struct {
	Query string `json:"query" binding:"required"`
	Page  int    `json:"page" binding:"omitempty,gte=1"`
	Limit int    `json:"limit" binding:"omitempty,gte=1,lte=100"`
}

// Normalize 填充分页缺省值。
func (r *AISearchRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
}

// GetOffset 计算分页偏移量。
func (r *AISearchRequest) GetOffset() int {
	return (r.Page - 1) * r.Limit
}
