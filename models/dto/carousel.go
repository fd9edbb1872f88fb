package dto

// CarouselConfigRequest 创建/更新轮播配置的请求体。
// - IntervalSeconds 下限 1 秒，缺省 5 秒。
// - ImageIDs 允许为空，空轮播是合法配置。
type CarouselConfigRequest struct {
	Name            string  `json:"name" binding:"required,max=100"`
	ImageIDs        []int64 `json:"imageIds"`
	IntervalSeconds int     `json:"intervalSeconds" binding:"omitempty,gte=1"`
}

// ValidImageIDs 过滤出正整数的图片 ID，保持提交顺序。
func (r *CarouselConfigRequest) ValidImageIDs() []uint64 {
	ids := make([]uint64, 0, len(r.ImageIDs))
	for _, id := range r.ImageIDs {
		if id > 0 {
			ids = append(ids, uint64(id))
		}
	}
	return ids
}

// Interval 返回带缺省值的播放间隔。
func (r *CarouselConfigRequest) Interval() int {
	if r.IntervalSeconds <= 0 {
		return 5
	}
	return r.IntervalSeconds
}
