package enums

// TagType 标签来源类型。
// - 开放集合：未知值不拒绝，按原样存储，便于未来扩展来源。
type TagType string

const (
	// TagTypeRule 规则推导（画幅方向、拍摄时间推导的时段/季节/月份/年份）。
	TagTypeRule TagType = "rule"
	// TagTypeAI 视觉分析服务生成。
	TagTypeAI TagType = "ai"
	// TagTypeCustom 用户手动添加。
	TagTypeCustom TagType = "custom"
)
