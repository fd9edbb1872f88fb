package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// AuthResultResponseWrapper 对应 response.APIResponse[vo.AuthResultVO]
type AuthResultResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    AuthResultVO `json:"data"`
}

// UserResponseWrapper 对应 response.APIResponse[vo.UserVO]
type UserResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    UserVO `json:"data"`
}

// ImageResponseWrapper 对应 response.APIResponse[vo.ImageVO]
type ImageResponseWrapper struct {
	Code    int     `json:"code" example:"0"`
	Message string  `json:"message,omitempty" example:"success"`
	Data    ImageVO `json:"data"`
}

// ImagePageResponseWrapper 对应 response.APIResponse[vo.ImagePageVO]
type ImagePageResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    ImagePageVO `json:"data"`
}

// UploadResultResponseWrapper 对应 response.APIResponse[vo.UploadResultVO]
type UploadResultResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    UploadResultVO `json:"data"`
}

// EditResultResponseWrapper 对应 response.APIResponse[vo.EditResultVO]
type EditResultResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    EditResultVO `json:"data"`
}

// AnalyzeResultResponseWrapper 对应 response.APIResponse[vo.AnalyzeResultVO]
type AnalyzeResultResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    AnalyzeResultVO `json:"data"`
}

// ExifResponseWrapper 对应 response.APIResponse[vo.ExifVO]
type ExifResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    ExifVO `json:"data"`
}

// TagResponseWrapper 对应 response.APIResponse[vo.TagVO]
type TagResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    TagVO  `json:"data"`
}

// TagListResponseWrapper 对应 response.APIResponse[vo.TagListVO]
type TagListResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    TagListVO `json:"data"`
}

// CarouselConfigResponseWrapper 对应 response.APIResponse[vo.CarouselConfigVO]
type CarouselConfigResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    CarouselConfigVO `json:"data"`
}

// CarouselListResponseWrapper 对应 response.APIResponse[vo.CarouselListVO]
type CarouselListResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    CarouselListVO `json:"data"`
}

// SearchResultResponseWrapper 对应 response.APIResponse[vo.SearchResultVO]
type SearchResultResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    SearchResultVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
