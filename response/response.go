package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 业务错误码。
// - 前两位对应 HTTP 状态语义，后三位为业务内细分，当前未做更细拆分。
const (
	CodeSuccess = 0

	ErrCodeClientInvalidInput = 40001
	ErrCodeClientUnauthorized = 40101
	ErrCodeClientNotFound     = 40401
	ErrCodeClientConflict     = 40901
	ErrCodeServerInternal     = 50000
)

// APIResponse 统一响应结构。
type APIResponse[T any] struct {
	Code    int    `json:"code"`              // 业务码，0 表示成功
	Message string `json:"message,omitempty"` // 人类可读信息
	Data    T      `json:"data,omitempty"`    // 载荷
}

// RespondSuccess 输出成功响应，HTTP 状态固定 200。
func RespondSuccess[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusOK, APIResponse[T]{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondCreated 输出创建成功响应，HTTP 状态 201。
func RespondCreated[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusCreated, APIResponse[T]{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondError 输出错误响应。
func RespondError(c *gin.Context, httpStatus int, code int, message string) {
	c.AbortWithStatusJSON(httpStatus, APIResponse[any]{
		Code:    code,
		Message: message,
	})
}
