package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/response"
)

// RequestTimeoutMiddleware 给请求上下文挂超时。
// handler 自己检查 ctx；这里只负责超时后兜底返回 504。
func RequestTimeoutMiddleware(logger *core.ZapLogger, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			logger.Warn("请求处理超时",
				zap.String("path", c.Request.URL.Path),
				zap.Duration("timeout", timeout),
			)
			response.RespondError(c, http.StatusGatewayTimeout, response.ErrCodeServerInternal, "请求处理超时")
		}
	}
}
