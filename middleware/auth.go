package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/response"
)

// ContextKeyUserID 认证通过后写入 gin.Context 的用户 ID 键。
const ContextKeyUserID = "userID"

// JWTAuthMiddleware 校验 Authorization: Bearer <token>，
// 通过后把令牌里的用户 ID 放进请求上下文。
func JWTAuthMiddleware(cfg appConfig.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少认证令牌")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "认证头格式错误")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("非预期的签名算法: %v", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "认证令牌无效或已过期")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "认证令牌载荷异常")
			return
		}
		// JSON 数字解码为 float64
		rawID, ok := claims["userId"].(float64)
		if !ok || rawID <= 0 {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "认证令牌载荷异常")
			return
		}

		c.Set(ContextKeyUserID, uint64(rawID))
		c.Next()
	}
}

// UserIDFromContext 取出认证中间件写入的用户 ID。
// 只应在挂了 JWTAuthMiddleware 的路由里调用。
func UserIDFromContext(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint64)
	return userID, ok && userID > 0
}
