package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/image_service/middleware"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/myErrors"
	"github.com/Xushengqwer/image_service/response"
	"github.com/Xushengqwer/image_service/service"
)

// AuthController 定义认证控制器的结构体
type AuthController struct {
	authService service.AuthService
}

// NewAuthController 构造函数，用于创建 AuthController 实例
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register 用户注册
// @Summary      注册新用户
// @Description  使用用户名、邮箱和密码注册新账号，成功后直接返回登录令牌。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} vo.AuthResultResponseWrapper "注册成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      409 {object} vo.BaseResponseWrapper "用户名或邮箱已被注册"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	result, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, myErrors.ErrConflict) {
			response.RespondError(c, http.StatusConflict, response.ErrCodeClientConflict, err.Error())
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "注册失败")
		return
	}

	response.RespondCreated(c, result, "注册成功")
}

// Login 用户登录
// @Summary      用户登录
// @Description  使用用户名和密码换取 JWT 令牌。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} vo.AuthResultResponseWrapper "登录成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户名或密码错误"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "用户名或密码错误")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "登录失败")
		return
	}

	response.RespondSuccess(c, result, "登录成功")
}

// Me 获取当前用户信息
// @Summary      获取当前用户
// @Description  返回令牌对应的用户公开信息。
// @Tags         auth (认证)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.UserResponseWrapper "成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息")
		return
	}

	user, err := ctrl.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "用户不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取用户信息失败")
		return
	}

	response.RespondSuccess(c, user, "获取成功")
}

// RegisterPublicRoutes 注册无需认证的认证路由。
func (ctrl *AuthController) RegisterPublicRoutes(group *gin.RouterGroup) {
	authGroup := group.Group("/auth")
	{
		authGroup.POST("/register", ctrl.Register)
		authGroup.POST("/login", ctrl.Login)
	}
}

// RegisterAuthedRoutes 注册需要认证的认证路由。
func (ctrl *AuthController) RegisterAuthedRoutes(group *gin.RouterGroup) {
	authGroup := group.Group("/auth")
	{
		authGroup.GET("/me", ctrl.Me)
	}
}
