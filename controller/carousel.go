package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/response"
	"github.com/Xushengqwer/image_service/service"
)

// CarouselController 定义轮播配置控制器的结构体
type CarouselController struct {
	carouselService service.CarouselService
}

// NewCarouselController 构造函数，用于创建 CarouselController 实例
func NewCarouselController(carouselService service.CarouselService) *CarouselController {
	return &CarouselController{carouselService: carouselService}
}

// ListConfigs 获取轮播配置列表
// @Summary      获取我的轮播配置列表
// @Description  列出当前用户的全部轮播配置，图片列表已按存储顺序解析。
// @Tags         carousel (轮播)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.CarouselListResponseWrapper "成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/carousel [get]
func (ctrl *CarouselController) ListConfigs(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := ctrl.carouselService.ListConfigs(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取轮播配置失败")
		return
	}
	response.RespondSuccess(c, list, "获取成功")
}

// GetConfig 获取单个轮播配置
// @Summary      获取单个轮播配置
// @Tags         carousel (轮播)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "配置ID"
// @Success      200 {object} vo.CarouselConfigResponseWrapper "成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的配置ID"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "配置不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/carousel/{id} [get]
func (ctrl *CarouselController) GetConfig(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	configID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	config, err := ctrl.carouselService.GetConfig(c.Request.Context(), userID, configID)
	if err != nil {
		respondServiceError(c, err, "获取轮播配置失败")
		return
	}
	response.RespondSuccess(c, config, "获取成功")
}

// CreateConfig 创建轮播配置
// @Summary      创建轮播配置
// @Description  保存名称、有序图片 ID 列表与播放间隔（最小 1 秒）。
// @Tags         carousel (轮播)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CarouselConfigRequest true "轮播配置"
// @Success      201 {object} vo.CarouselConfigResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/carousel [post]
func (ctrl *CarouselController) CreateConfig(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CarouselConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	config, err := ctrl.carouselService.CreateConfig(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "创建轮播配置失败")
		return
	}
	response.RespondCreated(c, config, "创建成功")
}

// UpdateConfig 更新轮播配置
// @Summary      更新轮播配置
// @Tags         carousel (轮播)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "配置ID"
// @Param        request body dto.CarouselConfigRequest true "轮播配置"
// @Success      200 {object} vo.CarouselConfigResponseWrapper "更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "配置不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/carousel/{id} [put]
func (ctrl *CarouselController) UpdateConfig(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	configID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CarouselConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	config, err := ctrl.carouselService.UpdateConfig(c.Request.Context(), userID, configID, &req)
	if err != nil {
		respondServiceError(c, err, "更新轮播配置失败")
		return
	}
	response.RespondSuccess(c, config, "更新成功")
}

// DeleteConfig 删除轮播配置
// @Summary      删除轮播配置
// @Tags         carousel (轮播)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "配置ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的配置ID"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "配置不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/carousel/{id} [delete]
func (ctrl *CarouselController) DeleteConfig(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	configID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.carouselService.DeleteConfig(c.Request.Context(), userID, configID); err != nil {
		respondServiceError(c, err, "删除轮播配置失败")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// RegisterRoutes 注册轮播相关路由（均需认证）。
func (ctrl *CarouselController) RegisterRoutes(group *gin.RouterGroup) {
	carouselGroup := group.Group("/carousel")
	{
		carouselGroup.GET("", ctrl.ListConfigs)
		carouselGroup.POST("", ctrl.CreateConfig)
		carouselGroup.GET("/:id", ctrl.GetConfig)
		carouselGroup.PUT("/:id", ctrl.UpdateConfig)
		carouselGroup.DELETE("/:id", ctrl.DeleteConfig)
	}
}
