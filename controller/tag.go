package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/response"
	"github.com/Xushengqwer/image_service/service"
)

// TagController 定义标签控制器的结构体
type TagController struct {
	tagService service.TagService
}

// NewTagController 构造函数，用于创建 TagController 实例
func NewTagController(tagService service.TagService) *TagController {
	return &TagController{tagService: tagService}
}

// AttachTag 给图片挂载标签
// @Summary      给图片挂载标签
// @Description  按名称给图片手动挂载标签，标签不存在则创建（类型 custom），重复挂载幂等。
// @Tags         tags (标签)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "图片ID"
// @Param        request body dto.AttachTagRequest true "标签名"
// @Success      200 {object} vo.TagResponseWrapper "挂载成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/{id}/tags [post]
func (ctrl *TagController) AttachTag(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AttachTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	tagName := strings.TrimSpace(req.TagName)
	if tagName == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "标签名不能为空")
		return
	}

	tagVO, err := ctrl.tagService.AttachTag(c.Request.Context(), userID, imageID, tagName)
	if err != nil {
		respondServiceError(c, err, "挂载标签失败")
		return
	}
	response.RespondSuccess(c, tagVO, "标签添加成功")
}

// DetachTag 移除图片上的标签
// @Summary      移除图片上的标签
// @Description  删除图片与标签的关联，标签本身保留。
// @Tags         tags (标签)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "图片ID"
// @Param        tagId path uint64 true "标签ID"
// @Success      200 {object} vo.BaseResponseWrapper "移除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的路径参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "图片或关联不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/{id}/tags/{tagId} [delete]
func (ctrl *TagController) DetachTag(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tagId")
	if !ok {
		return
	}

	if err := ctrl.tagService.DetachTag(c.Request.Context(), userID, imageID, tagID); err != nil {
		respondServiceError(c, err, "移除标签失败")
		return
	}
	response.RespondSuccess[any](c, nil, "标签移除成功")
}

// ListTags 获取所有标签
// @Summary      获取所有标签
// @Description  列出系统中的全部标签，按类型、名称排序。
// @Tags         tags (标签)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.TagListResponseWrapper "成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/tags [get]
func (ctrl *TagController) ListTags(c *gin.Context) {
	tags, err := ctrl.tagService.ListTags(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取标签失败")
		return
	}
	response.RespondSuccess(c, tags, "获取成功")
}

// RegisterRoutes 注册标签相关路由（均需认证）。
func (ctrl *TagController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/tags", ctrl.ListTags)

	imagesGroup := group.Group("/images")
	{
		imagesGroup.POST("/:id/tags", ctrl.AttachTag)
		imagesGroup.DELETE("/:id/tags/:tagId", ctrl.DetachTag)
	}
}
