package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/response"
	"github.com/Xushengqwer/image_service/service"
)

// SearchController 定义 AI 搜图控制器的结构体
type SearchController struct {
	searchService service.SearchService
}

// NewSearchController 构造函数，用于创建 SearchController 实例
func NewSearchController(searchService service.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

// SearchImages AI 搜图
// @Summary      自然语言搜图
// @Description  把自然语言描述扩展为关键词后，在文件名与标签上做模糊检索；AI 不可用时退化为原文检索。
// @Tags         search (搜索)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AISearchRequest true "搜索请求"
// @Success      200 {object} vo.SearchResultResponseWrapper "成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/ai-image-search [post]
func (ctrl *SearchController) SearchImages(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AISearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "查询内容不能为空")
		return
	}

	result, err := ctrl.searchService.SearchImages(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "搜索失败")
		return
	}
	response.RespondSuccess(c, result, "搜索成功")
}

// RegisterRoutes 注册搜索路由（需认证）。
func (ctrl *SearchController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/ai-image-search", ctrl.SearchImages)
}
