package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/image_service/middleware"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/myErrors"
	"github.com/Xushengqwer/image_service/response"
	"github.com/Xushengqwer/image_service/service"
)

// ImageController 定义图片控制器的结构体
type ImageController struct {
	imageService service.ImageService
	editService  service.EditService
}

// NewImageController 构造函数，用于创建 ImageController 实例
func NewImageController(imageService service.ImageService, editService service.EditService) *ImageController {
	return &ImageController{
		imageService: imageService,
		editService:  editService,
	}
}

// requireUserID 取出认证用户，取不到时直接写 401。
func requireUserID(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息")
	}
	return userID, ok
}

// parseIDParam 解析路径里的数字 ID，非法时写 400。
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 "+name+" 参数")
		return 0, false
	}
	return id, true
}

// respondServiceError 把业务层错误映射为统一的 HTTP 响应。
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, myErrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientNotFound, "资源不存在")
	case errors.Is(err, myErrors.ErrInvalidInput):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	case errors.Is(err, myErrors.ErrConflict):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientConflict, err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallbackMsg)
	}
}

// ListImages 获取图片列表
// @Summary      获取我的图片列表
// @Description  分页列举当前用户未删除的图片，按上传时间倒序，可按文件名模糊搜索。
// @Tags         images (图片)
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码 (从1开始)" default(1)
// @Param        limit query int false "每页数量" default(20) maximum(100)
// @Param        search query string false "文件名模糊搜索关键词" maxLength(255)
// @Success      200 {object} vo.ImagePageResponseWrapper "成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images [get]
func (ctrl *ImageController) ListImages(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ListImagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	page, err := ctrl.imageService.ListImages(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "获取图片列表失败")
		return
	}
	response.RespondSuccess(c, page, "获取成功")
}

// UploadImage 上传图片
// @Summary      上传图片
// @Description  multipart 单文件上传，服务端生成缩略图、提取 EXIF 并同步打标。
// @Tags         images (图片)
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "图片文件"
// @Success      201 {object} vo.UploadResultResponseWrapper "上传成功"
// @Failure      400 {object} vo.BaseResponseWrapper "文件缺失、类型不支持或超过大小限制"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/upload [post]
func (ctrl *ImageController) UploadImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "没有选择文件")
		return
	}

	result, err := ctrl.imageService.UploadImage(c.Request.Context(), userID, fileHeader)
	if err != nil {
		respondServiceError(c, err, "图片上传失败")
		return
	}
	response.RespondCreated(c, result, "上传成功")
}

// DeleteImage 删除图片
// @Summary      删除图片
// @Description  软删除当前用户的一张图片，磁盘文件保留。
// @Tags         images (图片)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "图片ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的图片ID"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/{id} [delete]
func (ctrl *ImageController) DeleteImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.imageService.DeleteImage(c.Request.Context(), userID, imageID); err != nil {
		respondServiceError(c, err, "删除图片失败")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// RenameImage 重命名图片
// @Summary      重命名图片
// @Description  修改图片的展示文件名，同一用户下不可与其他未删除图片重名。
// @Tags         images (图片)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "图片ID"
// @Param        request body dto.RenameImageRequest true "新文件名"
// @Success      200 {object} vo.ImageResponseWrapper "重命名成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "文件名已被占用"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/{id}/rename [put]
func (ctrl *ImageController) RenameImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RenameImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	imageVO, err := ctrl.imageService.RenameImage(c.Request.Context(), userID, imageID, req.Filename)
	if err != nil {
		respondServiceError(c, err, "重命名图片失败")
		return
	}
	response.RespondSuccess(c, imageVO, "重命名成功")
}

// EditImage 编辑图片
// @Summary      编辑图片
// @Description  按编辑描述符从原始资产产出新的编辑文件，连续编辑不叠加。
// @Tags         images (图片)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "图片ID"
// @Param        request body dto.EditImageRequest true "编辑描述符"
// @Success      200 {object} vo.EditResultResponseWrapper "编辑成功"
// @Failure      400 {object} vo.BaseResponseWrapper "描述符参数越界"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/{id}/edit [post]
func (ctrl *ImageController) EditImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.EditImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	result, err := ctrl.editService.EditImage(c.Request.Context(), userID, imageID, &req)
	if err != nil {
		respondServiceError(c, err, "编辑图片失败")
		return
	}
	response.RespondSuccess(c, result, "编辑成功")
}

// RevertImage 还原图片
// @Summary      还原图片
// @Description  清除编辑产物与描述符，图片回到原始状态；未编辑过时为幂等操作。
// @Tags         images (图片)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "图片ID"
// @Success      200 {object} vo.ImageResponseWrapper "还原成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的图片ID"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/{id}/revert [post]
func (ctrl *ImageController) RevertImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	imageVO, err := ctrl.editService.RevertImage(c.Request.Context(), userID, imageID)
	if err != nil {
		respondServiceError(c, err, "还原图片失败")
		return
	}
	response.RespondSuccess(c, imageVO, "还原成功")
}

// AnalyzeImage 重新分析图片
// @Summary      重新分析图片
// @Description  手动触发一次视觉打标，返回分析出的标签与本次新挂载的部分。
// @Tags         images (图片)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "图片ID"
// @Success      200 {object} vo.AnalyzeResultResponseWrapper "分析成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的图片ID"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/{id}/analyze [post]
func (ctrl *ImageController) AnalyzeImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := ctrl.imageService.AnalyzeImage(c.Request.Context(), userID, imageID)
	if err != nil {
		respondServiceError(c, err, "分析图片失败")
		return
	}
	response.RespondSuccess(c, result, "分析成功")
}

// GetImageExif 获取图片 EXIF
// @Summary      获取图片 EXIF
// @Description  返回图片的 EXIF 视图，缺失的字段为 null。
// @Tags         images (图片)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "图片ID"
// @Success      200 {object} vo.ExifResponseWrapper "成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的图片ID"
// @Failure      401 {object} vo.BaseResponseWrapper "未认证"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/images/{id}/exif [get]
func (ctrl *ImageController) GetImageExif(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exifVO, err := ctrl.imageService.GetImageExif(c.Request.Context(), userID, imageID)
	if err != nil {
		respondServiceError(c, err, "获取 EXIF 失败")
		return
	}
	response.RespondSuccess(c, exifVO, "获取成功")
}

// RegisterRoutes 注册图片相关路由（均需认证）。
func (ctrl *ImageController) RegisterRoutes(group *gin.RouterGroup) {
	imagesGroup := group.Group("/images")
	{
		imagesGroup.GET("", ctrl.ListImages)
		imagesGroup.POST("/upload", ctrl.UploadImage)
		imagesGroup.DELETE("/:id", ctrl.DeleteImage)
		imagesGroup.PUT("/:id/rename", ctrl.RenameImage)
		imagesGroup.POST("/:id/edit", ctrl.EditImage)
		imagesGroup.POST("/:id/revert", ctrl.RevertImage)
		imagesGroup.POST("/:id/analyze", ctrl.AnalyzeImage)
		imagesGroup.GET("/:id/exif", ctrl.GetImageExif)
	}
}
