package vo

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/models/entities"
)

// ImageVO 图片列表/详情的响应结构。
// - 所有 URL 只基于文件 basename 拼接，磁盘绝对路径不出服务。
// - DisplayURL 优先指向编辑产物，没有编辑时退回原图。
type ImageVO struct {
	ID             uint64          `json:"id"`
	Filename       string          `json:"filename"`
	OriginalURL    string          `json:"originalUrl"`
	EditedURL      *string         `json:"editedUrl"`
	DisplayURL     string          `json:"displayUrl"`
	ThumbnailURL   string          `json:"thumbnailUrl"`
	FileSize       int64           `json:"fileSize"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	MimeType       string          `json:"mimeType"`
	CameraModel    *string         `json:"cameraModel"`
	TakenTime      *time.Time      `json:"takenTime"`
	UploadTime     time.Time       `json:"uploadTime"`
	IsEdited       bool            `json:"isEdited"`
	EditOperations json.RawMessage `json:"editOperations"`
	Tags           []*TagVO        `json:"tags"`
}

// PaginationVO 分页信息，pages = ceil(total/limit)。
type PaginationVO struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// NewPaginationVO 计算分页摘要。
func NewPaginationVO(total int64, page, limit int) PaginationVO {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationVO{
		Total: total,
		Page:  page,
		Pages: pages,
		Limit: limit,
	}
}

// ImagePageVO 分页的图片列表。
type ImagePageVO struct {
	Images     []*ImageVO   `json:"images"`
	Pagination PaginationVO `json:"pagination"`
}

// UploadResultVO 上传成功的响应载荷。
type UploadResultVO struct {
	ID           uint64   `json:"id"`
	Filename     string   `json:"filename"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Tags         []string `json:"tags"` // 本次生成并挂载的标签名
}

// EditResultVO 编辑成功的响应载荷。
type EditResultVO struct {
	EditedURL  string          `json:"editedUrl"`
	Operations json.RawMessage `json:"operations"`
}

// AnalyzeResultVO 手动触发视觉分析的响应载荷。
type AnalyzeResultVO struct {
	Tags      []string `json:"tags"`      // 本次分析得到的全部标签
	AddedTags []string `json:"addedTags"` // 其中新挂载到图片上的部分
	Total     int      `json:"total"`     // len(AddedTags)
}

// ExifVO 图片的 EXIF 视图，字段为空时输出 null。
type ExifVO struct {
	CameraModel  *string    `json:"camera_model"`
	TakenTime    *time.Time `json:"taken_time"`
	ExposureTime *string    `json:"exposure_time"`
	FNumber      *float64   `json:"f_number"`
	ISOSpeed     *int64     `json:"iso_speed"`
	FocalLength  *float64   `json:"focal_length"`
	LensModel    *string    `json:"lens_model"`
	GPSLatitude  *float64   `json:"gps_latitude"`
	GPSLongitude *float64   `json:"gps_longitude"`
}

// OriginalURLOf 拼接原图（或编辑产物，同目录）的访问 URL。
func OriginalURLOf(diskPath string) string {
	return "/uploads/" + constant.UploadSubdirOriginals + "/" + filepath.Base(diskPath)
}

// ThumbnailURLOf 拼接缩略图的访问 URL。
func ThumbnailURLOf(diskPath string) string {
	return "/uploads/" + constant.UploadSubdirThumbnails + "/" + filepath.Base(diskPath)
}

// DisplayURLOf 编辑产物优先的展示 URL。
func DisplayURLOf(img *entities.Image) string {
	if img.EditedPath.Valid {
		return OriginalURLOf(img.EditedPath.String)
	}
	return OriginalURLOf(img.OriginalPath)
}

// MapImageToVO 实体转响应视图。
func MapImageToVO(img *entities.Image) *ImageVO {
	v := &ImageVO{
		ID:           img.ID,
		Filename:     img.Filename,
		OriginalURL:  OriginalURLOf(img.OriginalPath),
		DisplayURL:   DisplayURLOf(img),
		ThumbnailURL: ThumbnailURLOf(img.ThumbnailPath),
		FileSize:     img.FileSize,
		Width:        img.Width,
		Height:       img.Height,
		MimeType:     img.MimeType,
		UploadTime:   img.UploadTime,
		IsEdited:     img.EditedPath.Valid,
		Tags:         MapTagsToVO(img.Tags),
	}
	if img.EditedPath.Valid {
		u := OriginalURLOf(img.EditedPath.String)
		v.EditedURL = &u
	}
	if img.CameraModel.Valid {
		v.CameraModel = &img.CameraModel.String
	}
	if img.TakenTime.Valid {
		v.TakenTime = &img.TakenTime.Time
	}
	if len(img.EditOperations) > 0 {
		v.EditOperations = json.RawMessage(img.EditOperations)
	}
	return v
}

// MapImagesToVO 批量转换，空入参返回空切片而不是 nil，便于前端处理。
func MapImagesToVO(images []*entities.Image) []*ImageVO {
	result := make([]*ImageVO, 0, len(images))
	for _, img := range images {
		if img == nil {
			continue
		}
		result = append(result, MapImageToVO(img))
	}
	return result
}

// MapImageToExifVO 抽取 EXIF 字段视图。
func MapImageToExifVO(img *entities.Image) *ExifVO {
	v := &ExifVO{}
	if img.CameraModel.Valid {
		v.CameraModel = &img.CameraModel.String
	}
	if img.TakenTime.Valid {
		v.TakenTime = &img.TakenTime.Time
	}
	if img.ExposureTime.Valid {
		v.ExposureTime = &img.ExposureTime.String
	}
	if img.FNumber.Valid {
		v.FNumber = &img.FNumber.Float64
	}
	if img.ISOSpeed.Valid {
		v.ISOSpeed = &img.ISOSpeed.Int64
	}
	if img.FocalLength.Valid {
		v.FocalLength = &img.FocalLength.Float64
	}
	if img.LensModel.Valid {
		v.LensModel = &img.LensModel.String
	}
	if img.GPSLatitude.Valid {
		v.GPSLatitude = &img.GPSLatitude.Float64
	}
	if img.GPSLongitude.Valid {
		v.GPSLongitude = &img.GPSLongitude.Float64
	}
	return v
}
