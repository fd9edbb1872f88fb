package vo

import (
	"time"

	"github.com/Xushengqwer/image_service/models/entities"
)

// SearchImageVO 搜索命中的图片摘要。
type SearchImageVO struct {
	ID           uint64    `json:"id"`
	Filename     string    `json:"filename"`
	Tags         []string  `json:"tags"` // 标签名列表
	DisplayURL   string    `json:"displayUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	UploadTime   time.Time `json:"uploadTime"`
}

// SearchResultVO 自然语言搜图的响应载荷，回显查询串与提取出的关键词。
type SearchResultVO struct {
	Query      string           `json:"query"`
	Keywords   []string         `json:"keywords"`
	Images     []*SearchImageVO `json:"images"`
	Pagination PaginationVO     `json:"pagination"`
}

// MapImageToSearchVO 搜索摘要视图转换。
func MapImageToSearchVO(img *entities.Image) *SearchImageVO {
	names := make([]string, 0, len(img.Tags))
	for _, tag := range img.Tags {
		if tag != nil && tag.Name != "" {
			names = append(names, tag.Name)
		}
	}
	return &SearchImageVO{
		ID:           img.ID,
		Filename:     img.Filename,
		Tags:         names,
		DisplayURL:   DisplayURLOf(img),
		ThumbnailURL: ThumbnailURLOf(img.ThumbnailPath),
		UploadTime:   img.UploadTime,
	}
}
