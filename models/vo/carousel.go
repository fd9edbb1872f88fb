package vo

import (
	"time"

	"github.com/Xushengqwer/image_service/models/entities"
)

// CarouselImageVO 轮播项中解析出的图片信息。
type CarouselImageVO struct {
	ID           uint64 `json:"id"`
	Filename     string `json:"filename"`
	DisplayURL   string `json:"displayUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	IsEdited     bool   `json:"isEdited"`
}

// CarouselConfigVO 轮播配置视图。
// - Images 已按存储顺序解析为图片信息，软删除/不存在的引用被静默剔除。
type CarouselConfigVO struct {
	ID              uint64             `json:"id"`
	Name            string             `json:"name"`
	Images          []*CarouselImageVO `json:"images"`
	IntervalSeconds int                `json:"intervalSeconds"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// CarouselListVO 用户的全部轮播配置。
type CarouselListVO struct {
	Configs []*CarouselConfigVO `json:"configs"`
}

// MapImageToCarouselVO 轮播项视图转换。
func MapImageToCarouselVO(img *entities.Image) *CarouselImageVO {
	return &CarouselImageVO{
		ID:           img.ID,
		Filename:     img.Filename,
		DisplayURL:   DisplayURLOf(img),
		ThumbnailURL: ThumbnailURLOf(img.ThumbnailPath),
		IsEdited:     img.EditedPath.Valid,
	}
}
