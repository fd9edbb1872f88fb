package vo

import (
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/models/enums"
)

// TagVO 标签视图。
type TagVO struct {
	ID   uint64        `json:"id"`
	Name string        `json:"name"`
	Type enums.TagType `json:"type"`
}

// TagListVO 全量标签列表。
type TagListVO struct {
	Tags []*TagVO `json:"tags"`
}

// MapTagToVO 实体转视图。
func MapTagToVO(tag *entities.Tag) *TagVO {
	return &TagVO{
		ID:   tag.ID,
		Name: tag.Name,
		Type: tag.Type,
	}
}

// MapTagsToVO 批量转换，空入参返回空切片。
func MapTagsToVO(tags []*entities.Tag) []*TagVO {
	result := make([]*TagVO, 0, len(tags))
	for _, tag := range tags {
		if tag == nil {
			continue
		}
		result = append(result, MapTagToVO(tag))
	}
	return result
}
