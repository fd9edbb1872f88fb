package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/models/enums"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

// fakeKeywordClient 是 SearchKeywordClient 的测试替身。
type fakeKeywordClient struct {
	keywords []string
	err      error
	calls    int
}

func (f *fakeKeywordClient) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.keywords, nil
}

func TestSearchService_SearchImages(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger(t)
	imageRepo := mysql.NewImageRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	ctx := context.Background()

	beach := seedImage(t, db, 1, "beach-trip.jpg")
	seedImage(t, db, 1, "office-doc.jpg")

	tag, err := tagRepo.FindOrCreateByName(ctx, db, "海滩", enums.TagTypeAI)
	require.NoError(t, err)
	_, err = tagRepo.AttachTagToImage(ctx, db, beach.ID, tag.ID)
	require.NoError(t, err)

	t.Run("模型关键词命中标签", func(t *testing.T) {
		keyword := &fakeKeywordClient{keywords: []string{"海滩", "日落"}}
		svc := NewSearchService(imageRepo, keyword, nil, logger)

		result, err := svc.SearchImages(ctx, 1, &dto.AISearchRequest{Query: "去年在海边拍的照片"})
		require.NoError(t, err)
		assert.Equal(t, []string{"海滩", "日落"}, result.Keywords)
		require.Len(t, result.Images, 1)
		assert.Equal(t, beach.ID, result.Images[0].ID)
		assert.Contains(t, result.Images[0].Tags, "海滩")
	})

	t.Run("模型失败时降级为查询原文检索", func(t *testing.T) {
		keyword := &fakeKeywordClient{err: fmt.Errorf("model unavailable")}
		svc := NewSearchService(imageRepo, keyword, nil, logger)

		result, err := svc.SearchImages(ctx, 1, &dto.AISearchRequest{Query: "beach"})
		require.NoError(t, err)
		assert.Equal(t, []string{"beach"}, result.Keywords)
		require.Len(t, result.Images, 1)
		assert.Equal(t, beach.ID, result.Images[0].ID)
	})

	t.Run("回显查询原文并给出分页", func(t *testing.T) {
		keyword := &fakeKeywordClient{keywords: []string{"不存在的词"}}
		svc := NewSearchService(imageRepo, keyword, nil, logger)

		result, err := svc.SearchImages(ctx, 1, &dto.AISearchRequest{Query: "  什么都搜不到  "})
		require.NoError(t, err)
		assert.Equal(t, "什么都搜不到", result.Query)
		assert.Empty(t, result.Images)
		assert.EqualValues(t, 0, result.Pagination.Total)
	})
}
