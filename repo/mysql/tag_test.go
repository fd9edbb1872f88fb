package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/image_service/models/enums"
	"github.com/Xushengqwer/image_service/myErrors"
)

func TestTagRepository_FindOrCreateByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db, newTestLogger(t))
	ctx := context.Background()

	t.Run("不存在时创建", func(t *testing.T) {
		tag, err := repo.FindOrCreateByName(ctx, db, "风景", enums.TagTypeAI)
		require.NoError(t, err)
		assert.NotZero(t, tag.ID)
		assert.Equal(t, enums.TagTypeAI, tag.Type)
	})

	t.Run("已存在时返回原有记录且不改类型", func(t *testing.T) {
		first, err := repo.FindOrCreateByName(ctx, db, "夜景", enums.TagTypeRule)
		require.NoError(t, err)

		second, err := repo.FindOrCreateByName(ctx, db, "夜景", enums.TagTypeCustom)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, enums.TagTypeRule, second.Type)
	})
}

func TestTagRepository_AttachDetach(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db, newTestLogger(t))
	ctx := context.Background()

	img := seedImage(t, db, 1, "tagged.jpg", time.Now())
	tag, err := repo.FindOrCreateByName(ctx, db, "宠物", enums.TagTypeCustom)
	require.NoError(t, err)

	t.Run("首次挂载返回 true", func(t *testing.T) {
		added, err := repo.AttachTagToImage(ctx, db, img.ID, tag.ID)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("重复挂载幂等返回 false", func(t *testing.T) {
		added, err := repo.AttachTagToImage(ctx, db, img.ID, tag.ID)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("摘除成功", func(t *testing.T) {
		require.NoError(t, repo.DetachTagFromImage(ctx, img.ID, tag.ID))
	})

	t.Run("摘除不存在的关联报不存在", func(t *testing.T) {
		err := repo.DetachTagFromImage(ctx, img.ID, tag.ID)
		assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
	})
}

func TestTagRepository_ListAllTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db, newTestLogger(t))
	ctx := context.Background()

	for _, seed := range []struct {
		name    string
		tagType enums.TagType
	}{
		{"横图", enums.TagTypeRule},
		{"风景", enums.TagTypeAI},
		{"山脉", enums.TagTypeAI},
		{"我的收藏", enums.TagTypeCustom},
	} {
		_, err := repo.FindOrCreateByName(ctx, db, seed.name, seed.tagType)
		require.NoError(t, err)
	}

	tags, err := repo.ListAllTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 4)

	// 先按类型再按名称排序
	assert.Equal(t, enums.TagTypeAI, tags[0].Type)
	assert.Equal(t, enums.TagTypeAI, tags[1].Type)
	assert.Equal(t, enums.TagTypeCustom, tags[2].Type)
	assert.Equal(t, enums.TagTypeRule, tags[3].Type)
}
