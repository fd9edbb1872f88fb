package mysql

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/image_service/models/enums"
	"github.com/Xushengqwer/image_service/myErrors"
)

func TestImageRepository_GetOwnedImage(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db, newTestLogger(t))
	ctx := context.Background()

	img := seedImage(t, db, 1, "photo.jpg", time.Now())

	t.Run("本人可以取到", func(t *testing.T) {
		got, err := repo.GetOwnedImage(ctx, img.ID, 1, false)
		require.NoError(t, err)
		assert.Equal(t, "photo.jpg", got.Filename)
	})

	t.Run("他人取不到", func(t *testing.T) {
		_, err := repo.GetOwnedImage(ctx, img.ID, 2, false)
		assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
	})

	t.Run("软删除后取不到", func(t *testing.T) {
		require.NoError(t, repo.SoftDeleteImage(ctx, img.ID, 1))
		_, err := repo.GetOwnedImage(ctx, img.ID, 1, false)
		assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
	})
}

func TestImageRepository_ListImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db, newTestLogger(t))
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	for i := 0; i < 25; i++ {
		seedImage(t, db, 1, fmt.Sprintf("photo-%02d.jpg", i), base.Add(time.Duration(i)*time.Minute))
	}
	seedImage(t, db, 2, "other-user.jpg", base)

	t.Run("分页与总数", func(t *testing.T) {
		images, total, err := repo.ListImages(ctx, 1, "", 0, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 25, total)
		assert.Len(t, images, 20)

		rest, _, err := repo.ListImages(ctx, 1, "", 20, 20)
		require.NoError(t, err)
		assert.Len(t, rest, 5)
	})

	t.Run("按上传时间倒序", func(t *testing.T) {
		images, _, err := repo.ListImages(ctx, 1, "", 0, 3)
		require.NoError(t, err)
		assert.Equal(t, "photo-24.jpg", images[0].Filename)
		assert.Equal(t, "photo-23.jpg", images[1].Filename)
	})

	t.Run("文件名模糊搜索", func(t *testing.T) {
		images, total, err := repo.ListImages(ctx, 1, "photo-1", 0, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 10, total)
		assert.Len(t, images, 10)
	})

	t.Run("看不到其他用户的图片", func(t *testing.T) {
		_, total, err := repo.ListImages(ctx, 2, "", 0, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})
}

func TestImageRepository_SoftDeleteImage(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db, newTestLogger(t))
	ctx := context.Background()

	img := seedImage(t, db, 1, "deleteme.jpg", time.Now())

	t.Run("他人删除报不存在", func(t *testing.T) {
		err := repo.SoftDeleteImage(ctx, img.ID, 2)
		assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
	})

	t.Run("删除后从列表消失", func(t *testing.T) {
		require.NoError(t, repo.SoftDeleteImage(ctx, img.ID, 1))
		_, total, err := repo.ListImages(ctx, 1, "", 0, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
	})

	t.Run("重复删除报不存在", func(t *testing.T) {
		err := repo.SoftDeleteImage(ctx, img.ID, 1)
		assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
	})
}

func TestImageRepository_EditResultRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db, newTestLogger(t))
	ctx := context.Background()

	img := seedImage(t, db, 1, "edit.jpg", time.Now())
	ops := datatypes.JSON(`{"rotate":90}`)

	require.NoError(t, repo.UpdateEditResult(ctx, img.ID, "/uploads/originals/edited-x.jpg", ops))

	got, err := repo.GetOwnedImage(ctx, img.ID, 1, false)
	require.NoError(t, err)
	assert.True(t, got.EditedPath.Valid)
	assert.Equal(t, "/uploads/originals/edited-x.jpg", got.EditedPath.String)
	assert.JSONEq(t, `{"rotate":90}`, string(got.EditOperations))

	require.NoError(t, repo.ClearEditResult(ctx, img.ID))

	got, err = repo.GetOwnedImage(ctx, img.ID, 1, false)
	require.NoError(t, err)
	assert.False(t, got.EditedPath.Valid)
	assert.Empty(t, got.EditOperations)
}

func TestImageRepository_FilenameExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db, newTestLogger(t))
	ctx := context.Background()

	a := seedImage(t, db, 1, "a.jpg", time.Now())
	seedImage(t, db, 1, "b.jpg", time.Now())

	exists, err := repo.FilenameExists(ctx, 1, "b.jpg", a.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// 排除自身
	exists, err = repo.FilenameExists(ctx, 1, "a.jpg", a.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// 其他用户不参与
	exists, err = repo.FilenameExists(ctx, 2, "b.jpg", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestImageRepository_SearchByKeywords(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger(t)
	repo := NewImageRepository(db, logger)
	tagRepo := NewTagRepository(db, logger)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	sunset := seedImage(t, db, 1, "sunset.jpg", base.Add(time.Hour))
	cat := seedImage(t, db, 1, "cat.jpg", base)
	seedImage(t, db, 1, "random.jpg", base)

	tag, err := tagRepo.FindOrCreateByName(ctx, db, "海滩", enums.TagTypeAI)
	require.NoError(t, err)
	_, err = tagRepo.AttachTagToImage(ctx, db, cat.ID, tag.ID)
	require.NoError(t, err)

	t.Run("命中文件名", func(t *testing.T) {
		images, total, err := repo.SearchByKeywords(ctx, 1, []string{"sunset"}, 0, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, images, 1)
		assert.Equal(t, sunset.ID, images[0].ID)
	})

	t.Run("命中标签名", func(t *testing.T) {
		images, total, err := repo.SearchByKeywords(ctx, 1, []string{"海滩"}, 0, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, images, 1)
		assert.Equal(t, cat.ID, images[0].ID)
	})

	t.Run("关键词之间为或语义且不重复计数", func(t *testing.T) {
		images, total, err := repo.SearchByKeywords(ctx, 1, []string{"sunset", "海滩", "cat"}, 0, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, images, 2)
		// 上传时间倒序
		assert.Equal(t, sunset.ID, images[0].ID)
	})

	t.Run("没有命中返回空", func(t *testing.T) {
		images, total, err := repo.SearchByKeywords(ctx, 1, []string{"不存在的词"}, 0, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Empty(t, images)
	})
}

func TestImageRepository_ListReferencedPaths(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db, newTestLogger(t))
	ctx := context.Background()

	img := seedImage(t, db, 1, "ref.jpg", time.Now())
	require.NoError(t, repo.UpdateEditResult(ctx, img.ID, "/uploads/originals/edited-ref.jpg", datatypes.JSON(`{}`)))

	paths, err := repo.ListReferencedPaths(ctx)
	require.NoError(t, err)
	assert.Contains(t, paths, img.OriginalPath)
	assert.Contains(t, paths, img.ThumbnailPath)
	assert.Contains(t, paths, "/uploads/originals/edited-ref.jpg")
}
