package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/myErrors"
)

func seedCarouselConfig(t *testing.T, repo CarouselRepository, userID uint64, name string) *entities.CarouselConfig {
	t.Helper()
	cfg := &entities.CarouselConfig{
		UserID:          userID,
		Name:            name,
		Images:          datatypes.JSON(`[1,2,3]`),
		IntervalSeconds: 5,
	}
	require.NoError(t, repo.CreateConfig(context.Background(), cfg))
	return cfg
}

func TestCarouselRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewCarouselRepository(db, newTestLogger(t))
	ctx := context.Background()

	cfg := seedCarouselConfig(t, repo, 1, "首页轮播")

	t.Run("按所有者读取", func(t *testing.T) {
		got, err := repo.GetOwnedConfig(ctx, cfg.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "首页轮播", got.Name)
		assert.JSONEq(t, `[1,2,3]`, string(got.Images))
	})

	t.Run("他人读取报不存在", func(t *testing.T) {
		_, err := repo.GetOwnedConfig(ctx, cfg.ID, 2)
		assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
	})

	t.Run("整体更新", func(t *testing.T) {
		cfg.Name = "改名后的轮播"
		cfg.Images = datatypes.JSON(`[3,1]`)
		cfg.IntervalSeconds = 10
		require.NoError(t, repo.UpdateConfig(ctx, cfg))

		got, err := repo.GetOwnedConfig(ctx, cfg.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "改名后的轮播", got.Name)
		assert.JSONEq(t, `[3,1]`, string(got.Images))
		assert.Equal(t, 10, got.IntervalSeconds)
	})

	t.Run("更新他人配置报不存在", func(t *testing.T) {
		other := *cfg
		other.UserID = 2
		err := repo.UpdateConfig(ctx, &other)
		assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
	})

	t.Run("删除后读取不到", func(t *testing.T) {
		require.NoError(t, repo.DeleteConfig(ctx, cfg.ID, 1))
		_, err := repo.GetOwnedConfig(ctx, cfg.ID, 1)
		assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
	})
}

func TestCarouselRepository_ListConfigsByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCarouselRepository(db, newTestLogger(t))
	ctx := context.Background()

	seedCarouselConfig(t, repo, 1, "第一个")
	seedCarouselConfig(t, repo, 1, "第二个")
	seedCarouselConfig(t, repo, 2, "别人的")

	configs, err := repo.ListConfigsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	for _, c := range configs {
		assert.EqualValues(t, 1, c.UserID)
	}
}
