package service

// 服务层测试共享的内存 SQLite 与日志辅助。

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/models/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Image{},
		&entities.Tag{},
		&entities.ImageTag{},
		&entities.CarouselConfig{},
	))
	return db
}

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(appConfig.ZapConfig{Level: "error", Encoding: "console"})
	require.NoError(t, err)
	return logger
}

func seedImage(t *testing.T, db *gorm.DB, userID uint64, filename string) *entities.Image {
	t.Helper()
	img := &entities.Image{
		UserID:        userID,
		Filename:      filename,
		OriginalPath:  "/uploads/originals/" + filename,
		ThumbnailPath: "/uploads/thumbnails/thumb-" + filename,
		FileSize:      1024,
		Width:         1920,
		Height:        1080,
		MimeType:      "image/jpeg",
		UploadTime:    time.Now(),
	}
	require.NoError(t, db.Create(img).Error)
	return img
}
