package tasks

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

func newSweepFixture(t *testing.T) (*gorm.DB, *dependencies.UploadStorage, *OrphanCleanupTask) {
	t.Helper()

	logger, err := core.NewZapLogger(appConfig.ZapConfig{Level: "error", Encoding: "console"})
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Image{}, &entities.Tag{}, &entities.ImageTag{}))

	storage, err := dependencies.InitUploadStorage(t.TempDir(), logger)
	require.NoError(t, err)

	task := &OrphanCleanupTask{
		imageRepo: mysql.NewImageRepository(db, logger),
		storage:   storage,
		logger:    logger,
	}
	return db, storage, task
}

// writeAgedFile 落一个修改时间在清扫阈值之前的文件。
func writeAgedFile(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, old, old))
}

func TestOrphanCleanupTask_Sweep(t *testing.T) {
	db, storage, task := newSweepFixture(t)

	// 数据库引用的一对文件
	referencedOriginal := storage.OriginalPath("keep.jpg")
	referencedThumb := storage.ThumbnailPath("thumb-keep.jpg")
	writeAgedFile(t, referencedOriginal, 2*time.Hour)
	writeAgedFile(t, referencedThumb, 2*time.Hour)
	require.NoError(t, db.Create(&entities.Image{
		UserID:        1,
		Filename:      "keep.jpg",
		OriginalPath:  referencedOriginal,
		ThumbnailPath: referencedThumb,
		FileSize:      1,
		Width:         100,
		Height:        100,
		MimeType:      "image/jpeg",
		UploadTime:    time.Now(),
	}).Error)

	// 无人引用的老文件: 应被删除
	orphan := storage.OriginalPath("orphan.jpg")
	writeAgedFile(t, orphan, 2*time.Hour)

	// 无人引用但很新的文件: 可能属于进行中的上传，应保留
	fresh := storage.OriginalPath("fresh.jpg")
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0644))

	task.sweep(context.Background())

	assert.FileExists(t, referencedOriginal)
	assert.FileExists(t, referencedThumb)
	assert.FileExists(t, fresh)
	assert.NoFileExists(t, orphan)
}

func TestOrphanCleanupTask_SweepKeepsSoftDeletedFiles(t *testing.T) {
	db, storage, task := newSweepFixture(t)

	original := storage.OriginalPath("deleted.jpg")
	thumb := storage.ThumbnailPath("thumb-deleted.jpg")
	writeAgedFile(t, original, 2*time.Hour)
	writeAgedFile(t, thumb, 2*time.Hour)
	require.NoError(t, db.Create(&entities.Image{
		UserID:        1,
		Filename:      "deleted.jpg",
		OriginalPath:  original,
		ThumbnailPath: thumb,
		FileSize:      1,
		Width:         100,
		Height:        100,
		MimeType:      "image/jpeg",
		IsDeleted:     true,
		UploadTime:    time.Now(),
	}).Error)

	task.sweep(context.Background())

	// 软删除的行仍引用文件，清扫不应删除
	assert.FileExists(t, original)
	assert.FileExists(t, thumb)
}
