package service

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/models/vo"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

// editFixture 把编辑链路跑在真实磁盘与内存库上。
type editFixture struct {
	svc     EditService
	db      *gorm.DB
	storage *dependencies.UploadStorage
}

func newEditFixture(t *testing.T) *editFixture {
	t.Helper()
	db := newTestDB(t)
	logger := newTestLogger(t)
	storage, err := dependencies.InitUploadStorage(t.TempDir(), logger)
	require.NoError(t, err)
	imageRepo := mysql.NewImageRepository(db, logger)
	return &editFixture{
		svc:     NewEditService(imageRepo, storage, nil, logger),
		db:      db,
		storage: storage,
	}
}

// seedStoredImage 在存储目录里真实渲染一张纯色 JPEG 并建好记录。
func (f *editFixture) seedStoredImage(t *testing.T, userID uint64, width, height int) *entities.Image {
	t.Helper()
	storedName := uuid.New().String() + ".jpg"
	originalPath := f.storage.OriginalPath(storedName)
	src := imaging.New(width, height, color.NRGBA{R: 90, G: 140, B: 60, A: 255})
	require.NoError(t, imaging.Save(src, originalPath, imaging.JPEGQuality(90)))

	img := &entities.Image{
		UserID:        userID,
		Filename:      storedName,
		OriginalPath:  originalPath,
		ThumbnailPath: f.storage.ThumbnailPath("thumb-" + storedName),
		FileSize:      1024,
		Width:         width,
		Height:        height,
		MimeType:      "image/jpeg",
		UploadTime:    time.Now(),
	}
	require.NoError(t, f.db.Create(img).Error)
	return img
}

func (f *editFixture) reload(t *testing.T, id uint64) *entities.Image {
	t.Helper()
	var got entities.Image
	require.NoError(t, f.db.First(&got, id).Error)
	return &got
}

func TestEditService_EditAlwaysFromOriginal(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()
	img := f.seedStoredImage(t, 1, 200, 100)

	// 第一次编辑: 裁剪到 100×100
	first, err := f.svc.EditImage(ctx, 1, img.ID, &dto.EditImageRequest{
		Operations: &dto.EditOperations{Crop: &dto.CropOperation{Width: 100, Height: 100}},
	})
	require.NoError(t, err)

	afterFirst := f.reload(t, img.ID)
	require.True(t, afterFirst.EditedPath.Valid)
	firstPath := afterFirst.EditedPath.String
	assert.Equal(t, vo.OriginalURLOf(firstPath), first.EditedURL)

	out, err := imaging.Open(firstPath)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 100, out.Bounds().Dy())

	// 第二次编辑: 旋转 90 度。结果必须是原图 200×100 的旋转，
	// 而不是在上一次 100×100 裁剪产物上叠加。
	second, err := f.svc.EditImage(ctx, 1, img.ID, &dto.EditImageRequest{
		Operations: &dto.EditOperations{Rotate: 90},
	})
	require.NoError(t, err)

	afterSecond := f.reload(t, img.ID)
	require.True(t, afterSecond.EditedPath.Valid)
	secondPath := afterSecond.EditedPath.String
	assert.NotEqual(t, firstPath, secondPath)
	assert.JSONEq(t, `{"rotate":90}`, string(afterSecond.EditOperations))
	assert.JSONEq(t, `{"rotate":90}`, string(second.Operations))

	out, err = imaging.Open(secondPath)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())

	// 上一版产物已无人引用，应当被顺手清掉
	_, statErr := os.Stat(firstPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEditService_NoopEditLeavesRecordUntouched(t *testing.T) {
	f := newEditFixture(t)
	img := f.seedStoredImage(t, 1, 200, 100)

	before, err := f.storage.ListFiles()
	require.NoError(t, err)

	res, err := f.svc.EditImage(context.Background(), 1, img.ID, &dto.EditImageRequest{
		Operations: &dto.EditOperations{
			Filters: &dto.FilterOperation{Brightness: floatPtr(1), Contrast: floatPtr(1), Saturation: floatPtr(1)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, vo.OriginalURLOf(img.OriginalPath), res.EditedURL)
	assert.Empty(t, res.Operations)

	after, err := f.storage.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, before, after, "无效果的描述符不应产出任何文件")

	got := f.reload(t, img.ID)
	assert.False(t, got.EditedPath.Valid)
	assert.Empty(t, got.EditOperations)
}

func TestEditService_RevertClearsArtifacts(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()
	img := f.seedStoredImage(t, 1, 200, 100)

	_, err := f.svc.EditImage(ctx, 1, img.ID, &dto.EditImageRequest{
		Operations: &dto.EditOperations{Rotate: 90},
	})
	require.NoError(t, err)
	editedPath := f.reload(t, img.ID).EditedPath.String

	reverted, err := f.svc.RevertImage(ctx, 1, img.ID)
	require.NoError(t, err)
	assert.Equal(t, vo.OriginalURLOf(img.OriginalPath), reverted.DisplayURL)
	assert.Nil(t, reverted.EditedURL)

	got := f.reload(t, img.ID)
	assert.False(t, got.EditedPath.Valid)
	assert.Empty(t, got.EditOperations)
	_, statErr := os.Stat(editedPath)
	assert.True(t, os.IsNotExist(statErr))

	// 未编辑状态下再次还原是无害的幂等操作
	_, err = f.svc.RevertImage(ctx, 1, img.ID)
	require.NoError(t, err)
}

func TestEditService_RevertToleratesMissingEditedFile(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()
	img := f.seedStoredImage(t, 1, 200, 100)

	_, err := f.svc.EditImage(ctx, 1, img.ID, &dto.EditImageRequest{
		Operations: &dto.EditOperations{Rotate: 90},
	})
	require.NoError(t, err)
	editedPath := f.reload(t, img.ID).EditedPath.String
	require.NoError(t, os.Remove(editedPath))

	_, err = f.svc.RevertImage(ctx, 1, img.ID)
	require.NoError(t, err)

	got := f.reload(t, img.ID)
	assert.False(t, got.EditedPath.Valid)
	assert.Empty(t, got.EditOperations)
}

func TestEditService_WriteFailureKeepsRecordClean(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()

	// 原图放在存储目录之外，这样破坏产物目录不影响解码
	srcDir := t.TempDir()
	originalPath := filepath.Join(srcDir, "source.jpg")
	src := imaging.New(200, 100, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	require.NoError(t, imaging.Save(src, originalPath, imaging.JPEGQuality(90)))

	img := &entities.Image{
		UserID:        1,
		Filename:      "source.jpg",
		OriginalPath:  originalPath,
		ThumbnailPath: filepath.Join(srcDir, "thumb-source.jpg"),
		FileSize:      512,
		Width:         200,
		Height:        100,
		MimeType:      "image/jpeg",
		UploadTime:    time.Now(),
	}
	require.NoError(t, f.db.Create(img).Error)

	require.NoError(t, os.RemoveAll(filepath.Join(f.storage.Root(), constant.UploadSubdirOriginals)))

	_, err := f.svc.EditImage(ctx, 1, img.ID, &dto.EditImageRequest{
		Operations: &dto.EditOperations{Rotate: 90},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "写入编辑产物失败")

	// 落盘失败后记录保持原状，磁盘上也不残留任何编辑产物
	got := f.reload(t, img.ID)
	assert.False(t, got.EditedPath.Valid)
	assert.Empty(t, got.EditOperations)
	matches, globErr := filepath.Glob(filepath.Join(f.storage.Root(), "*", constant.EditedFilenamePrefix+"*"))
	require.NoError(t, globErr)
	assert.Empty(t, matches)
}
