package service

import (
	"bytes"
	"context"
	"image/color"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

// newMultipartFileHeader 走一遍真实的 multipart 编解码拿到文件头。
func newMultipartFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 40, G: 120, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)))
	return buf.Bytes()
}

func newUploadTestService(t *testing.T) (ImageService, *dependencies.UploadStorage) {
	t.Helper()
	db := newTestDB(t)
	logger := newTestLogger(t)
	storage, err := dependencies.InitUploadStorage(t.TempDir(), logger)
	require.NoError(t, err)
	imageRepo := mysql.NewImageRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	// 没有 API Key 的视觉客户端直接走文件名回退，不外呼
	vision := dependencies.NewVisionClient(&appConfig.VisionConfig{}, logger)
	svc := NewImageService(db, imageRepo, tagRepo, storage, vision, nil, nil, nil,
		appConfig.UploadConfig{MaxFileSizeMB: 10}, logger)
	return svc, storage
}

func TestImageService_UploadThumbnailBounds(t *testing.T) {
	svc, storage := newUploadTestService(t)
	ctx := context.Background()

	t.Run("大图等比缩到最长边 300", func(t *testing.T) {
		header := newMultipartFileHeader(t, "beach.jpg", encodeJPEG(t, 1000, 400))
		res, err := svc.UploadImage(ctx, 1, header)
		require.NoError(t, err)
		assert.Equal(t, 1000, res.Width)
		assert.Equal(t, 400, res.Height)
		assert.Contains(t, res.Tags, "横图")

		thumbs := listThumbnails(t, storage)
		require.Len(t, thumbs, 1)
		thumb, err := imaging.Open(thumbs[0])
		require.NoError(t, err)
		assert.Equal(t, 300, thumb.Bounds().Dx())
		assert.Equal(t, 120, thumb.Bounds().Dy())
	})

	t.Run("小图不放大", func(t *testing.T) {
		svc, storage := newUploadTestService(t)
		header := newMultipartFileHeader(t, "icon.jpg", encodeJPEG(t, 120, 80))
		_, err := svc.UploadImage(ctx, 2, header)
		require.NoError(t, err)

		thumbs := listThumbnails(t, storage)
		require.Len(t, thumbs, 1)
		thumb, err := imaging.Open(thumbs[0])
		require.NoError(t, err)
		assert.Equal(t, 120, thumb.Bounds().Dx())
		assert.Equal(t, 80, thumb.Bounds().Dy())
	})
}

func listThumbnails(t *testing.T, storage *dependencies.UploadStorage) []string {
	t.Helper()
	files, err := storage.ListFiles()
	require.NoError(t, err)
	var thumbs []string
	for _, f := range files {
		if strings.Contains(f, "thumbnails") {
			thumbs = append(thumbs, f)
		}
	}
	return thumbs
}
