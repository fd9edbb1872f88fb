package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/models/enums"
	"github.com/Xushengqwer/image_service/models/vo"
	"github.com/Xushengqwer/image_service/mq/events"
	"github.com/Xushengqwer/image_service/mq/producer"
	"github.com/Xushengqwer/image_service/myErrors"
	"github.com/Xushengqwer/image_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/image_service/repo/redis"
)

// allowedMimeTypes 上传白名单，按内容嗅探结果判定而不是扩展名。
var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
	"image/webp": ".webp",
}

// ImageService 定义了图片资产的核心业务接口。
type ImageService interface {
	// UploadImage 处理一次完整的图片上传。
	// - 流程: 校验 -> 落盘原图 -> 缩略图 -> EXIF 提取 -> 规则打标 -> 视觉打标 -> 入库。
	// - 规则标签与视觉标签在同一事务内随图片记录一起挂载。
	// - 成功后异步发 Kafka 事件、按配置镜像原图到 COS，两者失败都不影响结果。
	UploadImage(ctx context.Context, userID uint64, fileHeader *multipart.FileHeader) (*vo.UploadResultVO, error)

	// ListImages 分页列举用户的图片，支持文件名模糊搜索。
	ListImages(ctx context.Context, userID uint64, req *dto.ListImagesRequest) (*vo.ImagePageVO, error)

	// GetImage 获取单张图片详情（含标签）。
	GetImage(ctx context.Context, userID, imageID uint64) (*vo.ImageVO, error)

	// DeleteImage 软删除图片，磁盘文件保留。
	DeleteImage(ctx context.Context, userID, imageID uint64) error

	// RenameImage 修改展示文件名。
	// - 同一用户下与其他未删除图片重名时返回 ErrConflict。
	RenameImage(ctx context.Context, userID, imageID uint64, filename string) (*vo.ImageVO, error)

	// GetImageExif 返回图片的 EXIF 视图。
	GetImageExif(ctx context.Context, userID, imageID uint64) (*vo.ExifVO, error)

	// AnalyzeImage 手动触发一次视觉打标，把新产生的标签挂到图片上。
	AnalyzeImage(ctx context.Context, userID, imageID uint64) (*vo.AnalyzeResultVO, error)
}

type imageService struct {
	db        *gorm.DB
	imageRepo mysql.ImageRepository
	tagRepo   mysql.TagRepository
	storage   *dependencies.UploadStorage
	vision    dependencies.VisionClient
	aiCache   redisRepo.AICache
	mirror    dependencies.OriginalsMirror // 可为 nil，表示镜像关闭
	kafkaSvc  *producer.KafkaProducer
	uploadCfg appConfig.UploadConfig
	logger    *core.ZapLogger
}

// NewImageService 是 imageService 的构造函数。
func NewImageService(
	db *gorm.DB,
	imageRepo mysql.ImageRepository,
	tagRepo mysql.TagRepository,
	storage *dependencies.UploadStorage,
	vision dependencies.VisionClient,
	aiCache redisRepo.AICache,
	mirror dependencies.OriginalsMirror,
	kafkaSvc *producer.KafkaProducer,
	uploadCfg appConfig.UploadConfig,
	logger *core.ZapLogger,
) ImageService {
	return &imageService{
		db:        db,
		imageRepo: imageRepo,
		tagRepo:   tagRepo,
		storage:   storage,
		vision:    vision,
		aiCache:   aiCache,
		mirror:    mirror,
		kafkaSvc:  kafkaSvc,
		uploadCfg: uploadCfg,
		logger:    logger,
	}
}

func (s *imageService) UploadImage(ctx context.Context, userID uint64, fileHeader *multipart.FileHeader) (*vo.UploadResultVO, error) {
	// 1. 大小与内容校验
	maxBytes := s.uploadCfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return nil, fmt.Errorf("%w: 文件大小超过 %dMB 限制", myErrors.ErrInvalidInput, s.uploadCfg.MaxFileSizeMB)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer file.Close()

	data := make([]byte, 0, fileHeader.Size)
	buf := bytes.NewBuffer(data)
	if _, err := buf.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("读取上传文件失败: %w", err)
	}
	content := buf.Bytes()

	mimeType := http.DetectContentType(content)
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, fmt.Errorf("%w: 不支持的文件类型 %s", myErrors.ErrInvalidInput, mimeType)
	}

	decoded, err := imaging.Decode(bytes.NewReader(content), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: 图片内容无法解码", myErrors.ErrInvalidInput)
	}
	bounds := decoded.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// 2. 落盘原图与缩略图
	storedName := uuid.New().String() + ext
	originalPath, err := s.storage.SaveOriginal(storedName, content)
	if err != nil {
		s.logger.Error("写入原图失败", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return nil, err
	}

	thumb := imaging.Fit(decoded, constant.ThumbnailMaxEdge, constant.ThumbnailMaxEdge, imaging.Lanczos)
	thumbName := constant.ThumbnailFilenamePrefix + strings.TrimSuffix(storedName, ext) + ".jpg"
	thumbnailPath := s.storage.ThumbnailPath(thumbName)
	if err := imaging.Save(thumb, thumbnailPath, imaging.JPEGQuality(constant.ThumbnailJPEGQuality)); err != nil {
		s.storage.Remove(originalPath)
		s.logger.Error("生成缩略图失败", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return nil, fmt.Errorf("生成缩略图失败: %w", err)
	}

	// 3. EXIF 提取，失败只降级不报错
	image := &entities.Image{
		UserID:        userID,
		Filename:      fileHeader.Filename,
		OriginalPath:  originalPath,
		ThumbnailPath: thumbnailPath,
		FileSize:      fileHeader.Size,
		Width:         width,
		Height:        height,
		MimeType:      mimeType,
	}
	s.fillExifFields(image, content)

	// 4. 打标：规则标签本地算，视觉标签先查缓存再打模型
	var takenTime *time.Time
	if image.TakenTime.Valid {
		takenTime = &image.TakenTime.Time
	}
	ruleTags := RuleTags(width, height, takenTime)
	visionTags := s.visionTagsWithCache(ctx, content, mimeType, fileHeader.Filename)

	// 5. 事务：图片记录与标签挂载一起落库
	allTags := make([]string, 0, len(ruleTags)+len(visionTags))
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.imageRepo.CreateImage(ctx, tx, image); err != nil {
			return err
		}
		attachedRule, err := s.attachTagNames(ctx, tx, image.ID, ruleTags, enums.TagTypeRule)
		if err != nil {
			return err
		}
		attachedVision, err := s.attachTagNames(ctx, tx, image.ID, visionTags, enums.TagTypeAI)
		if err != nil {
			return err
		}
		allTags = append(allTags, attachedRule...)
		allTags = append(allTags, attachedVision...)
		return nil
	})
	if txErr != nil {
		// 入库失败时磁盘文件已成孤儿，立即清掉而不是等清扫任务
		s.storage.Remove(originalPath)
		s.storage.Remove(thumbnailPath)
		s.logger.Error("图片入库失败", zap.String("filename", fileHeader.Filename), zap.Error(txErr))
		return nil, txErr
	}

	s.logger.Info("图片上传成功",
		zap.Uint64("imageID", image.ID),
		zap.Uint64("userID", userID),
		zap.String("filename", image.Filename),
		zap.Strings("tags", allTags),
	)

	// 6. 事务外的尽力而为动作
	s.notifyUploaded(image, allTags)
	s.mirrorOriginal(storedName, content, mimeType, fileHeader.Size)

	return &vo.UploadResultVO{
		ID:           image.ID,
		Filename:     image.Filename,
		ThumbnailURL: vo.ThumbnailURLOf(thumbnailPath),
		Width:        width,
		Height:       height,
		Tags:         allTags,
	}, nil
}

func (s *imageService) ListImages(ctx context.Context, userID uint64, req *dto.ListImagesRequest) (*vo.ImagePageVO, error) {
	req.Normalize()
	images, total, err := s.imageRepo.ListImages(ctx, userID, req.Search, req.GetOffset(), req.Limit)
	if err != nil {
		s.logger.Error("列举图片失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}
	return &vo.ImagePageVO{
		Images:     vo.MapImagesToVO(images),
		Pagination: vo.NewPaginationVO(total, req.Page, req.Limit),
	}, nil
}

func (s *imageService) GetImage(ctx context.Context, userID, imageID uint64) (*vo.ImageVO, error) {
	image, err := s.imageRepo.GetOwnedImage(ctx, imageID, userID, true)
	if err != nil {
		return nil, err
	}
	return vo.MapImageToVO(image), nil
}

func (s *imageService) DeleteImage(ctx context.Context, userID, imageID uint64) error {
	if err := s.imageRepo.SoftDeleteImage(ctx, imageID, userID); err != nil {
		return err
	}

	s.logger.Info("图片已软删除", zap.Uint64("imageID", imageID), zap.Uint64("userID", userID))
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if s.kafkaSvc != nil {
			_ = s.kafkaSvc.SendImageDeletedEvent(sendCtx, imageID, userID)
		}
	}()
	return nil
}

func (s *imageService) RenameImage(ctx context.Context, userID, imageID uint64, filename string) (*vo.ImageVO, error) {
	image, err := s.imageRepo.GetOwnedImage(ctx, imageID, userID, false)
	if err != nil {
		return nil, err
	}

	taken, err := s.imageRepo.FilenameExists(ctx, userID, filename, imageID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: 文件名 '%s' 已被占用", myErrors.ErrConflict, filename)
	}

	if err := s.imageRepo.RenameImage(ctx, image.ID, filename); err != nil {
		s.logger.Error("重命名图片失败", zap.Uint64("imageID", imageID), zap.Error(err))
		return nil, err
	}
	return s.GetImage(ctx, userID, imageID)
}

func (s *imageService) GetImageExif(ctx context.Context, userID, imageID uint64) (*vo.ExifVO, error) {
	image, err := s.imageRepo.GetOwnedImage(ctx, imageID, userID, false)
	if err != nil {
		return nil, err
	}
	return vo.MapImageToExifVO(image), nil
}

func (s *imageService) AnalyzeImage(ctx context.Context, userID, imageID uint64) (*vo.AnalyzeResultVO, error) {
	image, err := s.imageRepo.GetOwnedImage(ctx, imageID, userID, false)
	if err != nil {
		return nil, err
	}

	content, err := readFileBytes(image.OriginalPath)
	if err != nil {
		s.logger.Error("读取原图失败", zap.Uint64("imageID", imageID), zap.String("path", image.OriginalPath), zap.Error(err))
		return nil, fmt.Errorf("读取原图失败: %w", err)
	}

	tags := s.visionTagsWithCache(ctx, content, image.MimeType, image.Filename)

	var added []string
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		added, err = s.attachTagNames(ctx, tx, image.ID, tags, enums.TagTypeAI)
		return err
	})
	if txErr != nil {
		s.logger.Error("挂载分析标签失败", zap.Uint64("imageID", imageID), zap.Error(txErr))
		return nil, txErr
	}

	return &vo.AnalyzeResultVO{
		Tags:      tags,
		AddedTags: added,
		Total:     len(added),
	}, nil
}

// visionTagsWithCache 以内容指纹为键做视觉打标缓存。
// 命中时整段跳过外呼；未命中时打模型并写回。
func (s *imageService) visionTagsWithCache(ctx context.Context, content []byte, mimeType, filename string) []string {
	sum := sha256.Sum256(content)
	contentHash := hex.EncodeToString(sum[:])

	if s.aiCache != nil {
		if cached, err := s.aiCache.GetVisionTags(ctx, contentHash); err == nil {
			s.logger.Debug("视觉标签缓存命中", zap.String("contentHash", contentHash))
			return cached
		} else if !errors.Is(err, myErrors.ErrCacheMiss) {
			s.logger.Warn("读取视觉标签缓存失败，继续打模型", zap.Error(err))
		}
	}

	tags := s.vision.AnalyzeImage(ctx, content, mimeType, filename)

	if s.aiCache != nil && len(tags) > 0 {
		if err := s.aiCache.SetVisionTags(ctx, contentHash, tags); err != nil {
			s.logger.Warn("写入视觉标签缓存失败", zap.Error(err))
		}
	}
	return tags
}

// attachTagNames 把一组标签名挂到图片上，标签不存在则按给定类型创建。
// 返回本次真正新建了关联的标签名（已挂载的不重复计）。
func (s *imageService) attachTagNames(ctx context.Context, tx *gorm.DB, imageID uint64, names []string, tagType enums.TagType) ([]string, error) {
	var attached []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := s.tagRepo.FindOrCreateByName(ctx, tx, name, tagType)
		if err != nil {
			return nil, err
		}
		created, err := s.tagRepo.AttachTagToImage(ctx, tx, imageID, tag.ID)
		if err != nil {
			return nil, err
		}
		if created {
			attached = append(attached, name)
		}
	}
	return attached, nil
}

// fillExifFields 从原始字节里解析 EXIF 并填充实体的可空字段。
// 解析失败或某字段缺失都静默跳过。
func (s *imageService) fillExifFields(image *entities.Image, content []byte) {
	meta, err := exif.Decode(bytes.NewReader(content))
	if err != nil {
		return
	}

	if t, err := meta.DateTime(); err == nil {
		image.TakenTime = sql.NullTime{Time: t, Valid: true}
	}
	if v, err := exifString(meta, exif.Model); err == nil {
		image.CameraModel = sql.NullString{String: v, Valid: true}
	}
	if v, err := exifString(meta, exif.LensModel); err == nil {
		image.LensModel = sql.NullString{String: v, Valid: true}
	}
	if tag, err := meta.Get(exif.ExposureTime); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			image.ExposureTime = sql.NullString{String: fmt.Sprintf("%d/%d", num, den), Valid: true}
		}
	}
	if v, err := exifRatioFloat(meta, exif.FNumber); err == nil {
		image.FNumber = sql.NullFloat64{Float64: v, Valid: true}
	}
	if v, err := exifRatioFloat(meta, exif.FocalLength); err == nil {
		image.FocalLength = sql.NullFloat64{Float64: v, Valid: true}
	}
	if tag, err := meta.Get(exif.ISOSpeedRatings); err == nil {
		if v, err := tag.Int(0); err == nil {
			image.ISOSpeed = sql.NullInt64{Int64: int64(v), Valid: true}
		}
	}
	if lat, long, err := meta.LatLong(); err == nil {
		image.GPSLatitude = sql.NullFloat64{Float64: lat, Valid: true}
		image.GPSLongitude = sql.NullFloat64{Float64: long, Valid: true}
	}
}

func exifString(meta *exif.Exif, field exif.FieldName) (string, error) {
	tag, err := meta.Get(field)
	if err != nil {
		return "", err
	}
	return tag.StringVal()
}

func exifRatioFloat(meta *exif.Exif, field exif.FieldName) (float64, error) {
	tag, err := meta.Get(field)
	if err != nil {
		return 0, err
	}
	num, den, err := tag.Rat2(0)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, fmt.Errorf("分母为 0")
	}
	return float64(num) / float64(den), nil
}

// notifyUploaded 发送上传事件，失败只记日志。
func (s *imageService) notifyUploaded(image *entities.Image, tags []string) {
	if s.kafkaSvc == nil {
		return
	}
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.kafkaSvc.SendImageUploadedEvent(sendCtx, events.ImageData{
			ImageID:  image.ID,
			UserID:   image.UserID,
			Filename: image.Filename,
			MimeType: image.MimeType,
			FileSize: image.FileSize,
			Width:    image.Width,
			Height:   image.Height,
			Tags:     tags,
		})
	}()
}

// mirrorOriginal 按配置把原图镜像到 COS，失败只记日志。
func (s *imageService) mirrorOriginal(storedName string, content []byte, mimeType string, size int64) {
	if s.mirror == nil {
		return
	}
	objectKey := constant.COSObjectKeyPrefixOriginals + storedName
	go func() {
		mirrorCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.mirror.MirrorOriginal(mirrorCtx, objectKey, bytes.NewReader(content), size, mimeType); err != nil {
			s.logger.Warn("原图镜像到 COS 失败", zap.String("objectKey", objectKey), zap.Error(err))
		}
	}()
}

func readFileBytes(path string) ([]byte, error) {
	return os.ReadFile(filepath.Clean(path))
}
