package service

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/models/vo"
	"github.com/Xushengqwer/image_service/mq/producer"
	"github.com/Xushengqwer/image_service/myErrors"
	"github.com/Xushengqwer/image_service/repo/mysql"
)

// EditService 定义了非破坏式图片编辑的业务接口。
// 编辑永远从原始资产重新执行，连续编辑不叠加；
// 还原只清记录与产物文件，原图不动。
type EditService interface {
	// EditImage 按描述符产出新的编辑文件并原子更新记录。
	// - 固定执行顺序: 裁剪 -> 旋转 -> 亮度/对比度/饱和度。
	// - 整个描述符不产生任何变换时跳过执行，记录保持原状。
	EditImage(ctx context.Context, userID, imageID uint64, req *dto.EditImageRequest) (*vo.EditResultVO, error)

	// RevertImage 清除编辑产物与描述符，图片回到原始状态。
	// - 对未编辑过的图片调用是无害的幂等操作。
	RevertImage(ctx context.Context, userID, imageID uint64) (*vo.ImageVO, error)
}

type editService struct {
	imageRepo mysql.ImageRepository
	storage   *dependencies.UploadStorage
	kafkaSvc  *producer.KafkaProducer
	logger    *core.ZapLogger
}

// NewEditService 是 editService 的构造函数。
func NewEditService(imageRepo mysql.ImageRepository, storage *dependencies.UploadStorage, kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger) EditService {
	return &editService{
		imageRepo: imageRepo,
		storage:   storage,
		kafkaSvc:  kafkaSvc,
		logger:    logger,
	}
}

func (s *editService) EditImage(ctx context.Context, userID, imageID uint64, req *dto.EditImageRequest) (*vo.EditResultVO, error) {
	ops := req.Operations
	if err := ops.Validate(); err != nil {
		return nil, err
	}

	img, err := s.imageRepo.GetOwnedImage(ctx, imageID, userID, false)
	if err != nil {
		return nil, err
	}

	// 无效果的描述符不产出文件，也不动记录
	if ops.IsNoop() {
		return &vo.EditResultVO{
			EditedURL:  vo.DisplayURLOf(img),
			Operations: json.RawMessage(img.EditOperations),
		}, nil
	}

	// 1. 从原始资产解码并按固定顺序执行
	src, err := imaging.Open(img.OriginalPath, imaging.AutoOrientation(true))
	if err != nil {
		s.logger.Error("打开原图失败", zap.Uint64("imageID", imageID), zap.String("path", img.OriginalPath), zap.Error(err))
		return nil, fmt.Errorf("打开原图失败: %w", err)
	}
	result, err := ApplyEditOperations(src, ops)
	if err != nil {
		return nil, err
	}

	// 2. 先落盘产物，再单条 UPDATE 提交记录
	opsJSON, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("序列化编辑描述符失败: %w", err)
	}

	ext := ".jpg"
	editedName := constant.EditedFilenamePrefix + uuid.New().String() + ext
	editedPath := s.storage.OriginalPath(editedName)
	if err := imaging.Save(result, editedPath, imaging.JPEGQuality(constant.EditedJPEGQuality)); err != nil {
		// 编码中途失败会留下残缺文件，立即清掉
		s.storage.Remove(editedPath)
		s.logger.Error("写入编辑产物失败", zap.Uint64("imageID", imageID), zap.Error(err))
		return nil, fmt.Errorf("写入编辑产物失败: %w", err)
	}

	if err := s.imageRepo.UpdateEditResult(ctx, img.ID, editedPath, datatypes.JSON(opsJSON)); err != nil {
		// 记录没更新成功，产物文件不能留下
		s.storage.Remove(editedPath)
		s.logger.Error("更新编辑记录失败", zap.Uint64("imageID", imageID), zap.Error(err))
		return nil, err
	}

	// 3. 上一版编辑产物已无人引用，顺手清掉
	if img.EditedPath.Valid && img.EditedPath.String != editedPath {
		if err := s.storage.Remove(img.EditedPath.String); err != nil {
			s.logger.Warn("清理旧编辑产物失败", zap.String("path", img.EditedPath.String), zap.Error(err))
		}
	}

	s.logger.Info("图片编辑完成", zap.Uint64("imageID", imageID), zap.Uint64("userID", userID))
	s.notifyEdited(imageID, userID, json.RawMessage(opsJSON))

	return &vo.EditResultVO{
		EditedURL:  vo.OriginalURLOf(editedPath),
		Operations: json.RawMessage(opsJSON),
	}, nil
}

func (s *editService) RevertImage(ctx context.Context, userID, imageID uint64) (*vo.ImageVO, error) {
	img, err := s.imageRepo.GetOwnedImage(ctx, imageID, userID, true)
	if err != nil {
		return nil, err
	}

	if !img.EditedPath.Valid {
		return vo.MapImageToVO(img), nil
	}

	oldEditedPath := img.EditedPath.String
	if err := s.imageRepo.ClearEditResult(ctx, img.ID); err != nil {
		s.logger.Error("清除编辑记录失败", zap.Uint64("imageID", imageID), zap.Error(err))
		return nil, err
	}

	if err := s.storage.Remove(oldEditedPath); err != nil {
		s.logger.Warn("删除编辑产物文件失败", zap.String("path", oldEditedPath), zap.Error(err))
	}

	img.EditedPath.Valid = false
	img.EditedPath.String = ""
	img.EditOperations = nil

	s.logger.Info("图片已还原", zap.Uint64("imageID", imageID), zap.Uint64("userID", userID))
	s.notifyEdited(imageID, userID, nil)

	return vo.MapImageToVO(img), nil
}

func (s *editService) notifyEdited(imageID, userID uint64, operations json.RawMessage) {
	if s.kafkaSvc == nil {
		return
	}
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.kafkaSvc.SendImageEditedEvent(sendCtx, imageID, userID, operations)
	}()
}

// ApplyEditOperations 对解码后的图像执行编辑描述符。
// 纯函数，调用前描述符必须已通过 Validate。
func ApplyEditOperations(src image.Image, ops *dto.EditOperations) (image.Image, error) {
	result := src

	if ops.Crop != nil {
		bounds := result.Bounds()
		rect := image.Rect(
			bounds.Min.X+int(ops.Crop.X),
			bounds.Min.Y+int(ops.Crop.Y),
			bounds.Min.X+int(ops.Crop.X+ops.Crop.Width),
			bounds.Min.Y+int(ops.Crop.Y+ops.Crop.Height),
		).Intersect(bounds)
		if rect.Empty() {
			return nil, fmt.Errorf("%w: 裁剪区域完全在图片之外", myErrors.ErrInvalidInput)
		}
		result = imaging.Crop(result, rect)
	}

	if ops.Rotate != 0 {
		result = imaging.Rotate(result, ops.Rotate, color.NRGBA{0, 0, 0, 255})
	}

	if ops.Filters != nil {
		if b := ops.Filters.Brightness; b != nil && *b != 1 {
			result = imaging.AdjustBrightness(result, (*b-1)*100)
		}
		if ct := ops.Filters.Contrast; ct != nil && *ct != 1 {
			result = imaging.AdjustContrast(result, (*ct-1)*100)
		}
		if sat := ops.Filters.Saturation; sat != nil && *sat != 1 {
			result = imaging.AdjustSaturation(result, (*sat-1)*100)
		}
	}

	return result, nil
}
