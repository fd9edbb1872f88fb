package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/models/entities"
	"github.com/Xushengqwer/image_service/models/enums"
	"github.com/Xushengqwer/image_service/repo/mysql"
	"github.com/Xushengqwer/image_service/service"
)

// demoPassword 所有演示账号共用的登录口令。
const demoPassword = "demo123456"

// 常见画幅，覆盖横图/竖图/方形三种方向标签。
var seedImageSizes = [][2]int{
	{1920, 1080},
	{2400, 1600},
	{1080, 1350},
	{1024, 1536},
	{800, 800},
}

var seedCameraModels = []string{
	"Canon EOS R6",
	"NIKON Z 6",
	"SONY ILCE-7M4",
	"FUJIFILM X-T5",
	"iPhone 15 Pro",
}

// Seed 通过服务层注册演示用户，再直接走仓库层为每个用户生成图片和规则标签。
// 图片不是从磁盘上传的真实文件，而是填充纯色的 JPEG，保证原图和缩略图都真实落盘。
func Seed(
	ctx context.Context,
	db *gorm.DB,
	authSvc service.AuthService,
	imageRepo mysql.ImageRepository,
	tagRepo mysql.TagRepository,
	storage *dependencies.UploadStorage,
	logger *core.ZapLogger,
	numUsers int,
	imagesPerUser int,
) {
	logger.Info("开始填充测试数据...", zap.Int("用户数", numUsers), zap.Int("每用户图片数", imagesPerUser))

	for u := 0; u < numUsers; u++ {
		username := fmt.Sprintf("%s%03d", gofakeit.Username(), gofakeit.Number(100, 999))
		registerReq := &dto.RegisterRequest{
			Username: username,
			Email:    gofakeit.Email(),
			Password: demoPassword,
		}

		authResult, err := authSvc.Register(ctx, registerReq)
		if err != nil {
			logger.Error("注册演示用户失败，跳过该用户",
				zap.String("username", username),
				zap.Error(err))
			continue
		}
		userID := authResult.User.ID
		logger.Info(fmt.Sprintf("演示用户 %d/%d 注册成功", u+1, numUsers),
			zap.Uint64("user_id", userID),
			zap.String("username", username),
			zap.String("password", demoPassword))

		var wg sync.WaitGroup
		concurrencyLimit := 10
		semaphore := make(chan struct{}, concurrencyLimit)

		for i := 0; i < imagesPerUser; i++ {
			wg.Add(1)
			semaphore <- struct{}{}

			go func(itemIndex int) {
				defer wg.Done()
				defer func() { <-semaphore }()

				if err := seedOneImage(ctx, db, imageRepo, tagRepo, storage, userID, itemIndex); err != nil {
					logger.Error(fmt.Sprintf("生成图片 %d/%d 失败", itemIndex+1, imagesPerUser),
						zap.Uint64("user_id", userID),
						zap.Error(err))
				}
			}(i)
		}
		wg.Wait()
		logger.Info("该用户的图片填充完毕", zap.Uint64("user_id", userID))
	}

	logger.Info("测试数据填充完毕。")
}

// seedOneImage 生成一张纯色 JPEG、落盘原图和缩略图，并在一个事务里写入记录和规则标签。
func seedOneImage(
	ctx context.Context,
	db *gorm.DB,
	imageRepo mysql.ImageRepository,
	tagRepo mysql.TagRepository,
	storage *dependencies.UploadStorage,
	userID uint64,
	itemIndex int,
) error {
	size := seedImageSizes[gofakeit.Number(0, len(seedImageSizes)-1)]
	width, height := size[0], size[1]

	fill := color.NRGBA{
		R: uint8(gofakeit.Number(0, 255)),
		G: uint8(gofakeit.Number(0, 255)),
		B: uint8(gofakeit.Number(0, 255)),
		A: 255,
	}
	img := imaging.New(width, height, fill)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("编码 JPEG 失败: %w", err)
	}

	storedName := uuid.New().String() + ".jpg"
	originalPath, err := storage.SaveOriginal(storedName, buf.Bytes())
	if err != nil {
		return fmt.Errorf("写入原图失败: %w", err)
	}

	thumb := imaging.Fit(img, 300, 300, imaging.Lanczos)
	thumbnailPath := storage.ThumbnailPath("thumb-" + storedName)
	if err := imaging.Save(thumb, thumbnailPath, imaging.JPEGQuality(85)); err != nil {
		_ = storage.Remove(originalPath)
		return fmt.Errorf("写入缩略图失败: %w", err)
	}

	now := time.Now()
	takenTime := gofakeit.DateRange(now.AddDate(-2, 0, 0), now)

	entity := &entities.Image{
		UserID:        userID,
		Filename:      fmt.Sprintf("%s-%s-%03d.jpg", gofakeit.Word(), gofakeit.Word(), itemIndex+1),
		OriginalPath:  originalPath,
		ThumbnailPath: thumbnailPath,
		FileSize:      int64(buf.Len()),
		Width:         width,
		Height:        height,
		MimeType:      "image/jpeg",
		UploadTime:    gofakeit.DateRange(takenTime, now),
	}
	if gofakeit.Bool() {
		entity.TakenTime = sql.NullTime{Time: takenTime, Valid: true}
		entity.CameraModel = sql.NullString{
			String: seedCameraModels[gofakeit.Number(0, len(seedCameraModels)-1)],
			Valid:  true,
		}
	}

	var taken *time.Time
	if entity.TakenTime.Valid {
		taken = &entity.TakenTime.Time
	}
	ruleTags := service.RuleTags(width, height, taken)

	txErr := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := imageRepo.CreateImage(ctx, tx, entity); err != nil {
			return err
		}
		for _, name := range ruleTags {
			tag, err := tagRepo.FindOrCreateByName(ctx, tx, name, enums.TagTypeRule)
			if err != nil {
				return err
			}
			if _, err := tagRepo.AttachTagToImage(ctx, tx, entity.ID, tag.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		_ = storage.Remove(originalPath)
		_ = storage.Remove(thumbnailPath)
		return fmt.Errorf("写入数据库失败: %w", txErr)
	}
	return nil
}
