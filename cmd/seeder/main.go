package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/repo/mysql"
	"github.com/Xushengqwer/image_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var configFile string
	var numUsers int
	var imagesPerUser int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numUsers, "users", 3, "要生成的演示用户数量 (默认: 3)")
	flag.IntVar(&imagesPerUser, "n", 20, "每个用户生成的图片数量 (默认: 20)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 个用户、每用户 %d 张图片...\n", absConfigFile, numUsers, imagesPerUser)

	if numUsers <= 0 || imagesPerUser <= 0 {
		fmt.Println("错误: 用户数量和图片数量都必须大于 0")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.ImageConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化本地上传存储 ---
	storage, storageErr := dependencies.InitUploadStorage(cfg.UploadConfig.Path, logger)
	if storageErr != nil {
		logger.Fatal("初始化上传存储失败 (Seeder)", zap.Error(storageErr))
	}
	logger.Info("上传存储就绪 (Seeder)", zap.String("root", storage.Root()))

	// --- 5. 初始化 Repositories 和 AuthService ---
	userRepo := mysql.NewUserRepository(db)
	imageRepo := mysql.NewImageRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	authSvc := service.NewAuthService(userRepo, cfg.JWTConfig, logger)
	logger.Info("依赖初始化完成 (Seeder)")

	// --- 6. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()

	Seed(ctx, db, authSvc, imageRepo, tagRepo, storage, logger, numUsers, imagesPerUser)

	fmt.Printf("数据填充完成！耗时: %v\n", time.Since(startTime))
	logger.Info("Seeder main: 所有任务完成，准备退出。")
}
