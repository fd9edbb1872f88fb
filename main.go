package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/image_service/docs" // swagger 文档

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/controller"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/dependencies"
	"github.com/Xushengqwer/image_service/mq/producer"
	"github.com/Xushengqwer/image_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/image_service/repo/redis"
	"github.com/Xushengqwer/image_service/router"
	"github.com/Xushengqwer/image_service/service"
	"github.com/Xushengqwer/image_service/tasks"

	"go.uber.org/zap"
)

// @title           Image Service API
// @version         1.0
// @description     个人图片管理服务，提供上传、打标、编辑、轮播与 AI 搜图等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.ImageConfig
	if err := core.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("配置加载成功！最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := core.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 本地上传目录
	storage, storageErr := dependencies.InitUploadStorage(cfg.UploadConfig.Path, logger)
	if storageErr != nil {
		logger.Fatal("初始化上传目录失败", zap.Error(storageErr))
	}

	// 4.4 COS 原图镜像（可选）
	var mirror dependencies.OriginalsMirror
	if cfg.COSConfig.Enabled {
		var cosErr error
		mirror, cosErr = dependencies.InitCOSMirror(&cfg.COSConfig, logger)
		if cosErr != nil {
			logger.Fatal("初始化 COS 原图镜像失败", zap.Error(cosErr))
		}
	} else {
		logger.Info("COS 原图镜像未启用")
	}

	// 4.5 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，Kafka 生产者将为 nil")
	}

	// 4.6 外部 AI 客户端
	visionClient := dependencies.NewVisionClient(&cfg.AIConfig.Vision, logger)
	keywordClient := dependencies.NewDeepSeekClient(&cfg.AIConfig.DeepSeek, logger)

	// --- 5. 初始化数据仓库层 (Repositories) ---
	userRepo := mysql.NewUserRepository(db)
	imageRepo := mysql.NewImageRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	carouselRepo := mysql.NewCarouselRepository(db, logger)
	logger.Debug("MySQL Repositories 初始化完成")

	aiCache := redisrepo.NewAICache(
		rdb,
		logger,
		time.Duration(cfg.RedisConfig.VisionTagTTLMinutes)*time.Minute,
		time.Duration(cfg.RedisConfig.SearchKeywordTTLMinutes)*time.Minute,
	)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	authService := service.NewAuthService(userRepo, cfg.JWTConfig, logger)
	imageService := service.NewImageService(db, imageRepo, tagRepo, storage, visionClient, aiCache, mirror, kafkaProducer, cfg.UploadConfig, logger)
	editService := service.NewEditService(imageRepo, storage, kafkaProducer, logger)
	tagService := service.NewTagService(db, imageRepo, tagRepo, logger)
	carouselService := service.NewCarouselService(carouselRepo, imageRepo, logger)
	searchService := service.NewSearchService(imageRepo, keywordClient, aiCache, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	authController := controller.NewAuthController(authService)
	imageController := controller.NewImageController(imageService, editService)
	tagController := controller.NewTagController(tagService)
	carouselController := controller.NewCarouselController(carouselService)
	searchController := controller.NewSearchController(searchService)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化定时任务 ---
	sweepTask := tasks.NewOrphanCleanupTask(imageRepo, storage, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 9. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, authController, imageController, tagController, carouselController, searchController)
	logger.Info("Gin 路由器已设置")

	// --- 10. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 11. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 停止定时任务（等待进行中的清扫收尾）
	sweepTask.Stop()

	// c. 关闭 Kafka 生产者
	if kafkaProducer != nil {
		logger.Info("正在关闭 Kafka 生产者...")
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		} else {
			logger.Info("Kafka 生产者已关闭")
		}
	}

	// d. 关闭 Redis 连接
	logger.Info("正在关闭 Redis 连接...")
	if err := rdb.Close(); err != nil {
		logger.Error("关闭 Redis 连接失败", zap.Error(err))
	} else {
		logger.Info("Redis 连接已关闭")
	}

	logger.Info("服务已优雅退出")
}
