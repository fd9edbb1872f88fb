package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/constant"
	"github.com/Xushengqwer/image_service/controller"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/middleware"
)

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.ImageConfig,
	authController *controller.AuthController,
	imageController *controller.ImageController,
	tagController *controller.TagController,
	carouselController *controller.CarouselController,
	searchController *controller.SearchController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New() 而不是 gin.Default()，Recovery 和 Logger 用自己的
	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery (捕获后续中间件和 handler 的 panic)
	router.Use(middleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(middleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout (超时控制)
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(middleware.RequestTimeoutMiddleware(logger, requestTimeout))

	logger.Debug("已注册全局中间件")

	// --- 静态资源：上传目录直出 ---
	router.Static("/uploads", cfg.UploadConfig.Path)

	// --- API 分组 ---
	api := router.Group("/api")

	// 公开路由：注册 / 登录
	authController.RegisterPublicRoutes(api)

	// 认证路由
	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTConfig))
	{
		authController.RegisterAuthedRoutes(authed)
		imageController.RegisterRoutes(authed)
		tagController.RegisterRoutes(authed)
		carouselController.RegisterRoutes(authed)
		searchController.RegisterRoutes(authed)
	}
	logger.Info("所有控制器路由已注册到 /api 分组")

	// --- Swagger UI ---
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查 ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   constant.ServiceName,
		})
	})

	logger.Info("Gin 路由设置完成")
	return router
}
