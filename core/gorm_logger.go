package core

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/image_service/config"
)

// gormZapLogger 将 GORM 的日志输出转接到 ZapLogger。
// - 慢查询按配置阈值告警；记录未找到不按错误级别输出，避免噪音。
type gormZapLogger struct {
	logger        *ZapLogger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger 根据 GormLogConfig 构建 GORM 日志适配器。
func NewGormLogger(logger *ZapLogger, cfg config.GormLogConfig) gormlogger.Interface {
	level := gormlogger.Warn
	switch cfg.Level {
	case "silent":
		level = gormlogger.Silent
	case "error":
		level = gormlogger.Error
	case "warn":
		level = gormlogger.Warn
	case "info":
		level = gormlogger.Info
	}

	slow := time.Duration(cfg.SlowThresholdMs) * time.Millisecond
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}

	return &gormZapLogger{
		logger:        logger,
		level:         level,
		slowThreshold: slow,
	}
}

func (g *gormZapLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormZapLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.logger.Info("GORM", zap.String("msg", msg), zap.Any("args", args))
	}
}

func (g *gormZapLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.logger.Warn("GORM", zap.String("msg", msg), zap.Any("args", args))
	}
}

func (g *gormZapLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.logger.Error("GORM", zap.String("msg", msg), zap.Any("args", args))
	}
}

func (g *gormZapLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		g.logger.Error("GORM 执行出错",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
	case elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		g.logger.Warn("GORM 慢查询",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", g.slowThreshold),
		)
	case g.level >= gormlogger.Info:
		g.logger.Debug("GORM 查询",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	}
}
