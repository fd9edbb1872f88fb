package core

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Xushengqwer/image_service/config"
)

// ZapLogger 是对 *zap.Logger 的轻量包装。
// - 统一项目内的日志入口，避免各层直接依赖 zap 的构建细节。
// - 需要底层 *zap.Logger 时（例如注入 Gin 中间件），通过 Logger() 获取。
type ZapLogger struct {
	base *zap.Logger
}

// NewZapLogger 根据配置构建 ZapLogger。
// - level 支持 debug/info/warn/error，非法值回退到 info。
// - encoding 支持 json 与 console，生产环境建议 json。
func NewZapLogger(cfg config.ZapConfig) (*ZapLogger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}

	encoding := cfg.Encoding
	if encoding != "console" {
		encoding = "json"
	}

	zapCfg := zap.Config{
		Level:            level,
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("构建 zap logger 失败: %w", err)
	}
	return &ZapLogger{base: base}, nil
}

// Logger 返回底层的 *zap.Logger。
func (l *ZapLogger) Logger() *zap.Logger {
	return l.base
}

func (l *ZapLogger) Debug(msg string, fields ...zap.Field) { l.base.Debug(msg, fields...) }
func (l *ZapLogger) Info(msg string, fields ...zap.Field)  { l.base.Info(msg, fields...) }
func (l *ZapLogger) Warn(msg string, fields ...zap.Field)  { l.base.Warn(msg, fields...) }
func (l *ZapLogger) Error(msg string, fields ...zap.Field) { l.base.Error(msg, fields...) }
func (l *ZapLogger) Fatal(msg string, fields ...zap.Field) { l.base.Fatal(msg, fields...) }
