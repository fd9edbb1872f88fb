package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_service/config"
	"github.com/Xushengqwer/image_service/core"
	"github.com/Xushengqwer/image_service/mq/events"
)

// KafkaProducer 图片生命周期事件的 Kafka 生产者。
// 下游（相册同步、统计等）按主题消费；发送失败只记日志不回滚业务。
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// Close 关闭底层 writer，优雅停机时调用。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendImageUploadedEvent 发送图片上传完成事件
// - 输入: data 为新图片的核心数据（ID、归属、尺寸、标签）
func (p *KafkaProducer) SendImageUploadedEvent(ctx context.Context, data events.ImageData) error {
	event := events.ImageUploadedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Image:     data,
	}
	return p.SendEvent(ctx, p.topics.ImageUploaded, event)
}

// SendImageEditedEvent 发送图片编辑完成事件
// - 还原操作也走本事件，Operations 为空表示编辑产物已被清除
func (p *KafkaProducer) SendImageEditedEvent(ctx context.Context, imageID, userID uint64, operations json.RawMessage) error {
	event := events.ImageEditedEvent{
		EventID:    uuid.New().String(),
		Timestamp:  time.Now(),
		ImageID:    imageID,
		UserID:     userID,
		Operations: operations,
	}
	return p.SendEvent(ctx, p.topics.ImageEdited, event)
}

// SendImageDeletedEvent 发送图片删除事件
func (p *KafkaProducer) SendImageDeletedEvent(ctx context.Context, imageID, userID uint64) error {
	event := events.ImageDeletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		ImageID:   imageID,
		UserID:    userID,
	}
	return p.SendEvent(ctx, p.topics.ImageDeleted, event)
}
