package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

type writerProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewProducer returns a kafka-backed producer, or a logging stand-in when
// no brokers are configured.
func NewProducer(brokers []string, logger *zap.Logger) Producer {
	if len(brokers) == 0 {
		logger.Info("Kafka brokers not configured, lifecycle events will only be logged")
		return &logProducer{logger: logger}
	}
	return &writerProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *writerProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
	})
}

func (p *writerProducer) Close() error {
	p.logger.Info("Closing Kafka producer")
	return p.writer.Close()
}

type logProducer struct {
	logger *zap.Logger
}

func (p *logProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	p.logger.Debug("kafka message (not sent)",
		zap.String("topic", topic),
		zap.ByteString("key", key),
		zap.ByteString("value", value),
	)
	return ctx.Err()
}

func (p *logProducer) Close() error { return nil }
