// Package kafka publishes audit events. When no brokers are configured the
// console producer keeps the pipeline observable in local development.
package kafka

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, key, value []byte) error
	Close() error
}

type WriterProducer struct {
	writer *kafkago.Writer
}

func NewWriterProducer(brokers []string, topic string) *WriterProducer {
	return &WriterProducer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			BatchTimeout: 100 * time.Millisecond,
			RequiredAcks: kafkago.RequireOne,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{Key: key, Value: value})
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer logs entries instead of publishing them.
type ConsoleProducer struct {
	logger *zap.Logger
}

func NewConsoleProducer(logger *zap.Logger) *ConsoleProducer {
	return &ConsoleProducer{logger: logger}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, key, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	p.logger.Info("audit event",
		zap.ByteString("key", key),
		zap.ByteString("value", value),
	)
	return nil
}

func (p *ConsoleProducer) Close() error {
	return nil
}
