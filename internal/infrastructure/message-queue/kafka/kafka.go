package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alimikegami/bdseller-service/config"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const maxRetries = 3

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes domain events as JSON dto.KafkaMessage values.
type Producer struct {
	writer  messageWriter
	backoff time.Duration
}

func CreateKafkaProducer(config *config.Config) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}

	return &Producer{writer: writer, backoff: time.Second}
}

func (p *Producer) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		err = p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
		if err == nil {
			return nil
		}

		log.Ctx(ctx).Warn().Err(err).Str("component", "Publish").Msgf("failed to write Kafka message (attempt %d/%d)", i+1, maxRetries)
		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("failed to write Kafka message: %w", ctx.Err())
			case <-time.After(p.backoff * time.Duration(i+1)):
			}
		}
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxRetries, err)
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// NoopProducer stands in when no broker is configured.
type NoopProducer struct{}

func (NoopProducer) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	log.Ctx(ctx).Debug().Str("event_type", msg.EventType).Str("key", key).Msg("event not published, no broker configured")
	return nil
}

func (NoopProducer) Close() error {
	return nil
}
