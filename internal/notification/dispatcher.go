package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sharath018/event-management-backend/config"
)

// Dispatcher queues an announcement for delivery. Dispatch must not block
// on delivery itself.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
	Close() error
}

// NewDispatcher publishes to Kafka when brokers are configured and
// otherwise delivers in-process.
func NewDispatcher(cfg *config.Config, deliverer Deliverer) Dispatcher {
	if len(cfg.KafkaBrokers) > 0 {
		log.Printf("📡 Announcements go to Kafka topic %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
		return NewKafkaDispatcher(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	return NewInlineDispatcher(deliverer)
}

// ===========================
// 🧵 Inline

// InlineDispatcher delivers each message on its own goroutine.
type InlineDispatcher struct {
	deliverer Deliverer
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewInlineDispatcher(d Deliverer) *InlineDispatcher {
	return &InlineDispatcher{deliverer: d, timeout: 2 * time.Minute}
}

func (d *InlineDispatcher) Dispatch(_ context.Context, msg Message) error {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		// The request context ends with the response; delivery outlives it.
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.deliverer.Deliver(ctx, msg); err != nil {
			log.Printf("❌ Announcement %s delivery failed: %v", msg.AnnouncementID, err)
		}
	}()
	return nil
}

// Close waits for in-flight deliveries.
func (d *InlineDispatcher) Close() error {
	d.wg.Wait()
	return nil
}

// ===========================
// 📡 Kafka

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaDispatcher publishes announcements as JSON keyed by event id.
type KafkaDispatcher struct {
	writer messageWriter
}

func NewKafkaDispatcher(brokers []string, topic string) *KafkaDispatcher {
	return &KafkaDispatcher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}}
}

func (d *KafkaDispatcher) Dispatch(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode announcement: %w", err)
	}
	if err := d.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.EventID),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("publish announcement: %w", err)
	}
	return nil
}

func (d *KafkaDispatcher) Close() error {
	return d.writer.Close()
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// StartKafkaConsumer reads announcements from the topic and delivers them
// until ctx is cancelled. It returns immediately when no brokers are set.
func StartKafkaConsumer(ctx context.Context, cfg *config.Config, deliverer Deliverer) {
	if len(cfg.KafkaBrokers) == 0 {
		return
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		GroupID:  cfg.KafkaGroupID,
		Topic:    cfg.KafkaTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	log.Printf("🎧 Kafka consumer listening on %s (group %s)", cfg.KafkaTopic, cfg.KafkaGroupID)
	go consume(ctx, reader, deliverer)
}

func consume(ctx context.Context, reader messageReader, deliverer Deliverer) {
	defer reader.Close()
	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("⚠️ Kafka read failed: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		var msg Message
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			log.Printf("⚠️ Skipping malformed announcement at offset %d: %v", m.Offset, err)
			continue
		}
		if err := deliverer.Deliver(ctx, msg); err != nil {
			log.Printf("❌ Announcement %s delivery failed: %v", msg.AnnouncementID, err)
		}
	}
}
