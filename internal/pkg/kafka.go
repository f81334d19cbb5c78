package pkg

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// ActivityEvent mirrors one synthetic write made by a simulator. Consumers
// use it to watch demo traffic without polling the database.
type ActivityEvent struct {
	Kind     string `json:"kind"` // marketplace / shout
	Category string `json:"category,omitempty"`
	Title    string `json:"title,omitempty"`
	Message  string `json:"message,omitempty"`
	UserID   uint64 `json:"user_id"`
	Date     string `json:"date"`
}

type ActivityProducer struct {
	writer *kafka.Writer
}

// NewActivityProducer returns nil when no brokers are configured; a nil
// producer drops events silently.
func NewActivityProducer(brokers []string, topic string) *ActivityProducer {
	if len(brokers) == 0 {
		return nil
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &ActivityProducer{writer: w}
}

func (p *ActivityProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Publish keys events by owning user so one user's activity stays ordered
// within a partition.
func (p *ActivityProducer) Publish(ctx context.Context, ev ActivityEvent) error {
	if p == nil {
		return nil
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(ev.UserID, 10)),
		Value: value,
	})
}
