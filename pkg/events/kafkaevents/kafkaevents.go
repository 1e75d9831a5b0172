// Package kafkaevents provides an events.Publisher writing JSON messages to a
// kafka topic, keyed by assessment id so events of one assessment stay ordered.
package kafkaevents

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"vantage/pkg/events"

	"github.com/segmentio/kafka-go"
)

// Options configures the kafka writer.
type Options struct {
	Brokers []string
	Topic   string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements events.Publisher.
type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

var _ events.Publisher = (*Publisher)(nil)

// New creates a Publisher. Connections are established lazily on the first
// write.
func New(opts Options) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(opts.Brokers...),
		Topic:                  opts.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

func (p *Publisher) Publish(ctx context.Context, evs ...events.Event) error {
	if len(evs) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evs))
	for _, ev := range evs {
		if ev.OccurredAt.IsZero() {
			ev.OccurredAt = p.now().UTC()
		}
		value, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("could not marshal %s event: %w", ev.Type, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(int64(ev.AssessmentID), 10)),
			Value: value,
			Time:  ev.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(ev.Type)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("could not write events: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
