package kafkaevents

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vantage/pkg/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)

	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true

	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w)
	now := time.Date(2025, 5, 4, 3, 2, 1, 0, time.UTC)
	p.now = func() time.Time { return now }

	err := p.Publish(context.Background(),
		events.Event{Type: events.TypeSubmitted, AssessmentID: 12},
		events.Event{Type: events.TypeValidated, AssessmentID: 12, Payload: map[string]string{"barangay": "San Isidro"}},
	)
	require.NoError(t, err)
	require.Len(t, w.msgs, 2)

	msg := w.msgs[1]
	require.Equal(t, "12", string(msg.Key))
	require.Equal(t, now, msg.Time)
	require.Equal(t, []kafka.Header{{Key: "event-type", Value: []byte("assessment.validated")}}, msg.Headers)

	var decoded struct {
		Type         string            `json:"type"`
		AssessmentID int64             `json:"assessment_id"`
		OccurredAt   time.Time         `json:"occurred_at"`
		Payload      map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, "assessment.validated", decoded.Type)
	require.Equal(t, int64(12), decoded.AssessmentID)
	require.True(t, decoded.OccurredAt.Equal(now))
	require.Equal(t, "San Isidro", decoded.Payload["barangay"])

	require.NoError(t, p.Close())
	require.True(t, w.closed)
}

func TestPublisher_Errors(t *testing.T) {
	boom := errors.New("broker down")
	p := newPublisher(&fakeWriter{err: boom})

	require.NoError(t, p.Publish(context.Background()))

	err := p.Publish(context.Background(), events.Event{Type: events.TypeClassified, AssessmentID: 1})
	require.ErrorIs(t, err, boom)

	err = p.Publish(context.Background(), events.Event{Type: events.TypeClassified, Payload: func() {}})
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	var p events.Publisher = events.Discard{}
	require.NoError(t, p.Publish(context.Background(), events.Event{Type: events.TypeSubmitted}))
	require.NoError(t, p.Close())
}
