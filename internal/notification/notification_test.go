package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-management-backend/config"
)

type recordingDeliverer struct {
	mu   sync.Mutex
	msgs []Message
}

func (r *recordingDeliverer) Deliver(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *recordingDeliverer) delivered() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.msgs...)
}

func sample() Message {
	return Message{
		EventID:        "e1",
		EventName:      "Go Meetup",
		AnnouncementID: "a1",
		Text:           "Doors open at 6pm",
		Recipients:     []string{"a@x.io", "b@x.io", "c@x.io"},
	}
}

func TestInlineDispatcher(t *testing.T) {
	rec := &recordingDeliverer{}
	d := NewInlineDispatcher(rec)

	require.NoError(t, d.Dispatch(context.Background(), sample()))
	require.NoError(t, d.Close())

	got := rec.delivered()
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].AnnouncementID)
}

func TestNewDispatcher_DefaultsToInline(t *testing.T) {
	d := NewDispatcher(config.Defaults(), LogDeliverer{})
	_, ok := d.(*InlineDispatcher)
	assert.True(t, ok)
}

type fakeWriter struct {
	msgs []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeReader struct {
	msgs []kafka.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) Close() error { return nil }

func TestKafkaRoundTrip(t *testing.T) {
	w := &fakeWriter{}
	d := &KafkaDispatcher{writer: w}
	require.NoError(t, d.Dispatch(context.Background(), sample()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "e1", string(w.msgs[0].Key))

	reader := &fakeReader{msgs: []kafka.Message{{Value: []byte("not json")}, w.msgs[0]}}
	rec := &recordingDeliverer{}
	consume(context.Background(), reader, rec)

	got := rec.delivered()
	require.Len(t, got, 1)
	assert.Equal(t, sample().Recipients, got[0].Recipients)
	assert.Equal(t, "Doors open at 6pm", got[0].Text)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, "a1", decoded["announcementId"])
}

func TestEmailSender_Batches(t *testing.T) {
	cfg := config.Defaults()
	cfg.SMTPHost = "smtp.example.com"
	cfg.SMTPFromEmail = "events@example.com"
	sender := NewEmailSender(cfg)
	sender.BatchSize = 2

	var batches [][]string
	var bodies []string
	sender.send = func(addr string, to []string, message []byte) error {
		assert.Equal(t, "smtp.example.com:587", addr)
		batches = append(batches, to)
		bodies = append(bodies, string(message))
		return nil
	}

	require.NoError(t, sender.Deliver(context.Background(), sample()))
	assert.Equal(t, [][]string{{"a@x.io", "b@x.io"}, {"c@x.io"}}, batches)
	assert.True(t, strings.Contains(bodies[0], "Doors open at 6pm"))
	assert.True(t, strings.Contains(bodies[0], "From: Event Desk <events@example.com>"))
}

func TestEmailSender_ReportsFailures(t *testing.T) {
	cfg := config.Defaults()
	cfg.SMTPHost = "smtp.example.com"
	sender := NewEmailSender(cfg)
	sender.send = func(string, []string, []byte) error { return io.ErrUnexpectedEOF }

	err := sender.Deliver(context.Background(), sample())
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestNewDeliverer(t *testing.T) {
	cfg := config.Defaults()
	_, ok := NewDeliverer(cfg).(LogDeliverer)
	assert.True(t, ok)

	cfg.SMTPHost = "smtp.example.com"
	_, ok = NewDeliverer(cfg).(*EmailSender)
	assert.True(t, ok)
}
