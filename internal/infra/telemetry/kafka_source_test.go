package telemetry

import (
	"context"
	"testing"

	"tracker/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader replays queued messages, then blocks until the context is cancelled
type fakeReader struct {
	queue     []kafka.Message
	committed []kafka.Message
	fetchErr  error
	closed    bool
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.queue) == 0 {
		if r.fetchErr != nil {
			return kafka.Message{}, r.fetchErr
		}
		r.cancel()
		<-ctx.Done()

		return kafka.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]

	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)

	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true

	return nil
}

func TestKafkaSource_ConsumeCommitsEveryMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafka.Message{
			{Topic: "tracker.telemetry", Partition: 0, Offset: 7, Value: []byte(`{"device":"SDABC"}`)},
			{Topic: "tracker.telemetry", Partition: 1, Offset: 3, Value: []byte(`not json`)},
		},
	}
	source := &kafkaSource{reader: reader, topic: "tracker.telemetry", logger: discardLogger()}

	var handled []*service.TelemetryMessage
	err := source.Consume(ctx, func(_ context.Context, msg *service.TelemetryMessage) error {
		handled = append(handled, msg)
		if msg.ID == "tracker.telemetry/1/3" {
			return errors.New("malformed")
		}

		return nil
	})

	require.NoError(t, err)
	require.Len(t, handled, 2)
	assert.Equal(t, "tracker.telemetry/0/7", handled[0].ID)
	assert.Equal(t, `{"device":"SDABC"}`, string(handled[0].Data))
	assert.Len(t, reader.committed, 2)
}

func TestKafkaSource_ConsumeFetchError(t *testing.T) {
	reader := &fakeReader{fetchErr: errors.New("broker unavailable")}
	source := &kafkaSource{reader: reader, topic: "tracker.telemetry", logger: discardLogger()}

	err := source.Consume(context.Background(), func(context.Context, *service.TelemetryMessage) error {
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestKafkaSource_Close(t *testing.T) {
	reader := &fakeReader{}
	source := &kafkaSource{reader: reader, logger: discardLogger()}

	require.NoError(t, source.Close())
	assert.True(t, reader.closed)
}

func TestFromKafkaMessage_Headers(t *testing.T) {
	msg := fromKafkaMessage(kafka.Message{
		Topic:     "tracker.telemetry",
		Partition: 2,
		Offset:    11,
		Headers:   []kafka.Header{{Key: "Message-Id", Value: []byte("abc-123")}},
	})

	assert.Equal(t, "tracker.telemetry/2/11", msg.ID)
	assert.Equal(t, "tracker.telemetry", msg.Subject)
	assert.Equal(t, map[string]string{"Message-Id": "abc-123"}, msg.Headers)
}
