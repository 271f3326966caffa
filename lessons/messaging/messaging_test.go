package messaging_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/messaging"
)

func TestLessonMetadata(t *testing.T) {
	l := messaging.Lesson()
	assert.Equal(t, 35, l.Number)
	assert.Equal(t, "messaging", l.Slug)
	assert.Equal(t, curriculum.PartEngineering, l.Part)
	require.NoError(t, l.Validate())
}

func TestEventCodecRoundTrip(t *testing.T) {
	ev := messaging.Event{
		ID:      "evt-0042",
		Kind:    "upgrade",
		At:      time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC),
		Payload: map[string]any{"plan": "enterprise", "seats": float64(25)},
	}

	wire, err := messaging.EncodeEvent(ev)
	require.NoError(t, err)

	back, err := messaging.DecodeEvent(wire)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, back.ID)
	assert.Equal(t, ev.Kind, back.Kind)
	assert.True(t, ev.At.Equal(back.At))
	assert.Equal(t, ev.Payload, back.Payload)
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	_, err := messaging.DecodeEvent([]byte(`{"id":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "messaging: decode event")
}

func TestBrokersParsesEnv(t *testing.T) {
	t.Setenv(messaging.EnvBrokers, "kafka-1:9092, kafka-2:9092 ,")
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, messaging.Brokers())
}

func TestBrokersEmptyMeansOffline(t *testing.T) {
	t.Setenv(messaging.EnvBrokers, "")
	os.Unsetenv(messaging.EnvBrokers)
	assert.Nil(t, messaging.Brokers())
}

func TestNewWriterConfiguration(t *testing.T) {
	w := messaging.NewWriter([]string{"localhost:9092"}, "golessons.events")
	defer w.Close()

	assert.Equal(t, "golessons.events", w.Topic)
	assert.True(t, w.AllowAutoTopicCreation)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.Contains(t, w.Addr.String(), "localhost:9092")
}

func TestNewReaderConfiguration(t *testing.T) {
	r := messaging.NewReader([]string{"localhost:9092"}, "golessons.events", "golessons-demo")
	defer r.Close()

	cfg := r.Config()
	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
	assert.Equal(t, "golessons.events", cfg.Topic)
	assert.Equal(t, "golessons-demo", cfg.GroupID)
}

func TestLiveRoundTripRequiresBrokers(t *testing.T) {
	_, err := messaging.LiveRoundTrip(context.Background(), nil, "golessons.events")
	require.ErrorIs(t, err, messaging.ErrNoBrokers)
}

// TestLiveRoundTrip needs a reachable broker; it only runs when
// GOLESSONS_KAFKA points at one.
func TestLiveRoundTrip(t *testing.T) {
	brokers := messaging.Brokers()
	if len(brokers) == 0 {
		t.Skipf("%s not set", messaging.EnvBrokers)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic := fmt.Sprintf("golessons.events.%d", time.Now().UnixNano())
	events, err := messaging.LiveRoundTrip(ctx, brokers, topic)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "evt-0001", events[0].ID)
	assert.Equal(t, "signup", events[0].Kind)
}

func TestRunWritesDemonstration(t *testing.T) {
	t.Setenv(messaging.EnvBrokers, "")
	os.Unsetenv(messaging.EnvBrokers)

	var buf bytes.Buffer
	require.NoError(t, messaging.Run(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Messaging with Kafka")
	assert.Contains(t, out, `EncodeEvent -> {"id":"evt-0001","kind":"signup","at":"2024-03-15T14:30:45Z","payload":{"plan":"pro"}}`)
	assert.Contains(t, out, "round trip preserves ID    => true")
	assert.Contains(t, out, "live mode                  => false")
	assert.Contains(t, out, "at-least-once")
	assert.Contains(t, out, "Consumer groups share the work")
	assert.NotContains(t, out, "consumed evt-")
}
