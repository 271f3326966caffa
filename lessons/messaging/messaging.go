package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"github.com/katalvlaran/golessons/curriculum"
)

// EnvBrokers names the environment variable that switches the lesson
// into live mode: a comma-separated Kafka broker list.
const EnvBrokers = "GOLESSONS_KAFKA"

// ErrNoBrokers reports an attempt to go live without any brokers.
var ErrNoBrokers = errors.New("messaging: no brokers configured")

// Event is the message shape this lesson ships around.
type Event struct {
	ID      string         `json:"id"`
	Kind    string         `json:"kind"`
	At      time.Time      `json:"at"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Brokers returns the configured broker list, or nil when the lesson
// should stay offline.
func Brokers() []string {
	raw := strings.TrimSpace(os.Getenv(EnvBrokers))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

// EncodeEvent renders ev as its JSON wire form.
func EncodeEvent(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("messaging: encode event: %w", err)
	}
	return data, nil
}

// DecodeEvent parses the JSON wire form back into an Event.
func DecodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("messaging: decode event: %w", err)
	}
	return ev, nil
}

// NewWriter builds a producer for topic. Keys route messages: equal
// keys always land on the same partition, which is what preserves
// per-key ordering.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// NewReader builds a consumer in group, starting from the earliest
// retained offset so the lesson sees what it just produced.
func NewReader(brokers []string, topic, group string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     group,
		MinBytes:    1,
		MaxBytes:    10 << 20,
		MaxWait:     500 * time.Millisecond,
		StartOffset: kafka.FirstOffset,
	})
}

// Publish encodes ev and writes it with its ID as the message key.
func Publish(ctx context.Context, w *kafka.Writer, ev Event) error {
	value, err := EncodeEvent(ev)
	if err != nil {
		return err
	}
	err = w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(ev.ID),
		Value:   value,
		Headers: []kafka.Header{{Key: "kind", Value: []byte(ev.Kind)}},
	})
	if err != nil {
		return fmt.Errorf("messaging: publish %s: %w", ev.ID, err)
	}
	return nil
}

// Consume reads and decodes n events, blocking until they arrive or ctx
// ends.
func Consume(ctx context.Context, r *kafka.Reader, n int) ([]Event, error) {
	events := make([]Event, 0, n)
	for len(events) < n {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			return events, fmt.Errorf("messaging: read message: %w", err)
		}
		ev, err := DecodeEvent(msg.Value)
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// LiveRoundTrip publishes three events to topic and consumes them back.
// It needs a reachable broker and is only called when EnvBrokers is set.
func LiveRoundTrip(ctx context.Context, brokers []string, topic string) ([]Event, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	w := NewWriter(brokers, topic)
	defer w.Close()

	at := time.Now().UTC()
	for i, kind := range []string{"signup", "upgrade", "churn"} {
		ev := Event{ID: fmt.Sprintf("evt-%04d", i+1), Kind: kind, At: at}
		if err := Publish(ctx, w, ev); err != nil {
			return nil, err
		}
	}

	r := NewReader(brokers, topic, "golessons-demo")
	defer r.Close()
	return Consume(ctx, r, 3)
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   35,
		Slug:     "messaging",
		Title:    "Messaging with Kafka",
		Part:     curriculum.PartEngineering,
		Synopsis: "topics, keys, producers, consumer groups, delivery semantics",
		Topics:   []string{"kafka-go", "producers", "consumer groups", "offsets", "at-least-once"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(ctx context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Messaging with Kafka")

	nb.Step("The mental model")
	nb.Say("A topic is a named, append-only log split into partitions.")
	nb.Say("Producers append; consumers read at their own pace, tracking")
	nb.Say("progress as an offset per partition. Nothing is popped: the")
	nb.Say("log retains messages for a configured time, not until read.")

	nb.Step("An event and its wire form")
	ev := Event{
		ID:   "evt-0001",
		Kind: "signup",
		At:   time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC),
		Payload: map[string]any{
			"plan": "pro",
		},
	}
	wire, err := EncodeEvent(ev)
	if err != nil {
		return err
	}
	nb.Sayf("EncodeEvent -> %s", wire)
	back, err := DecodeEvent(wire)
	if err != nil {
		return err
	}
	nb.Show("round trip preserves ID", back.ID == ev.ID && back.Kind == ev.Kind)
	nb.Say("The codec is goccy/go-json, a drop-in stdlib replacement that")
	nb.Say("earns its keep at broker throughput.")

	nb.Step("Producer anatomy")
	nb.Say("kafka.Writer{Addr: kafka.TCP(brokers...), Topic: ...,")
	nb.Say("             Balancer: &kafka.Hash{}}")
	nb.Say("The balancer picks a partition. Hash-by-key keeps every event")
	nb.Say("for one entity on one partition, and order is only promised")
	nb.Say("within a partition. Writes batch for BatchTimeout before they")
	nb.Say("fly; RequiredAcks trades latency against durability.")

	nb.Step("Consumer groups share the work")
	nb.Say("Readers with the same GroupID split the partitions between")
	nb.Say("them; add a reader and the group rebalances. Offsets are")
	nb.Say("committed per group, so two groups read the same topic")
	nb.Say("independently, each at its own position.")

	nb.Step("Delivery is a contract, not a default")
	nb.Say("at-most-once  - commit before processing; crashes drop work")
	nb.Say("at-least-once - process before commit; crashes repeat work")
	nb.Say("exactly-once  - transactions or idempotent handlers on top")
	nb.Say("kafka-go's ReadMessage path is at-least-once: write handlers")
	nb.Say("that tolerate seeing the same event twice.")

	nb.Step("Going live")
	brokers := Brokers()
	nb.Show("live mode", brokers != nil)
	if brokers == nil {
		nb.Sayf("set %s=localhost:9092 to run the round trip against a", EnvBrokers)
		nb.Say("real broker; everything above stays exactly the same.")
	} else {
		events, err := LiveRoundTrip(ctx, brokers, "golessons.events")
		if err != nil {
			return err
		}
		for _, got := range events {
			nb.Sayf("consumed %s (%s)", got.ID, got.Kind)
		}
	}

	nb.Takeaways(
		"partitions are the unit of ordering and of parallelism",
		"choose message keys for the entities whose order matters",
		"consumer groups scale reads without coordination in your code",
		"design handlers for at-least-once; duplicates will happen",
	)
	return nb.Err()
}
