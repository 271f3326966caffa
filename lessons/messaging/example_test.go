package messaging_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/golessons/lessons/messaging"
)

func ExampleEncodeEvent() {
	ev := messaging.Event{
		ID:      "evt-0001",
		Kind:    "signup",
		At:      time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC),
		Payload: map[string]any{"plan": "pro"},
	}
	wire, _ := messaging.EncodeEvent(ev)
	fmt.Println(string(wire))

	back, _ := messaging.DecodeEvent(wire)
	fmt.Println(back.ID, back.Kind, back.At.Format(time.RFC3339))
	// Output:
	// {"id":"evt-0001","kind":"signup","at":"2024-03-15T14:30:45Z","payload":{"plan":"pro"}}
	// evt-0001 signup 2024-03-15T14:30:45Z
}
