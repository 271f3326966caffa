package contexts_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/golessons/lessons/contexts"
)

// ExampleSlowOperation: an already-cancelled context wins the select
// before the work timer gets a chance.
func ExampleSlowOperation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := contexts.SlowOperation(ctx, time.Hour)
	fmt.Println(err)
	// Output:
	// context canceled
}

func ExampleWithRequestID() {
	ctx := contexts.WithRequestID(context.Background(), "req-42")

	id, ok := contexts.RequestID(ctx)
	fmt.Println(id, ok)

	_, ok = contexts.RequestID(context.Background())
	fmt.Println(ok)
	// Output:
	// req-42 true
	// false
}
