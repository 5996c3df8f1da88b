// Example: timeout — bound each attempt with a per-attempt timeout.
//
// A timed-out attempt is never retried: the whole call fails with
// again.ErrTimeout no matter how many attempts remain.
//
// Usage:
//
//	go run ./example/timeout
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hedeqiang/again"
)

func main() {
	_, err := again.Do(context.Background(), func(ctx context.Context, a *again.Attempt) (string, error) {
		fmt.Printf("attempt %d: working...\n", a.Number())
		select {
		case <-time.After(2 * time.Second):
			return "done", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	},
		again.WithTimeout(500*time.Millisecond),
		again.WithMaxAttempts(10),
	)

	if errors.Is(err, again.ErrTimeout) {
		fmt.Println("attempt timed out, call failed immediately:", err)
	}
}
