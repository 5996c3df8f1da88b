// Example: backoff — supply your own exponential delay function.
//
// The library ships no backoff policies; the delay is whatever the caller's
// DelayFunc computes from the attempt ordinal.
//
// Usage:
//
//	go run ./example/backoff
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hedeqiang/again"
)

func main() {
	start := time.Now()

	err := again.Run(context.Background(), func(ctx context.Context, a *again.Attempt) error {
		fmt.Printf("attempt %d at +%s\n", a.Number(), time.Since(start).Round(time.Millisecond))
		return errors.New("still flaky")
	},
		again.WithMaxAttempts(4),
		again.WithDelayFunc(func(attempt int) time.Duration {
			// 100ms, 200ms, 400ms, ...
			return 100 * time.Millisecond << (attempt - 1)
		}),
	)

	fmt.Println("gave up:", err)
}
