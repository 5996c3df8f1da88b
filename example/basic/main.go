// Example: basic — retry an HTTP GET with the default configuration.
//
// Usage:
//
//	go run ./example/basic
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hedeqiang/again"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body, err := again.Do(ctx, func(ctx context.Context, a *again.Attempt) ([]byte, error) {
		fmt.Printf("attempt %d\n", a.Number())

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://example.com", nil)
		if err != nil {
			// Building the request can never get better; stop retrying.
			a.Skip(err)
			return nil, err
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	},
		again.WithMaxAttempts(3),
		again.WithDelay(500*time.Millisecond),
		again.WithOnError(again.LogHook(nil)),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("fetched %d bytes\n", len(body))
}
