// Example: websocket — re-dial a WebSocket endpoint until it connects.
//
// Usage:
//
//	WS_URL=wss://echo.websocket.events go run ./example/websocket
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hedeqiang/again"
)

func main() {
	url := os.Getenv("WS_URL")
	if url == "" {
		log.Fatal("WS_URL environment variable is required")
	}

	conn, err := again.Do(context.Background(), func(ctx context.Context, a *again.Attempt) (*websocket.Conn, error) {
		fmt.Printf("dialing %s (attempt %d)\n", url, a.Number())
		c, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		return c, err
	},
		again.WithMaxAttempts(5),
		again.WithTimeout(5*time.Second),
		again.WithDelayFunc(func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		}),
		again.WithOnError(again.LogHook(nil)),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("ping")); err != nil {
		log.Fatal(err)
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("received: %s\n", msg)
}
