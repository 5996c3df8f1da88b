// Example: ssh — retry an SSH dial, giving up early on authentication errors.
//
// Connection errors are worth retrying; a rejected password never improves,
// so the operation skips out of the loop as soon as it sees one.
//
// Usage:
//
//	SSH_ADDR=host:22 SSH_USER=user SSH_PASS=secret go run ./example/ssh
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hedeqiang/again"
	"golang.org/x/crypto/ssh"
)

func main() {
	addr := os.Getenv("SSH_ADDR")
	user := os.Getenv("SSH_USER")
	pass := os.Getenv("SSH_PASS")
	if addr == "" || user == "" {
		log.Fatal("SSH_ADDR and SSH_USER environment variables are required")
	}

	cfg := &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.Password(pass)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	}

	client, err := again.Do(context.Background(), func(ctx context.Context, a *again.Attempt) (*ssh.Client, error) {
		fmt.Printf("connecting to %s (attempt %d)\n", addr, a.Number())
		c, err := ssh.Dial("tcp", addr, cfg)
		if err != nil && strings.Contains(err.Error(), "unable to authenticate") {
			a.Skip(err)
		}
		return c, err
	},
		again.WithMaxAttempts(4),
		again.WithDelay(2*time.Second),
		again.WithOnError(again.LogHook(nil)),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	fmt.Println("connected:", string(client.ServerVersion()))
}
