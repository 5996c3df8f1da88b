// Package again retries a single fallible operation until it succeeds,
// runs out of attempts, is told to stop, or times out.
//
// Again — one operation, driven until it lands.
//
// Usage:
//
//	resp, err := again.Do(ctx, func(ctx context.Context, a *again.Attempt) (*http.Response, error) {
//	    return client.Get(url)
//	},
//	    again.WithMaxAttempts(3),
//	    again.WithDelay(200*time.Millisecond),
//	)
//
// The operation receives an *Attempt carrying the 1-based attempt number and
// a Skip capability. Calling Skip stops the loop after the current attempt's
// failure has been processed, optionally replacing the surfaced error.
package again

import (
	"context"
	"sync"
	"time"
)

// Operation is the caller-supplied fallible operation. When a per-attempt
// timeout is configured the context is derived with that timeout, so a
// well-behaved operation can stop early; otherwise it is the context passed
// to Do.
type Operation[T any] func(ctx context.Context, a *Attempt) (T, error)

// Attempt is the per-invocation context handed to the operation and to the
// error hook. A fresh Attempt is constructed for every invocation; it must
// not be retained afterward.
type Attempt struct {
	number int
	state  *runState
}

// Number returns the 1-based ordinal of the current invocation. Inside the
// operation it reads 1, 2, 3, ...; inside the error hook it reads the count
// of failures observed so far, i.e. 2, 3, 4, ... for the same attempts.
func (a *Attempt) Number() int {
	return a.number
}

// Skip requests that no further attempts be made, even if the current one
// fails. The request latches: once made it cannot be withdrawn. The override
// error, when non-nil, replaces the attempt's own error as the terminal
// error; nil is allowed and surfaces the attempt's error instead. Calling
// Skip again overwrites the recorded override.
func (a *Attempt) Skip(override error) {
	a.state.mu.Lock()
	a.state.skipRequested = true
	a.state.override = override
	a.state.mu.Unlock()
}

// runState is mutable state scoped to one Do invocation. The mutex guards the
// skip decision: an abandoned (timed-out) operation may still call Skip from
// its own goroutine while the loop inspects the decision.
type runState struct {
	attempts int
	lastErr  error

	mu            sync.Mutex
	skipRequested bool
	override      error
}

// decision returns the latched skip request and override under the lock.
func (s *runState) decision() (skip bool, override error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skipRequested, s.override
}

// Do invokes op until it returns a nil error, waiting out the configured
// delay between failed attempts. It returns the first successful value, or a
// single terminal error: the last attempt's own error, the override recorded
// via Skip, or ErrTimeout when a per-attempt timeout fired.
//
// A timed-out attempt is never retried; the whole call fails with ErrTimeout
// regardless of the remaining attempt budget. The timed-out operation's
// context is cancelled, but the operation itself is abandoned, not awaited:
// whatever it eventually returns is discarded, and it may still be running
// or holding resources when Do returns.
//
// Cancelling ctx during the inter-attempt delay aborts the call with
// ctx.Err().
func Do[T any](ctx context.Context, op Operation[T], opts ...Option) (T, error) {
	var zero T
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	state := runState{attempts: 1}
	for {
		// Delay for the upcoming failure is computed from the ordinal
		// about to be attempted, before any increment.
		delay := cfg.Delay.Delay(state.attempts)
		if delay < 0 {
			delay = 0
		}

		val, err := runAttempt(ctx, cfg, op, &state)
		if err == nil {
			return val, nil
		}

		state.lastErr = err
		state.attempts++

		if cfg.OnError != nil {
			cfg.OnError(&Attempt{number: state.attempts, state: &state}, err)
		}

		if skip, override := state.decision(); skip {
			if override != nil {
				return zero, override
			}
			return zero, state.lastErr
		}

		if state.attempts > cfg.MaxAttempts {
			return zero, state.lastErr
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

// Run is Do for operations that produce no value.
func Run(ctx context.Context, op func(ctx context.Context, a *Attempt) error, opts ...Option) error {
	_, err := Do(ctx, func(ctx context.Context, a *Attempt) (struct{}, error) {
		return struct{}{}, op(ctx, a)
	}, opts...)
	return err
}

// runAttempt performs one invocation of op, racing it against the per-attempt
// timeout when one is configured. A timeout latches the skip request so the
// loop terminates after processing the failure.
func runAttempt[T any](ctx context.Context, cfg Config, op Operation[T], state *runState) (T, error) {
	a := &Attempt{number: state.attempts, state: state}

	if cfg.Timeout <= 0 {
		return op(ctx, a)
	}

	actx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := op(actx, a)
		done <- result{val: v, err: err}
	}()

	timer := time.NewTimer(cfg.Timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.val, r.err
	case <-timer.C:
		var zero T
		state.mu.Lock()
		state.skipRequested = true
		state.mu.Unlock()
		return zero, ErrTimeout
	}
}
