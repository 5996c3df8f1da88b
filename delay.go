package again

import "time"

// DelayPolicy determines the wait between a failed attempt and the next try.
// The attempt argument is the 1-based ordinal of the attempt that just ran,
// not the one about to run: the first failure asks for Delay(1), the second
// for Delay(2), and so on.
type DelayPolicy interface {
	Delay(attempt int) time.Duration
}

// Fixed is a DelayPolicy that waits the same duration after every failure.
type Fixed time.Duration

// Delay returns the fixed duration regardless of the attempt ordinal.
func (f Fixed) Delay(int) time.Duration {
	return time.Duration(f)
}

// DelayFunc adapts an ordinal-to-duration function into a DelayPolicy.
// Callers use it to supply their own backoff shape; the library ships none.
type DelayFunc func(attempt int) time.Duration

// Delay invokes the function with the attempt ordinal.
func (fn DelayFunc) Delay(attempt int) time.Duration {
	return fn(attempt)
}
