package again

import "errors"

// ErrTimeout is the terminal error when a per-attempt timeout elapses before
// the operation completes. A timed-out attempt is never retried.
var ErrTimeout = errors.New("again: attempt timed out")
