package again

import (
	"log"
	"sync/atomic"
)

// ErrorHook is invoked after every failed attempt, before the retry/stop
// decision. The Attempt carries the post-increment ordinal (the 1-based count
// of failures observed so far) and the same Skip capability the operation
// sees; err is the failure that was just recorded.
type ErrorHook func(a *Attempt, err error)

// ChainHooks composes multiple hooks into one, invoking them in the order
// provided.
func ChainHooks(hooks ...ErrorHook) ErrorHook {
	return func(a *Attempt, err error) {
		for _, h := range hooks {
			h(a, err)
		}
	}
}

// LogHook returns a hook that logs each failure using the provided logger.
// If logger is nil, the default standard logger is used.
func LogHook(l *log.Logger) ErrorHook {
	if l == nil {
		l = log.Default()
	}
	return func(a *Attempt, err error) {
		l.Printf("[again] attempt=%d error: %v", a.Number(), err)
	}
}

// Stats collects basic counters for failed attempts.
type Stats struct {
	failures atomic.Uint64
	skips    atomic.Uint64
}

// Hook returns a hook that counts every failure, and every failure for which
// a skip had already been requested when the hook ran.
func (s *Stats) Hook() ErrorHook {
	return func(a *Attempt, err error) {
		s.failures.Add(1)
		if skip, _ := a.state.decision(); skip {
			s.skips.Add(1)
		}
	}
}

// Failures returns the number of failed attempts observed.
func (s *Stats) Failures() uint64 {
	return s.failures.Load()
}

// Skips returns the number of failures that already carried a skip request.
func (s *Stats) Skips() uint64 {
	return s.skips.Load()
}
