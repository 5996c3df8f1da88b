package again

import "time"

// Named defaults applied when the corresponding option is absent.
const (
	// DefaultMaxAttempts is the attempt budget used when WithMaxAttempts
	// is not given.
	DefaultMaxAttempts = 5

	// DefaultDelay is the inter-attempt delay used when no delay option
	// is given.
	DefaultDelay = 100 * time.Millisecond
)

// Config holds the configuration for one Do invocation. It is assembled from
// options and never mutated afterward.
type Config struct {
	// Delay determines the wait between a failed attempt and the next one.
	Delay DelayPolicy

	// MaxAttempts is the maximum number of invocations of the operation.
	MaxAttempts int

	// Timeout, when positive, bounds each individual attempt. Zero
	// disables the per-attempt timeout.
	Timeout time.Duration

	// OnError, when non-nil, is invoked after every failed attempt,
	// before the retry/stop decision.
	OnError ErrorHook
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		Delay:       Fixed(DefaultDelay),
		MaxAttempts: DefaultMaxAttempts,
	}
}
