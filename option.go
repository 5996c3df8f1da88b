package again

import "time"

// Option configures one Do invocation.
type Option func(*Config)

// WithDelay sets a fixed inter-attempt delay. Negative values are treated
// as zero.
func WithDelay(d time.Duration) Option {
	return func(c *Config) {
		c.Delay = Fixed(d)
	}
}

// WithDelayFunc sets the inter-attempt delay as a function of the attempt
// ordinal that just failed (1-based).
func WithDelayFunc(fn func(attempt int) time.Duration) Option {
	return func(c *Config) {
		c.Delay = DelayFunc(fn)
	}
}

// WithDelayPolicy sets a custom delay policy. A nil policy is ignored.
func WithDelayPolicy(p DelayPolicy) Option {
	return func(c *Config) {
		if p != nil {
			c.Delay = p
		}
	}
}

// WithMaxAttempts sets the maximum number of invocations of the operation.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.MaxAttempts = n
		}
	}
}

// WithTimeout bounds each individual attempt. If an attempt exceeds the
// timeout the whole call fails with ErrTimeout, regardless of the remaining
// attempt budget. Non-positive values are ignored, leaving the timeout
// disabled.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// WithOnError sets the error hook, invoked after every failed attempt before
// the retry/stop decision. The hook observes failures and may call Skip on
// its Attempt; it cannot suppress a failure. A panic inside the hook is not
// recovered and reaches the caller of Do in place of the terminal error.
func WithOnError(hook ErrorHook) Option {
	return func(c *Config) {
		c.OnError = hook
	}
}

// WithConfig replaces the whole configuration at once. Later options still
// apply on top of it.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		if cfg.Delay == nil {
			cfg.Delay = Fixed(DefaultDelay)
		}
		if cfg.MaxAttempts < 1 {
			cfg.MaxAttempts = DefaultMaxAttempts
		}
		*c = cfg
	}
}
