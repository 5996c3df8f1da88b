package again

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, DefaultDelay, cfg.Delay.Delay(1))
	assert.Zero(t, cfg.Timeout)
	assert.Nil(t, cfg.OnError)
}

func TestWithMaxAttempts_IgnoresNonPositive(t *testing.T) {
	cfg := DefaultConfig()

	WithMaxAttempts(0)(&cfg)
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)

	WithMaxAttempts(-3)(&cfg)
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)

	WithMaxAttempts(7)(&cfg)
	assert.Equal(t, 7, cfg.MaxAttempts)
}

func TestWithTimeout_IgnoresNonPositive(t *testing.T) {
	cfg := DefaultConfig()

	WithTimeout(-time.Second)(&cfg)
	assert.Zero(t, cfg.Timeout)

	WithTimeout(time.Second)(&cfg)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestWithDelay(t *testing.T) {
	cfg := DefaultConfig()

	WithDelay(250 * time.Millisecond)(&cfg)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay.Delay(1))
	assert.Equal(t, 250*time.Millisecond, cfg.Delay.Delay(9))
}

func TestWithDelayPolicy_IgnoresNil(t *testing.T) {
	cfg := DefaultConfig()

	WithDelayPolicy(nil)(&cfg)
	require.NotNil(t, cfg.Delay)
	assert.Equal(t, DefaultDelay, cfg.Delay.Delay(1))

	WithDelayPolicy(Fixed(time.Second))(&cfg)
	assert.Equal(t, time.Second, cfg.Delay.Delay(1))
}

func TestWithConfig_FillsZeroValues(t *testing.T) {
	cfg := DefaultConfig()

	WithConfig(Config{})(&cfg)
	require.NotNil(t, cfg.Delay)
	assert.Equal(t, DefaultDelay, cfg.Delay.Delay(1))
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
}

func TestWithConfig_ThenOverride(t *testing.T) {
	cfg := DefaultConfig()

	WithConfig(Config{Delay: Fixed(time.Second), MaxAttempts: 2})(&cfg)
	WithMaxAttempts(9)(&cfg)

	assert.Equal(t, time.Second, cfg.Delay.Delay(1))
	assert.Equal(t, 9, cfg.MaxAttempts)
}
