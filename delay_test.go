package again

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	f := Fixed(150 * time.Millisecond)

	assert.Equal(t, 150*time.Millisecond, f.Delay(1))
	assert.Equal(t, 150*time.Millisecond, f.Delay(100))
}

func TestDelayFunc(t *testing.T) {
	fn := DelayFunc(func(attempt int) time.Duration {
		return time.Duration(attempt) * time.Second
	})

	assert.Equal(t, time.Second, fn.Delay(1))
	assert.Equal(t, 3*time.Second, fn.Delay(3))
}
