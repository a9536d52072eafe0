package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(250 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	assert.Equal(t, 0.0, c.Delta(t0), "first frame has no delta")
	assert.InDelta(t, 16.0, c.Delta(t0.Add(16*time.Millisecond)), 1e-9)
	assert.Equal(t, 0.0, c.Delta(t0), "earlier timestamp yields zero")
	assert.InDelta(t, 4.0, c.Delta(t0.Add(20*time.Millisecond)), 1e-9)
	assert.Equal(t, 250.0, c.Delta(t0.Add(10*time.Second)), "long gaps are clamped")

	c.Reset()
	assert.Equal(t, 0.0, c.Delta(t0.Add(time.Hour)))
}

func TestMaxDeltaFromMillis(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, MaxDeltaFromMillis(250))
}
