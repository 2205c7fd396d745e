package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowStartsZeroed(t *testing.T) {
	w := newWindow(4)
	assert.Len(t, w.metrics, 4)
	assert.Zero(t, w.score())
}

func TestWindowPushEvictsOldest(t *testing.T) {
	w := newWindow(3)
	w.push(metric{accepted: 1, elapsed: 0.1})
	w.push(metric{accepted: 0, elapsed: 0.2})
	w.push(metric{accepted: 1, elapsed: 0.3})
	w.push(metric{accepted: 1, elapsed: 0.4})

	// Newest first, the 0.1 entry evicted.
	assert.Equal(t, []metric{
		{accepted: 1, elapsed: 0.4},
		{accepted: 1, elapsed: 0.3},
		{accepted: 0, elapsed: 0.2},
	}, w.metrics)
}

func TestWindowScoreIsMeanAcceptTimesMeanTime(t *testing.T) {
	w := newWindow(2)
	w.push(metric{accepted: 1, elapsed: 0.01})

	// mean accepted = 0.5, mean elapsed = 0.005
	assert.InDelta(t, 0.0025, w.score(), 1e-12)

	w.push(metric{accepted: 1, elapsed: 0.03})
	// mean accepted = 1, mean elapsed = 0.02
	assert.InDelta(t, 0.02, w.score(), 1e-12)
}
