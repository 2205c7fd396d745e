package checker

// metric records the outcome of one predicate evaluation: accepted is 1
// when the sample passed the requirement, elapsed is wall time in seconds.
type metric struct {
	accepted float64
	elapsed  float64
}

// window is a fixed-capacity record of the most recent metrics for one
// requirement, newest first. It starts full of zero metrics, so a
// requirement with no history scores 0 and gets tried early at least once.
type window struct {
	metrics []metric
}

func newWindow(size int) *window {
	return &window{metrics: make([]metric, size)}
}

// push inserts m as the newest metric and evicts the oldest.
func (w *window) push(m metric) {
	copy(w.metrics[1:], w.metrics)
	w.metrics[0] = m
}

// score is the mean acceptance fraction times the mean elapsed time over
// the window. Low means cheap and likely to reject.
func (w *window) score() float64 {
	var accepted, elapsed float64
	for _, m := range w.metrics {
		accepted += m.accepted
		elapsed += m.elapsed
	}
	n := float64(len(w.metrics))
	return (accepted / n) * (elapsed / n)
}
