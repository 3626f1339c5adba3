// Package trigger provides the one-shot visibility trigger that arms every
// animated component: a callback fires exactly once when its target first
// becomes sufficiently visible, then the trigger detaches itself.
package trigger

// Trigger fires its callback the first time an observed visibility ratio
// reaches the threshold. Further observations are ignored.
type Trigger struct {
	threshold float64
	fired     bool
	fn        func()
}

// New returns a trigger with the given intersection-ratio threshold.
// Thresholds are chosen per component (reveals, bar cascades, counters),
// not globally.
func New(threshold float64, fn func()) *Trigger {
	return &Trigger{threshold: threshold, fn: fn}
}

// Observe feeds a visibility ratio to the trigger and reports whether the
// callback fired on this observation.
func (t *Trigger) Observe(ratio float64) bool {
	if t.fired || ratio < t.threshold {
		return false
	}
	t.fired = true
	if t.fn != nil {
		t.fn()
	}
	return true
}

// Fired reports whether the trigger has already gone off.
func (t *Trigger) Fired() bool { return t.fired }

// Threshold returns the configured intersection-ratio threshold.
func (t *Trigger) Threshold() float64 { return t.threshold }
