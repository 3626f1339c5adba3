// Package anim drives the eased 0→target counter transitions behind every
// stat card, and precomputes their keyframes for the built pages.
package anim

import (
	"context"
	"math"
	"time"

	"github.com/ebochsler/personal-site/internal/trigger"
)

// Duration is how long every counter takes to reach its target.
const Duration = 1200 * time.Millisecond

// State tracks a counter through its lifecycle.
type State int

const (
	StateIdle State = iota
	StateAnimating
	StateSettled
)

// EaseOutCubic maps linear progress to decelerating visual progress.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Counter animates a single numeric value from zero to Target. Counters are
// independent: each carries its own start time, there is no shared clock.
type Counter struct {
	Target float64
	Style  Style

	state   State
	started time.Time
	arm     *trigger.Trigger
	cancel  context.CancelFunc
}

// NewCounter returns an idle counter armed by a one-shot visibility trigger
// at the given threshold.
func NewCounter(target float64, style Style, threshold float64) *Counter {
	c := &Counter{Target: target, Style: style}
	c.arm = trigger.New(threshold, nil)
	return c
}

// Observe feeds a visibility ratio. The first observation at or above the
// threshold starts the animation; later ones are ignored.
func (c *Counter) Observe(ratio float64, now time.Time) {
	if c.arm.Observe(ratio) {
		c.Start(now)
	}
}

// Start begins animating. Restarting cancels any in-flight playback loop so
// only one draw loop per counter can be outstanding.
func (c *Counter) Start(now time.Time) {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = StateAnimating
	c.started = now
}

// Step computes the displayed value at the given instant. Once elapsed time
// reaches Duration the counter settles on the exactly formatted target.
func (c *Counter) Step(now time.Time) (string, bool) {
	switch c.state {
	case StateIdle:
		return c.Style.Render(0), false
	case StateSettled:
		return c.Style.Render(c.Target), true
	}
	progress := float64(now.Sub(c.started)) / float64(Duration)
	if progress >= 1 {
		c.state = StateSettled
		return c.Style.Render(c.Target), true
	}
	return c.Style.Render(c.Target * EaseOutCubic(progress)), false
}

// State returns the counter's current lifecycle state.
func (c *Counter) State() State { return c.state }

// Play runs the animation against a real clock, delivering each frame to
// sink and returning once the counter settles or ctx is cancelled. Starting
// a new Play cancels the previous loop first.
func (c *Counter) Play(ctx context.Context, interval time.Duration, sink func(string)) error {
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	defer cancel()

	c.state = StateAnimating
	c.started = time.Now()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			frame, settled := c.Step(now)
			sink(frame)
			if settled {
				return nil
			}
		}
	}
}

// Keyframes samples the eased transition at the given frame rate for
// embedding in a built page. The final frame is always the exactly
// formatted target.
func Keyframes(target float64, style Style, fps int) []string {
	if fps <= 0 {
		fps = 30
	}
	total := int(math.Ceil(Duration.Seconds() * float64(fps)))
	frames := make([]string, 0, total+1)
	for i := 0; i < total; i++ {
		progress := float64(i) / float64(total)
		frames = append(frames, style.Render(target*EaseOutCubic(progress)))
	}
	frames = append(frames, style.Render(target))
	return frames
}
