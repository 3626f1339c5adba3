package anim

import (
	"context"
	"testing"
	"time"
)

func TestEaseOutCubicEndpoints(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("EaseOutCubic(0) = %v", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("EaseOutCubic(1) = %v", got)
	}
	// Decelerating: first half covers more than half the distance.
	if got := EaseOutCubic(0.5); got <= 0.5 {
		t.Errorf("EaseOutCubic(0.5) = %v, want > 0.5", got)
	}
}

func TestCounterSettlesOnExactTarget(t *testing.T) {
	cases := []struct {
		target float64
		style  Style
		want   string
	}{
		{128.3, Style{Format: FormatPlain, Decimals: 1}, "128.3"},
		{15230, Style{Format: FormatGrouped}, "15,230"},
		{87, Style{Format: FormatZeroDecimal}, "87"},
		{8.75, Style{Format: FormatPace}, "8:45"},
	}
	start := time.Now()
	for _, c := range cases {
		ctr := NewCounter(c.target, c.style, 0.4)
		ctr.Start(start)
		got, settled := ctr.Step(start.Add(Duration))
		if !settled {
			t.Fatalf("counter did not settle after full duration")
		}
		if got != c.want {
			t.Errorf("settled value = %q, want %q", got, c.want)
		}
		if ctr.State() != StateSettled {
			t.Errorf("state = %v, want settled", ctr.State())
		}
	}
}

func TestCounterIdleUntilTriggered(t *testing.T) {
	ctr := NewCounter(100, Style{Format: FormatZeroDecimal}, 0.4)
	now := time.Now()

	ctr.Observe(0.1, now)
	if ctr.State() != StateIdle {
		t.Fatal("counter started below its threshold")
	}
	if got, _ := ctr.Step(now); got != "0" {
		t.Errorf("idle counter should display 0, got %q", got)
	}

	ctr.Observe(0.5, now)
	if ctr.State() != StateAnimating {
		t.Fatal("counter did not start at threshold")
	}
}

func TestCounterMonotonicFrames(t *testing.T) {
	ctr := NewCounter(500, Style{Format: FormatPlain, Decimals: 2}, 0.4)
	start := time.Now()
	ctr.Start(start)

	prev := -1.0
	for elapsed := time.Duration(0); elapsed <= Duration; elapsed += 100 * time.Millisecond {
		progress := float64(elapsed) / float64(Duration)
		v := 500 * EaseOutCubic(progress)
		if v < prev {
			t.Fatalf("eased value decreased: %v after %v", v, prev)
		}
		prev = v
	}
}

func TestKeyframesEndOnFormattedTarget(t *testing.T) {
	frames := Keyframes(15230, Style{Format: FormatGrouped}, 30)
	if len(frames) == 0 {
		t.Fatal("no frames")
	}
	if frames[0] != "0" {
		t.Errorf("first frame = %q, want %q", frames[0], "0")
	}
	if last := frames[len(frames)-1]; last != "15,230" {
		t.Errorf("last frame = %q, want %q", last, "15,230")
	}

	pace := Keyframes(10.999, Style{Format: FormatPace}, 10)
	if last := pace[len(pace)-1]; last != "11:00" {
		t.Errorf("pace last frame = %q, want %q", last, "11:00")
	}
}

func TestPlayDeliversFramesAndSettles(t *testing.T) {
	ctr := NewCounter(10, Style{Format: FormatZeroDecimal}, 0.4)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var frames []string
	err := ctr.Play(ctx, 50*time.Millisecond, func(s string) { frames = append(frames, s) })
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(frames) == 0 {
		t.Fatal("no frames delivered")
	}
	if frames[len(frames)-1] != "10" {
		t.Errorf("final frame = %q, want %q", frames[len(frames)-1], "10")
	}
	if ctr.State() != StateSettled {
		t.Errorf("state after Play = %v, want settled", ctr.State())
	}
}
