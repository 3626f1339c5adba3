package scale

import "testing"

func TestBoundCoversEveryElement(t *testing.T) {
	cases := [][]float64{
		{3, 7, 2},
		{0.1, 0.4},
		{12},
		{0, 0, 0},
		{},
	}
	for _, values := range cases {
		b := Bound(values)
		if b < 1 {
			t.Errorf("Bound(%v) = %v, want >= 1", values, b)
		}
		for _, v := range values {
			if b < v {
				t.Errorf("Bound(%v) = %v, smaller than element %v", values, b, v)
			}
		}
	}
}

func TestBoundAllZeroFloor(t *testing.T) {
	if got := Bound([]float64{0, 0, 0}); got != 1 {
		t.Errorf("expected floor of 1 for all-zero batch, got %v", got)
	}
}

func TestProportionClampAndMonotonic(t *testing.T) {
	bound := Bound([]float64{5, 10, 20})
	prev := -1.0
	for _, v := range []float64{0, 5, 10, 20} {
		p := Proportion(v, bound)
		if p < 0 || p > 1 {
			t.Fatalf("Proportion(%v, %v) = %v outside [0,1]", v, bound, p)
		}
		if p < prev {
			t.Fatalf("Proportion not monotonic: %v after %v", p, prev)
		}
		prev = p
	}
	if Proportion(40, bound) != 1 {
		t.Error("values above the bound should clamp to 1")
	}
	if Proportion(-3, bound) != 0 {
		t.Error("negative values should clamp to 0")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(6, 20, 0); got != 6 {
		t.Errorf("Lerp(6,20,0) = %v", got)
	}
	if got := Lerp(6, 20, 1); got != 20 {
		t.Errorf("Lerp(6,20,1) = %v", got)
	}
	if got := Lerp(6, 20, 0.5); got != 13 {
		t.Errorf("Lerp(6,20,0.5) = %v", got)
	}
}
