package popup

import (
	"math"
	"testing"

	"github.com/tanema/gween"
)

func TestEaseBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"negative", -3, 0},
		{"above one", 2.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ease(tt.in); got != tt.want {
				t.Errorf("Ease(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got := InverseEase(tt.in); got != tt.want {
				t.Errorf("InverseEase(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEaseRoundTrip(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		got := InverseEase(Ease(x))
		if math.Abs(got-x) > 1e-9 {
			t.Fatalf("InverseEase(Ease(%v)) = %v", x, got)
		}
	}
}

func TestEaseMonotonic(t *testing.T) {
	prev := Ease(0)
	for i := 1; i <= 1000; i++ {
		v := Ease(float64(i) / 1000)
		if v < prev {
			t.Fatalf("Ease decreased at t=%v: %v < %v", float64(i)/1000, v, prev)
		}
		prev = v
	}
}

func TestEaseStaysInUnitRange(t *testing.T) {
	for i := -10; i <= 1010; i++ {
		x := float64(i) / 1000
		if v := Ease(x); v < 0 || v > 1 {
			t.Fatalf("Ease(%v) = %v, outside [0, 1]", x, v)
		}
		if v := InverseEase(x); v < 0 || v > 1 {
			t.Fatalf("InverseEase(%v) = %v, outside [0, 1]", x, v)
		}
	}
}

func TestEaseShortSlowStart(t *testing.T) {
	// The curve lags linear progress only briefly, then overtakes it.
	if v := Ease(0.1); v >= 0.1 {
		t.Errorf("Ease(0.1) = %v, want < 0.1", v)
	}
	if v := Ease(0.2); v <= 0.2 {
		t.Errorf("Ease(0.2) = %v, want > 0.2", v)
	}
	if v := Ease(0.6); v <= 0.6 {
		t.Errorf("Ease(0.6) = %v, want > 0.6", v)
	}
}

func TestEaseTweenDrivesGween(t *testing.T) {
	tw := gween.New(0, 100, 1, EaseTween)

	v, done := tw.Update(0.5)
	if done {
		t.Fatal("should not be done at halfway")
	}
	want := 100 * Ease(0.5)
	if math.Abs(float64(v)-want) > 0.01 {
		t.Errorf("value at halfway = %v, want ~%v", v, want)
	}

	v, done = tw.Update(0.5)
	if !done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(float64(v)-100) > 0.01 {
		t.Errorf("final value = %v, want 100", v)
	}
}
