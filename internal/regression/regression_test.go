package regression

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestLinear_PerfectFit(t *testing.T) {
	a, b := Linear([]float64{1, 2, 3}, []float64{2, 4, 6})

	if math.Abs(a-0) > tolerance {
		t.Errorf("intercept = %v, want 0", a)
	}
	if math.Abs(b-2) > tolerance {
		t.Errorf("slope = %v, want 2", b)
	}
}

func TestLinear_KnownFit(t *testing.T) {
	// y = 1 + 0.5x with symmetric noise that cancels in the least-squares sums.
	x := []float64{0, 2, 4, 6}
	y := []float64{1.1, 1.9, 3.1, 3.9}

	a, b := Linear(x, y)
	if math.Abs(a-1.06) > tolerance {
		t.Errorf("intercept = %v, want 1.06", a)
	}
	if math.Abs(b-0.48) > tolerance {
		t.Errorf("slope = %v, want 0.48", b)
	}
}

func TestLinear_NegativeSlope(t *testing.T) {
	a, b := Linear([]float64{10, 20, 30}, []float64{5, 3, 1})

	if math.Abs(b-(-0.2)) > tolerance {
		t.Errorf("slope = %v, want -0.2", b)
	}
	if math.Abs(a-7) > tolerance {
		t.Errorf("intercept = %v, want 7", a)
	}
}

func TestLinear_ZeroVarianceX(t *testing.T) {
	// Degenerate by contract: all-equal x divides by zero; the result follows
	// float semantics rather than panicking.
	a, b := Linear([]float64{5, 5, 5}, []float64{1, 2, 3})

	if !math.IsNaN(b) && !math.IsInf(b, 0) {
		t.Errorf("slope = %v, want NaN or Inf for zero-variance x", b)
	}
	if !math.IsNaN(a) && !math.IsInf(a, 0) {
		t.Errorf("intercept = %v, want NaN or Inf for zero-variance x", a)
	}
}

func TestPredict(t *testing.T) {
	if got := Predict(1, 2, 3); got != 7 {
		t.Errorf("Predict(1, 2, 3) = %v, want 7", got)
	}
}

func TestDegenerate(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		want bool
	}{
		{"valid input", []float64{1, 2, 3}, []float64{2, 4, 6}, false},
		{"two distinct points", []float64{1, 2}, []float64{1, 1}, false},
		{"empty", nil, nil, true},
		{"single point", []float64{1}, []float64{2}, true},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, true},
		{"all-equal x", []float64{5, 5, 5}, []float64{1, 2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Degenerate(tt.x, tt.y); got != tt.want {
				t.Errorf("Degenerate(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
