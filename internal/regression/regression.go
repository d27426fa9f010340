// Package regression implements closed-form single-variable ordinary least
// squares.
package regression

// Linear fits y = a + b*x by ordinary least squares and returns (a, b).
// No validation is performed: fewer than two points or an all-equal x gives a
// zero denominator and the result follows float division semantics (NaN/Inf).
// Callers guard with Degenerate before fitting.
func Linear(x, y []float64) (a, b float64) {
	xMean := mean(x)
	yMean := mean(y)

	var num, den float64
	for i := range x {
		num += (x[i] - xMean) * (y[i] - yMean)
		den += (x[i] - xMean) * (x[i] - xMean)
	}

	b = num / den
	a = yMean - b*xMean
	return a, b
}

// Predict evaluates the fitted line at x.
func Predict(a, b, x float64) float64 {
	return a + b*x
}

// Degenerate reports whether Linear would divide by zero on this input:
// mismatched lengths, fewer than two points, or zero variance in x.
func Degenerate(x, y []float64) bool {
	if len(x) != len(y) || len(x) < 2 {
		return true
	}
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
