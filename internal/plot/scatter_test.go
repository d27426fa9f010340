package plot

import (
	"bytes"
	"image/png"
	"testing"
)

func decodePNG(t *testing.T, data []byte) (width, height int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRegressionPNG(t *testing.T) {
	data, err := RegressionPNG(
		[]float64{5, 6, 7}, []float64{8, 8.5, 9},
		0, 1,
		"Canada: Average Temperature compared to Average Years of Schooling",
		"Average Temperature (Celsius)", "Average Years of Schooling")
	if err != nil {
		t.Fatalf("RegressionPNG() error = %v", err)
	}

	w, h := decodePNG(t, data)
	if w != chartWidth || h != chartHeight {
		t.Errorf("chart size = %dx%d, want %dx%d", w, h, chartWidth, chartHeight)
	}
}

func TestRegressionPNG_SinglePoint(t *testing.T) {
	// A single point still renders; the fitted line is the caller's concern.
	if _, err := RegressionPNG([]float64{5}, []float64{8}, 8, 0, "t", "x", "y"); err != nil {
		t.Fatalf("RegressionPNG() error = %v", err)
	}
}

func TestRegressionPNG_BadInput(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"empty", nil, nil},
		{"length mismatch", []float64{1, 2}, []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RegressionPNG(tt.x, tt.y, 0, 1, "t", "x", "y"); err == nil {
				t.Error("RegressionPNG() error = nil, want error")
			}
		})
	}
}

func TestSeriesPNG(t *testing.T) {
	data, err := SeriesPNG(
		[]int{1950, 1955, 1960},
		[]float64{5, 6, 7},
		[]float64{8, 8.5, 9},
		"Canada Climate-Education Attainment Relation (Ages 15 - 19)",
		"Avg Temp (Celsius)", "Average Years of Schooling")
	if err != nil {
		t.Fatalf("SeriesPNG() error = %v", err)
	}

	w, h := decodePNG(t, data)
	if w != chartWidth || h != chartHeight {
		t.Errorf("chart size = %dx%d, want %dx%d", w, h, chartWidth, chartHeight)
	}
}

func TestSeriesPNG_BadInput(t *testing.T) {
	if _, err := SeriesPNG(nil, nil, nil, "t", "a", "b"); err == nil {
		t.Error("SeriesPNG() error = nil, want error for empty input")
	}
	if _, err := SeriesPNG([]int{2000}, []float64{1, 2}, []float64{1}, "t", "a", "b"); err == nil {
		t.Error("SeriesPNG() error = nil, want error for mismatched lengths")
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantMin float64
		wantMax float64
	}{
		{"pads to surrounding integers", []float64{5.3, 6.1, 7.8}, 5, 8},
		{"already integral", []float64{5, 8}, 5, 8},
		{"constant series widens", []float64{4, 4}, 3, 5},
		{"negative values", []float64{-4.5, -1.2}, -5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := span(tt.values)
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("span(%v) = (%v, %v), want (%v, %v)", tt.values, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}
