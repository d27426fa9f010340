// Package plot renders the dataset scatter charts as PNGs: the per-year raw
// series view and the temperature/attainment regression view.
package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	chartWidth  = 900
	chartHeight = 600

	marginLeft   = 80
	marginRight  = 30
	marginTop    = 50
	marginBottom = 50

	tickCount = 5
)

var (
	white     = color.RGBA{255, 255, 255, 255}
	black     = color.RGBA{0, 0, 0, 255}
	gridGray  = color.RGBA{220, 220, 220, 255}
	pointBlue = color.RGBA{31, 119, 180, 255}
	lineRed   = color.RGBA{214, 39, 40, 255}
)

// RegressionPNG renders the (temperature, attainment) scatter with the fitted
// line y = a + b*x drawn across the floor/ceil of the temperature range.
func RegressionPNG(x, y []float64, a, b float64, title, xLabel, yLabel string) ([]byte, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("regression plot needs equal-length non-empty series, got %d and %d", len(x), len(y))
	}

	img := newCanvas(chartWidth, chartHeight)

	ax := newAxes(image.Rect(marginLeft, marginTop, chartWidth-marginRight, chartHeight-marginBottom), x, y)
	ax.draw(img)

	// Fitted line first so points render on top of it.
	x0, y0 := ax.pixel(ax.xMin, a+b*ax.xMin)
	x1, y1 := ax.pixel(ax.xMax, a+b*ax.xMax)
	drawLine(img, x0, y0, x1, y1, lineRed)

	for i := range x {
		px, py := ax.pixel(x[i], y[i])
		drawPoint(img, px, py, pointBlue)
	}

	drawText(img, title, marginLeft, marginTop-20, black)
	drawText(img, xLabel, marginLeft, chartHeight-15, black)
	drawText(img, yLabel, 10, marginTop-20+16, black)

	return encode(img)
}

// SeriesPNG renders the two raw per-year series stacked vertically, the
// temperature panel above the attainment panel, sharing the year axis range.
func SeriesPNG(years []int, temps, values []float64, title, tempsLabel, valuesLabel string) ([]byte, error) {
	if len(years) == 0 || len(years) != len(temps) || len(years) != len(values) {
		return nil, fmt.Errorf("series plot needs equal-length non-empty series, got %d, %d and %d", len(years), len(temps), len(values))
	}

	xs := make([]float64, len(years))
	for i, year := range years {
		xs[i] = float64(year)
	}

	img := newCanvas(chartWidth, chartHeight)

	panelHeight := (chartHeight - marginTop - marginBottom - 40) / 2
	top := image.Rect(marginLeft, marginTop, chartWidth-marginRight, marginTop+panelHeight)
	bottom := image.Rect(marginLeft, top.Max.Y+40, chartWidth-marginRight, top.Max.Y+40+panelHeight)

	for _, panel := range []struct {
		rect  image.Rectangle
		ys    []float64
		label string
	}{
		{top, temps, tempsLabel},
		{bottom, values, valuesLabel},
	} {
		ax := newAxes(panel.rect, xs, panel.ys)
		ax.draw(img)
		for i := range xs {
			px, py := ax.pixel(xs[i], panel.ys[i])
			drawPoint(img, px, py, pointBlue)
		}
		drawText(img, panel.label, panel.rect.Min.X, panel.rect.Min.Y-8, black)
	}

	drawText(img, title, marginLeft, marginTop-25, black)
	drawText(img, "Year", marginLeft, chartHeight-15, black)

	return encode(img)
}

// axes maps data coordinates onto a pixel rectangle. Ranges are padded to the
// surrounding integers, matching how the original charts span the x axis.
type axes struct {
	rect       image.Rectangle
	xMin, xMax float64
	yMin, yMax float64
}

func newAxes(rect image.Rectangle, xs, ys []float64) axes {
	xMin, xMax := span(xs)
	yMin, yMax := span(ys)
	return axes{rect: rect, xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax}
}

func span(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	min, max = math.Floor(min), math.Ceil(max)
	if min == max {
		min, max = min-1, max+1
	}
	return min, max
}

func (a axes) pixel(x, y float64) (int, int) {
	px := a.rect.Min.X + int(float64(a.rect.Dx())*(x-a.xMin)/(a.xMax-a.xMin))
	py := a.rect.Max.Y - int(float64(a.rect.Dy())*(y-a.yMin)/(a.yMax-a.yMin))
	return px, py
}

func (a axes) draw(img *image.RGBA) {
	// Gridlines with tick labels, then the frame on top.
	for i := 0; i <= tickCount; i++ {
		frac := float64(i) / tickCount

		xv := a.xMin + frac*(a.xMax-a.xMin)
		px, _ := a.pixel(xv, a.yMin)
		vline(img, px, a.rect.Min.Y, a.rect.Max.Y, gridGray)
		drawText(img, formatTick(xv), px-10, a.rect.Max.Y+16, black)

		yv := a.yMin + frac*(a.yMax-a.yMin)
		_, py := a.pixel(a.xMin, yv)
		hline(img, a.rect.Min.X, a.rect.Max.X, py, gridGray)
		drawText(img, formatTick(yv), 10, py+4, black)
	}

	hline(img, a.rect.Min.X, a.rect.Max.X, a.rect.Max.Y, black)
	vline(img, a.rect.Min.X, a.rect.Min.Y, a.rect.Max.Y, black)
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func newCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, white)
		}
	}
	return img
}

func drawPoint(img *image.RGBA, cx, cy int, col color.RGBA) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			set(img, cx+dx, cy+dy, col)
		}
	}
}

// drawLine walks the longer axis one pixel at a time.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		set(img, x0, y0, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		set(img, x, y, col)
		set(img, x, y+1, col)
	}
}

func hline(img *image.RGBA, x0, x1, y int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		set(img, x, y, col)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, col color.RGBA) {
	for y := y0; y <= y1; y++ {
		set(img, x, y, col)
	}
}

func set(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

// drawText draws text with its baseline at (x, y) using the built-in face, so
// charts carry no font assets.
func drawText(img *image.RGBA, text string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
