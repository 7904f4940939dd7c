package model

import "math"

// EMU is a length in English Metric Units.
type EMU int64

const (
	// EMUPerInch is the number of EMUs in one inch.
	EMUPerInch = 914400
	// EMUPerPoint is the number of EMUs in one typographic point.
	EMUPerPoint = 12700
	// EMUPerPixel is the number of EMUs in one pixel at 96 DPI.
	EMUPerPixel = 9525
)

// Inches converts a length in inches to EMU, rounding to the nearest unit.
func Inches(in float64) EMU {
	return EMU(math.Round(in * EMUPerInch))
}

// Pt converts a length in points to EMU, rounding to the nearest unit.
func Pt(pt float64) EMU {
	return EMU(math.Round(pt * EMUPerPoint))
}

// Inches returns the length in inches.
func (e EMU) Inches() float64 {
	return float64(e) / EMUPerInch
}

// Points returns the length in points.
func (e EMU) Points() float64 {
	return float64(e) / EMUPerPoint
}

// Pixels returns the length in pixels at the given DPI.
func (e EMU) Pixels(dpi float64) float64 {
	return float64(e) / EMUPerInch * dpi
}

// Centipoints converts a size in points to hundredths of a point, the unit
// used for font sizes and paragraph spacing in DrawingML.
func Centipoints(pt float64) int {
	return int(math.Round(pt * 100))
}

// Angle converts degrees to the 60000ths of a degree used by DrawingML
// rotations.
func Angle(deg float64) int {
	return int(math.Round(deg * 60000))
}
