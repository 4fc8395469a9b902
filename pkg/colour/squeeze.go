package colour

import (
	"cmp"
	"math"
)

// DefaultPrecision is the number of decimal places applied to channels built
// from HSL, HSB and 8-bit input.
const DefaultPrecision = 16

// Squeeze returns value if it lies within [lower, upper], otherwise the
// nearer bound. A value that is neither contained nor greater than upper
// (NaN) yields lower.
func Squeeze[T cmp.Ordered](value, lower, upper T) T {
	if value >= lower && value <= upper {
		return value
	}
	if value > upper {
		return upper
	}
	return lower
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, decimals int) float64 {
	divisor := math.Pow(10, float64(decimals))
	return math.Round(value*divisor) / divisor
}

// Rounded rounds value to DefaultPrecision.
func Rounded(value float64) float64 {
	return RoundTo(value, DefaultPrecision)
}

// FromWebChannel maps an 8-bit channel onto the unit range.
func FromWebChannel(value int) float64 {
	return Rounded(float64(Squeeze(value, 0, 255)) / 255)
}

// ToWebChannel maps a unit channel onto 0-255.
func ToWebChannel(value float64) int {
	return Squeeze(int(math.Round(unit(value)*255)), 0, 255)
}

func unit(value float64) float64 {
	return Squeeze(value, 0, 1)
}
