// Package colour provides an immutable RGBA colour value with constructors
// for RGB, 8-bit RGB, HSB, HSL, hex and gray input, conversions between
// those models, blend operators and contrast heuristics.
//
// Every channel is kept in [0, 1]. Out-of-range and NaN input is clamped,
// never rejected. All operations return new values, so colours can be
// shared between goroutines freely.
//
// Derived behaviour is written against the Model interface:
//
//	c := colour.NewOpaque(0.2, 0.4, 0.8)
//	darker := colour.Darken(c, 0.1)
//	mixed := colour.BlendAverage(darker, colour.White)
//
// Conversions to HSL and HSB and back are lossy near achromatic colours and
// sector boundaries. Expect drift at the level of DefaultPrecision and
// compare with ApproxEqual rather than Equal after such round trips.
//
// The operators map onto the usual symbolic forms: BlendAverage is "+",
// BlendBounded is "-", Multiply/BlendWeighted is "*" and BlendDivide is "/".
package colour
