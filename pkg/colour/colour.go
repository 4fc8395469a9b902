package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Components is the read side shared by every colour value. Channels are in
// the unit range.
type Components interface {
	Red() float64
	Green() float64
	Blue() float64
	Alpha() float64
}

// Model is a concrete colour type that can rebuild itself from four unit
// channels. The blend and conversion functions in this package are written
// against Model so every implementation gets them.
type Model[T any] interface {
	Components
	With(red, green, blue, alpha float64) T
}

// RGBA is an immutable colour with an opacity channel.
//
// The zero value is transparent black (all channels 0) and equals Clear.
// NewOpaque and the HSB/HSL/hex/8-bit constructors default to alpha 1; only
// New and the zero value produce transparent colours by default.
type RGBA struct {
	r, g, b, a float64
}

// New returns a colour with every channel squeezed into [0, 1].
func New(red, green, blue, alpha float64) RGBA {
	return RGBA{r: unit(red), g: unit(green), b: unit(blue), a: unit(alpha)}
}

// NewOpaque returns a fully opaque colour.
func NewOpaque(red, green, blue float64) RGBA {
	return New(red, green, blue, 1)
}

// Gray replicates value across the three colour channels.
func Gray(value, alpha float64) RGBA {
	return New(value, value, value, alpha)
}

// FromWeb builds a colour from 8-bit channels. Each channel is clamped to
// 0-255 independently; alpha stays in the unit range.
func FromWeb(red, green, blue int, alpha float64) RGBA {
	return New(FromWebChannel(red), FromWebChannel(green), FromWebChannel(blue), alpha)
}

// FromHex parses "#RGB", "RGB", "#RRGGBB" or "RRGGBB" (case-insensitive).
// The boolean is false, and the colour zero, for any other input.
func FromHex(hex string, alpha float64) (RGBA, bool) {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return RGBA{}, false
	}
	return FromWeb(r, g, b, alpha), true
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	code, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(code>>16) & 0xFF, int(code>>8) & 0xFF, int(code) & 0xFF, true
}

// FromHSB builds a colour from hue, saturation and brightness, all in [0, 1].
func FromHSB(hue, saturation, brightness, alpha float64) RGBA {
	r, g, b := hsbToRGB(hue, saturation, brightness)
	return New(r, g, b, Rounded(alpha))
}

// FromHSL builds a colour from hue, saturation and luminosity. Saturation is
// not clamped on input: values above 1 over-saturate before the channels
// are squeezed.
func FromHSL(hue, saturation, luminosity, alpha float64) RGBA {
	r, g, b := hslToRGB(hue, saturation, luminosity)
	return New(r, g, b, Rounded(alpha))
}

// FromComponents copies any colour value into an RGBA.
func FromComponents(c Components) RGBA {
	if v, ok := c.(RGBA); ok {
		return v
	}
	return New(c.Red(), c.Green(), c.Blue(), c.Alpha())
}

// FromSlice reads red, green, blue and an optional alpha (default 1).
// Missing colour channels read as 0.
func FromSlice(values []float64) RGBA {
	ch := [4]float64{0, 0, 0, 1}
	copy(ch[:], values)
	return New(ch[0], ch[1], ch[2], ch[3])
}

// Coalesce returns *c, or fallback when c is nil.
func Coalesce(c *RGBA, fallback RGBA) RGBA {
	if c == nil {
		return fallback
	}
	return *c
}

func (c RGBA) Red() float64   { return c.r }
func (c RGBA) Green() float64 { return c.g }
func (c RGBA) Blue() float64  { return c.b }
func (c RGBA) Alpha() float64 { return c.a }

// With implements Model.
func (c RGBA) With(red, green, blue, alpha float64) RGBA {
	return New(red, green, blue, alpha)
}

// Equal reports whether all four channels are exactly equal.
func (c RGBA) Equal(o Components) bool {
	return equal(c, o)
}

// HSL returns the hue, saturation and luminosity of c.
func (c RGBA) HSL() HSL { return ToHSL(c) }

// HSB returns the hue, saturation and brightness of c.
func (c RGBA) HSB() HSB { return ToHSB(c) }

// Web returns the 8-bit channels of c.
func (c RGBA) Web() Web { return ToWeb(c) }

// Hex returns the uppercase RRGGBB form of c, without alpha.
func (c RGBA) Hex() string { return Hex(c) }

// String returns the colour as "rgba(r, g, b, a)" with 8-bit channels.
func (c RGBA) String() string {
	w := ToWeb(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", w.R, w.G, w.B, c.a)
}

// RGB is the alpha-less variant of RGBA. Alpha always reads as 1.
type RGB struct {
	r, g, b float64
}

// NewRGB returns a colour with every channel squeezed into [0, 1].
func NewRGB(red, green, blue float64) RGB {
	return RGB{r: unit(red), g: unit(green), b: unit(blue)}
}

func (c RGB) Red() float64   { return c.r }
func (c RGB) Green() float64 { return c.g }
func (c RGB) Blue() float64  { return c.b }
func (c RGB) Alpha() float64 { return 1 }

// With implements Model. Alpha is discarded.
func (c RGB) With(red, green, blue, _ float64) RGB {
	return NewRGB(red, green, blue)
}

// Equal reports whether the colour channels and alpha are exactly equal.
func (c RGB) Equal(o Components) bool {
	return equal(c, o)
}

// RGBA returns c with full opacity.
func (c RGB) RGBA() RGBA { return New(c.r, c.g, c.b, 1) }

// HSL returns the hue, saturation and luminosity of c.
func (c RGB) HSL() HSL { return ToHSL(c) }

// HSB returns the hue, saturation and brightness of c.
func (c RGB) HSB() HSB { return ToHSB(c) }

// Hex returns c as "RRGGBB".
func (c RGB) Hex() string { return Hex(c) }

// String returns the colour as "rgb(r, g, b)" with 8-bit channels.
func (c RGB) String() string {
	w := ToWeb(c)
	return fmt.Sprintf("rgb(%d, %d, %d)", w.R, w.G, w.B)
}

func equal(a, b Components) bool {
	return a.Red() == b.Red() &&
		a.Green() == b.Green() &&
		a.Blue() == b.Blue() &&
		a.Alpha() == b.Alpha()
}

// ApproxEqual reports whether every channel of a and b differs by at most
// tolerance. Use it for values that went through HSL/HSB or blend maths.
func ApproxEqual(a, b Components, tolerance float64) bool {
	return math.Abs(a.Red()-b.Red()) <= tolerance &&
		math.Abs(a.Green()-b.Green()) <= tolerance &&
		math.Abs(a.Blue()-b.Blue()) <= tolerance &&
		math.Abs(a.Alpha()-b.Alpha()) <= tolerance
}
