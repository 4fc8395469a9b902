package colour

import (
	"fmt"
	"math"
)

// HSL is the hue, saturation, luminosity form of a colour. Hue is
// normalised to [0, 1].
type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Luminosity float64 `json:"luminosity"`
}

// HSB is the hue, saturation, brightness (HSV) form of a colour. Hue is
// normalised to [0, 1].
type HSB struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

// Web holds 8-bit channels.
type Web struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// String returns the channels as "rgb(r, g, b)".
func (w Web) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", w.R, w.G, w.B)
}

// hueBoundaryBias nudges the three hue lookups so that exact sector
// boundaries always resolve to the same side.
const hueBoundaryBias = 0.0000000000000003

// ToHSL derives hue, saturation and luminosity. Achromatic colours report
// hue and saturation 0.
func ToHSL(c Components) HSL {
	r, g, b := c.Red(), c.Green(), c.Blue()
	maximum := max(r, g, b)
	minimum := min(r, g, b)
	l := (maximum + minimum) / 2

	if maximum == minimum {
		return HSL{Luminosity: l}
	}

	d := maximum - minimum
	var s float64
	if l > 0.5 {
		s = d / (2 - maximum - minimum)
	} else {
		s = d / (maximum + minimum)
	}

	var h float64
	switch maximum {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}

	return HSL{Hue: h / 6, Saturation: s, Luminosity: l}
}

// ToHSB derives hue, saturation and brightness. Achromatic colours report
// hue 0.
func ToHSB(c Components) HSB {
	r, g, b := c.Red(), c.Green(), c.Blue()
	maximum := max(r, g, b)
	minimum := min(r, g, b)
	d := maximum - minimum

	var h float64
	if d != 0 {
		switch {
		case maximum == r && g >= b:
			h = 60 * (g - b) / d
		case maximum == r && g < b:
			h = 60*(g-b)/d + 360
		case maximum == g:
			h = 60*(b-r)/d + 120
		case maximum == b:
			h = 60*(r-g)/d + 240
		}
	}

	var s float64
	if maximum != 0 {
		s = 1 - minimum/maximum
	}

	return HSB{Hue: h / 360, Saturation: s, Brightness: maximum}
}

// ToWeb returns the 8-bit channels of c.
func ToWeb(c Components) Web {
	return Web{
		R: ToWebChannel(c.Red()),
		G: ToWebChannel(c.Green()),
		B: ToWebChannel(c.Blue()),
	}
}

// HexComponents returns the two-digit uppercase hex form of each channel.
func HexComponents(c Components) [3]string {
	w := ToWeb(c)
	return [3]string{
		fmt.Sprintf("%02X", w.R),
		fmt.Sprintf("%02X", w.G),
		fmt.Sprintf("%02X", w.B),
	}
}

// Hex returns c as "RRGGBB". Alpha is not included.
func Hex(c Components) string {
	h := HexComponents(c)
	return h[0] + h[1] + h[2]
}

// Packed returns c as a 32-bit ARGB integer.
func Packed(c Components) uint32 {
	w := ToWeb(c)
	a := uint32(ToWebChannel(c.Alpha()))
	return a<<24 | uint32(w.R)<<16 | uint32(w.G)<<8 | uint32(w.B)
}

func hsbToRGB(hue, saturation, brightness float64) (r, g, b float64) {
	h := unit(hue)
	s := unit(saturation)
	v := unit(brightness)

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return Rounded(r), Rounded(g), Rounded(b)
}

func hslToRGB(hue, saturation, luminosity float64) (r, g, b float64) {
	h, s, l := hue, saturation, luminosity
	if s == 0 {
		return Rounded(l), Rounded(l), Rounded(l)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r = unit(hueToChannel(p, q, h+1.0/3-hueBoundaryBias))
	g = unit(hueToChannel(p, q, h) + hueBoundaryBias)
	b = unit(hueToChannel(p, q, h-1.0/3+hueBoundaryBias))

	return Rounded(r), Rounded(g), Rounded(b)
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	t = unit(t)

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
