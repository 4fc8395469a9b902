package colour

const (
	// DefaultMidpoint weights both operands of a quadratic blend equally.
	DefaultMidpoint = 0.5

	// DefaultSaturationBoost is the saturation applied after DarkBlend and
	// BrightBlend.
	DefaultSaturationBoost = 1.75
)

// BlendAverage averages every channel, alpha included.
func BlendAverage[T Model[T]](a T, b Components) T {
	return a.With(
		(a.Red()+b.Red())/2,
		(a.Green()+b.Green())/2,
		(a.Blue()+b.Blue())/2,
		(a.Alpha()+b.Alpha())/2,
	)
}

// BlendBounded adds every channel, alpha included, capped at 1.
func BlendBounded[T Model[T]](a T, b Components) T {
	return a.With(
		min(a.Red()+b.Red(), 1),
		min(a.Green()+b.Green(), 1),
		min(a.Blue()+b.Blue(), 1),
		min(a.Alpha()+b.Alpha(), 1),
	)
}

// BlendWeighted mixes the squared channels of a and b, weighting b by
// midpoint. Alpha is interpolated linearly.
func BlendWeighted[T Model[T]](a T, b Components, midpoint float64) T {
	mix := func(x, y float64) float64 {
		return (1-midpoint)*x*x + midpoint*y*y
	}
	return a.With(
		mix(a.Red(), b.Red()),
		mix(a.Green(), b.Green()),
		mix(a.Blue(), b.Blue()),
		(1-midpoint)*a.Alpha()+midpoint*b.Alpha(),
	)
}

// Multiply is BlendWeighted at DefaultMidpoint.
func Multiply[T Model[T]](a T, b Components) T {
	return BlendWeighted(a, b, DefaultMidpoint)
}

// Blended is the opaque form of BlendWeighted: the colour channels are mixed
// the same way but the alpha of a is kept.
func Blended[T Model[T]](a T, b Components, midpoint float64) T {
	mix := func(x, y float64) float64 {
		return unit((1-midpoint)*x*x + midpoint*y*y)
	}
	return a.With(
		mix(a.Red(), b.Red()),
		mix(a.Green(), b.Green()),
		mix(a.Blue(), b.Blue()),
		a.Alpha(),
	)
}

// BlendDivide multiplies a with the inverse of b.
func BlendDivide[T Model[T]](a T, b Components) T {
	return Multiply(a, Invert(FromComponents(b)))
}

// Invert replaces every colour channel with 1 - channel. Alpha is kept.
func Invert[T Model[T]](c T) T {
	return Transform(c, func(v float64) float64 { return 1 - v })
}

// WithInversion maps every colour channel to 1 - channel*amount.
func WithInversion[T Model[T]](c T, amount float64) T {
	return Transform(c, func(v float64) float64 { return 1 - v*amount })
}

// Transform applies fn to the colour channels of c. Alpha is kept.
func Transform[T Model[T]](c T, fn func(float64) float64) T {
	return c.With(unit(fn(c.Red())), unit(fn(c.Green())), unit(fn(c.Blue())), c.Alpha())
}

// WithHue replaces the HSL hue of c.
func WithHue[T Model[T]](c T, hue float64) T {
	hsl := ToHSL(c)
	return fromHSL(c, hue, hsl.Saturation, hsl.Luminosity)
}

// WithSaturation replaces the HSL saturation of c. Values above 1 amplify.
func WithSaturation[T Model[T]](c T, saturation float64) T {
	hsl := ToHSL(c)
	return fromHSL(c, hsl.Hue, saturation, hsl.Luminosity)
}

// WithLuminosity replaces the HSL luminosity of c.
func WithLuminosity[T Model[T]](c T, luminosity float64) T {
	hsl := ToHSL(c)
	return fromHSL(c, hsl.Hue, hsl.Saturation, luminosity)
}

// WithBrightness replaces the HSB brightness of c.
func WithBrightness[T Model[T]](c T, brightness float64) T {
	hsb := ToHSB(c)
	r, g, b := hsbToRGB(hsb.Hue, hsb.Saturation, brightness)
	return c.With(r, g, b, Rounded(c.Alpha()))
}

func fromHSL[T Model[T]](c T, hue, saturation, luminosity float64) T {
	r, g, b := hslToRGB(hue, saturation, luminosity)
	return c.With(r, g, b, Rounded(c.Alpha()))
}

// Brighten raises the HSL luminosity of c by amount (0-1).
func Brighten[T Model[T]](c T, amount float64) T {
	return WithLuminosity(c, unit(ToHSL(c).Luminosity+amount))
}

// Darken lowers the HSL luminosity of c by amount (0-1).
func Darken[T Model[T]](c T, amount float64) T {
	return WithLuminosity(c, unit(ToHSL(c).Luminosity-amount))
}

// DarkBlend darkens c by amount, multiplies it with other and sets the
// saturation to DefaultSaturationBoost.
func DarkBlend[T Model[T]](c T, other Components, amount float64) T {
	return DarkBlendBoost(c, other, amount, DefaultSaturationBoost)
}

// DarkBlendBoost is DarkBlend with an explicit saturation.
func DarkBlendBoost[T Model[T]](c T, other Components, amount, saturation float64) T {
	return WithSaturation(Multiply(Darken(c, amount), other), saturation)
}

// BrightBlend brightens c by amount, multiplies it with other and sets the
// saturation to DefaultSaturationBoost.
func BrightBlend[T Model[T]](c T, other Components, amount float64) T {
	return BrightBlendBoost(c, other, amount, DefaultSaturationBoost)
}

// BrightBlendBoost is BrightBlend with an explicit saturation.
func BrightBlendBoost[T Model[T]](c T, other Components, amount, saturation float64) T {
	return WithSaturation(Multiply(Brighten(c, amount), other), saturation)
}

// ScaleAlpha multiplies the alpha of c by factor.
func ScaleAlpha[T Model[T]](c T, factor float64) T {
	return c.With(c.Red(), c.Green(), c.Blue(), c.Alpha()*factor)
}

// SetAlpha replaces the alpha of c.
func SetAlpha[T Model[T]](c T, alpha float64) T {
	return c.With(c.Red(), c.Green(), c.Blue(), alpha)
}

// Opaque returns c with full opacity.
func Opaque[T Model[T]](c T) T {
	if IsOpaque(c) {
		return c
	}
	return SetAlpha(c, 1)
}

// Opacity tiers for layered UI text and fills.
const (
	SecondaryAlpha  = 0.88
	TertiaryAlpha   = 0.77
	QuaternaryAlpha = 0.66
	QuinaryAlpha    = 0.55
)

func Secondary[T Model[T]](c T) T  { return ScaleAlpha(c, SecondaryAlpha) }
func Tertiary[T Model[T]](c T) T   { return ScaleAlpha(c, TertiaryAlpha) }
func Quaternary[T Model[T]](c T) T { return ScaleAlpha(c, QuaternaryAlpha) }
func Quinary[T Model[T]](c T) T    { return ScaleAlpha(c, QuinaryAlpha) }

// LightenedToAlpha brightens a translucent colour by its own alpha.
// Opaque colours are returned unchanged.
func LightenedToAlpha[T Model[T]](c T) T {
	if IsOpaque(c) {
		return c
	}
	return Brighten(c, c.Alpha())
}

// DarkenedToAlpha darkens a translucent colour by its own alpha.
// Opaque colours are returned unchanged.
func DarkenedToAlpha[T Model[T]](c T) T {
	if IsOpaque(c) {
		return c
	}
	return Darken(c, c.Alpha())
}

// Shadowed sets the luminosity of c to 0.35.
func Shadowed[T Model[T]](c T) T { return WithLuminosity(c, 0.35) }

// Highlighted sets the luminosity of c to 0.9.
func Highlighted[T Model[T]](c T) T { return WithLuminosity(c, 0.9) }

// Overlaid scales alpha by 0.8 and sets saturation to 0.75.
func Overlaid[T Model[T]](c T) T {
	return WithSaturation(ScaleAlpha(c, 0.8), 0.75)
}
