package colour

// DarkThreshold is the HSL luminosity below which a colour counts as dark.
const DarkThreshold = 0.55

// IsDark reports whether the HSL luminosity of c is below DarkThreshold.
func IsDark(c Components) bool {
	return ToHSL(c).Luminosity < DarkThreshold
}

// IsLight is the negation of IsDark.
func IsLight(c Components) bool {
	return !IsDark(c)
}

// IsOpaque reports whether alpha is exactly 1.
func IsOpaque(c Components) bool {
	return c.Alpha() == 1
}

// IsTransparent reports whether c has any transparency.
func IsTransparent(c Components) bool {
	return !IsOpaque(c)
}

// IsVisible estimates whether c stands out against background.
//
// An opaque colour is visible when its luminosity is more than twice that of
// the background. A translucent colour is visible when
// ((R+G+B-A) + (bgR+bgG+bgB)) / 2 exceeds 1.
func IsVisible(c, background Components) bool {
	if IsOpaque(c) {
		return ToHSL(c).Luminosity/ToHSL(background).Luminosity > 2
	}
	sum := (c.Red() + c.Green() + c.Blue() - c.Alpha()) +
		(background.Red() + background.Green() + background.Blue())
	return sum/2 > 1
}

// ComputedBrightness is the plain mean of all four channels.
func ComputedBrightness(c Components) float64 {
	return (c.Red() + c.Green() + c.Blue() + c.Alpha()) / 4
}

// Aligned adapts overlay to sit on background: overlay is averaged with
// black on dark backgrounds (white on light ones) and the result divided by
// background.
func Aligned(background, overlay RGBA) RGBA {
	base := White
	if IsDark(background) {
		base = Black
	}
	return BlendDivide(BlendAverage(overlay, base), background)
}

// AlignedForeground picks white text for dark backgrounds and black text
// otherwise. lightForeground is true when white was chosen.
func AlignedForeground(background Components) (lightForeground bool, foreground RGBA) {
	if IsDark(background) {
		return true, White
	}
	return false, Black
}
