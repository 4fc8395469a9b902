package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// blendMode selects how the blend command combines two colours.
type blendMode string

const (
	blendAverage  blendMode = "average"
	blendBounded  blendMode = "bounded"
	blendWeighted blendMode = "weighted"
	blendOpaque   blendMode = "opaque"
	blendMultiply blendMode = "multiply"
	blendDivide   blendMode = "divide"
	blendDark     blendMode = "dark"
	blendBright   blendMode = "bright"
)

var blendModes = []blendMode{
	blendAverage, blendBounded, blendWeighted, blendOpaque,
	blendMultiply, blendDivide, blendDark, blendBright,
}

var _ pflag.Value = (*blendMode)(nil)

func (m *blendMode) String() string { return string(*m) }

func (m *blendMode) Set(v string) error {
	for _, mode := range blendModes {
		if string(mode) == strings.ToLower(v) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", joinValues(blendModes))
}

func (m *blendMode) Type() string { return "mode" }

// apply combines a and b. amount is the midpoint for weighted and opaque
// blends and the luminosity shift for dark and bright blends.
func (m blendMode) apply(a, b colour.RGBA, amount float64) colour.RGBA {
	switch m {
	case blendBounded:
		return colour.BlendBounded(a, b)
	case blendWeighted:
		return colour.BlendWeighted(a, b, amount)
	case blendOpaque:
		return colour.Blended(a, b, amount)
	case blendMultiply:
		return colour.Multiply(a, b)
	case blendDivide:
		return colour.BlendDivide(a, b)
	case blendDark:
		return colour.DarkBlend(a, b, amount)
	case blendBright:
		return colour.BrightBlend(a, b, amount)
	default:
		return colour.BlendAverage(a, b)
	}
}

// tierFlag selects an opacity tier.
type tierFlag string

const (
	tierPrimary    tierFlag = "primary"
	tierSecondary  tierFlag = "secondary"
	tierTertiary   tierFlag = "tertiary"
	tierQuaternary tierFlag = "quaternary"
	tierQuinary    tierFlag = "quinary"
)

var tiers = []tierFlag{tierPrimary, tierSecondary, tierTertiary, tierQuaternary, tierQuinary}

var _ pflag.Value = (*tierFlag)(nil)

func (f *tierFlag) String() string { return string(*f) }

func (f *tierFlag) Set(v string) error {
	for _, tier := range tiers {
		if string(tier) == strings.ToLower(v) {
			*f = tier
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", joinValues(tiers))
}

func (f *tierFlag) Type() string { return "tier" }

func (f tierFlag) apply(c colour.RGBA) colour.RGBA {
	switch f {
	case tierSecondary:
		return colour.Secondary(c)
	case tierTertiary:
		return colour.Tertiary(c)
	case tierQuaternary:
		return colour.Quaternary(c)
	case tierQuinary:
		return colour.Quinary(c)
	default:
		return c
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
