package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// TemplateFuncs returns the functions available to format templates.
// Adjustment functions take the colour last so they work in pipes:
//
//	{{ . | darken 0.2 | withAlpha 0.5 | rgba }}
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Format conversion.
		"hex":       hexFunc,
		"hexAlpha":  hexAlphaFunc,
		"hexNoHash": colour.Hex,
		"rgb":       rgbFunc,
		"rgba":      colour.RGBA.String,
		"hsl":       func(c colour.RGBA) string { return hslString(c.HSL()) },
		"hsb":       func(c colour.RGBA) string { return hsbString(c.HSB()) },
		"packed":    packedFunc,

		// Channels.
		"red":   webChannel(colour.RGBA.Red),
		"green": webChannel(colour.RGBA.Green),
		"blue":  webChannel(colour.RGBA.Blue),
		"alpha": colour.RGBA.Alpha,

		// Adjustments.
		"withAlpha":      pipe(colour.SetAlpha[colour.RGBA]),
		"scaleAlpha":     pipe(colour.ScaleAlpha[colour.RGBA]),
		"withHue":        func(deg float64, c colour.RGBA) colour.RGBA { return colour.WithHue(c, deg/360) },
		"withSaturation": pipe(colour.WithSaturation[colour.RGBA]),
		"withLuminosity": pipe(colour.WithLuminosity[colour.RGBA]),
		"withBrightness": pipe(colour.WithBrightness[colour.RGBA]),
		"darken":         pipe(colour.Darken[colour.RGBA]),
		"brighten":       pipe(colour.Brighten[colour.RGBA]),
		"invert":         colour.Invert[colour.RGBA],
		"opaque":         colour.Opaque[colour.RGBA],
		"secondary":      colour.Secondary[colour.RGBA],
		"tertiary":       colour.Tertiary[colour.RGBA],
		"quaternary":     colour.Quaternary[colour.RGBA],
		"quinary":        colour.Quinary[colour.RGBA],

		// Blending.
		"blend":    blendFunc,
		"mix":      func(other colour.RGBA, midpoint float64, c colour.RGBA) colour.RGBA { return colour.BlendWeighted(c, other, midpoint) },
		"multiply": func(other, c colour.RGBA) colour.RGBA { return colour.Multiply(c, other) },
		"colour":   ParseColour,

		// Contrast.
		"isDark":     func(c colour.RGBA) bool { return colour.IsDark(c) },
		"isLight":    func(c colour.RGBA) bool { return colour.IsLight(c) },
		"foreground": foregroundFunc,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// pipe flips a (colour, amount) function into pipe-friendly order.
func pipe(fn func(colour.RGBA, float64) colour.RGBA) func(float64, colour.RGBA) colour.RGBA {
	return func(amount float64, c colour.RGBA) colour.RGBA { return fn(c, amount) }
}

func webChannel(fn func(colour.RGBA) float64) func(colour.RGBA) int {
	return func(c colour.RGBA) int { return colour.ToWebChannel(fn(c)) }
}

// hexFunc returns color in #RRGGBB format.
func hexFunc(c colour.RGBA) string {
	return "#" + c.Hex()
}

// hexAlphaFunc returns color in #RRGGBBAA format.
func hexAlphaFunc(c colour.RGBA) string {
	return fmt.Sprintf("#%s%02X", c.Hex(), colour.ToWebChannel(c.Alpha()))
}

// rgbFunc returns color in CSS rgb(r, g, b) format.
func rgbFunc(c colour.RGBA) string {
	return c.Web().String()
}

// packedFunc returns the ARGB integer as 0xAARRGGBB.
func packedFunc(c colour.RGBA) string {
	return fmt.Sprintf("0x%08X", colour.Packed(c))
}

// blendFunc blends the piped colour with other using a named mode:
//
//	{{ . | blend "multiply" (colour "sky") }}
func blendFunc(mode string, other, c colour.RGBA) (colour.RGBA, error) {
	var m blendMode
	if err := m.Set(mode); err != nil {
		return colour.RGBA{}, fmt.Errorf("blend mode %q: %w", mode, err)
	}
	return m.apply(c, other, colour.DefaultMidpoint), nil
}

// foregroundFunc returns the text colour that suits background c.
func foregroundFunc(c colour.RGBA) colour.RGBA {
	_, fg := colour.AlignedForeground(c)
	return fg
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order).
//
//	{{ hex . | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order).
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}

func newFormatCmd(opts *options) *cobra.Command {
	var tmplText string

	cmd := &cobra.Command{
		Use:   "format <colour>...",
		Short: "Render colours through a Go template",
		Long: `Format executes a text/template once per colour with the colour as dot.
A newline is written after each colour.

Functions:
  hex, hexAlpha, hexNoHash, rgb, rgba, hsl, hsb, packed
  red, green, blue (0-255), alpha (0-1)
  withAlpha, scaleAlpha, withHue (degrees), withSaturation, withLuminosity,
  withBrightness, darken, brighten, invert, opaque
  secondary, tertiary, quaternary, quinary
  blend MODE OTHER, mix OTHER MIDPOINT, multiply OTHER, colour ARG
  isDark, isLight, foreground
  trimPrefix, replace, toLower, toUpper

Examples:
  tincture format sky --template '{{ hex . }}'
  tincture format flame --template '--accent: {{ . | darken 0.1 | rgba }};'
  tincture format graphite --template '{{ if isDark . }}dark{{ else }}light{{ end }}'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.New("format").Funcs(TemplateFuncs()).Parse(tmplText)
			if err != nil {
				return fmt.Errorf("failed to parse template: %w", err)
			}

			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, c := range colours {
				opts.logger.Debug("rendering template", "input", args[i], "colour", c.String())
				if err := tmpl.Execute(out, c); err != nil {
					return fmt.Errorf("failed to render %q: %w", args[i], err)
				}
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tmplText, "template", "t", "{{ hex . }}", "Go template to render for each colour")
	return cmd
}
