package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// adjustment is one step of the adjust pipeline, keyed by its flag name.
type adjustment struct {
	flag  string
	apply func(colour.RGBA) colour.RGBA
}

type adjustOptions struct {
	darken, brighten                   float64
	hue, saturation                    float64
	luminosity, brightness             float64
	alpha, invert                      float64
	tier                               tierFlag
	opaque, shadowed, highlighted      bool
	overlaid, lightened, darkenedAlpha bool
}

// pipeline returns the steps selected on cmd in their fixed order.
func (a *adjustOptions) pipeline(cmd *cobra.Command) []adjustment {
	steps := []adjustment{
		{"hue", func(c colour.RGBA) colour.RGBA { return colour.WithHue(c, a.hue/360) }},
		{"saturation", func(c colour.RGBA) colour.RGBA { return colour.WithSaturation(c, a.saturation) }},
		{"luminosity", func(c colour.RGBA) colour.RGBA { return colour.WithLuminosity(c, a.luminosity) }},
		{"brightness", func(c colour.RGBA) colour.RGBA { return colour.WithBrightness(c, a.brightness) }},
		{"darken", func(c colour.RGBA) colour.RGBA { return colour.Darken(c, a.darken) }},
		{"brighten", func(c colour.RGBA) colour.RGBA { return colour.Brighten(c, a.brighten) }},
		{"shadowed", colour.Shadowed[colour.RGBA]},
		{"highlighted", colour.Highlighted[colour.RGBA]},
		{"overlaid", colour.Overlaid[colour.RGBA]},
		{"invert", func(c colour.RGBA) colour.RGBA { return colour.WithInversion(c, a.invert) }},
		{"alpha", func(c colour.RGBA) colour.RGBA { return colour.SetAlpha(c, a.alpha) }},
		{"lighten-to-alpha", colour.LightenedToAlpha[colour.RGBA]},
		{"darken-to-alpha", colour.DarkenedToAlpha[colour.RGBA]},
		{"tier", a.tier.apply},
		{"opaque", colour.Opaque[colour.RGBA]},
	}

	selected := steps[:0]
	for _, step := range steps {
		if f := cmd.Flags().Lookup(step.flag); f.Changed && f.Value.String() != "false" {
			selected = append(selected, step)
		}
	}
	return selected
}

func newAdjustCmd(opts *options) *cobra.Command {
	var (
		format string
		adj    = adjustOptions{tier: tierPrimary}
	)

	cmd := &cobra.Command{
		Use:   "adjust <colour>...",
		Short: "Shift hue, saturation, luminosity, brightness or alpha",
		Long: `Adjust applies the selected changes to each colour. Changes run in the
order hue, saturation, luminosity, brightness, darken, brighten, shadowed,
highlighted, overlaid, invert, alpha, lighten-to-alpha, darken-to-alpha,
tier, opaque, regardless of flag order.

Hue is given in degrees. All other amounts are in the range 0-1.

Examples:
  tincture adjust sky --darken 0.2
  tincture adjust flame --hue 200 --tier secondary
  tincture adjust '#336699' --invert --opaque`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			steps := adj.pipeline(cmd)
			if len(steps) == 0 {
				return fmt.Errorf("no adjustment selected")
			}

			out := make([]labelled, len(colours))
			for i, c := range colours {
				for _, step := range steps {
					c = step.apply(c)
					opts.logger.Debug("applied adjustment", "input", args[i], "step", step.flag, "colour", c.String())
				}
				out[i] = labelled{label: args[i], colour: c}
			}
			return writeColours(cmd.OutOrStdout(), opts.config, format, out)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&adj.hue, "hue", 0, "set hue in degrees")
	flags.Float64Var(&adj.saturation, "saturation", 0, "set HSL saturation")
	flags.Float64Var(&adj.luminosity, "luminosity", 0, "set HSL luminosity")
	flags.Float64Var(&adj.brightness, "brightness", 0, "set HSB brightness")
	flags.Float64Var(&adj.darken, "darken", 0, "lower luminosity by amount")
	flags.Float64Var(&adj.brighten, "brighten", 0, "raise luminosity by amount")
	flags.BoolVar(&adj.shadowed, "shadowed", false, "set luminosity to 0.35")
	flags.BoolVar(&adj.highlighted, "highlighted", false, "set luminosity to 0.9")
	flags.BoolVar(&adj.overlaid, "overlaid", false, "scale alpha by 0.8 and set saturation to 0.75")
	flags.Float64Var(&adj.invert, "invert", 1, "invert colour channels by amount")
	flags.Lookup("invert").NoOptDefVal = "1"
	flags.Float64Var(&adj.alpha, "alpha", 1, "set alpha")
	flags.BoolVar(&adj.lightened, "lighten-to-alpha", false, "brighten translucent colours by their own alpha")
	flags.BoolVar(&adj.darkenedAlpha, "darken-to-alpha", false, "darken translucent colours by their own alpha")
	flags.Var(&adj.tier, "tier", fmt.Sprintf("scale alpha to an opacity tier (%s)", joinValues(tiers)))
	flags.BoolVar(&adj.opaque, "opaque", false, "force full opacity")
	addOutputFlag(cmd, &format)

	return cmd
}
