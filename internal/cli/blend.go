package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
)

func newBlendCmd(opts *options) *cobra.Command {
	var (
		format   string
		mode     = blendAverage
		midpoint float64
	)

	cmd := &cobra.Command{
		Use:   "blend <colour> <colour>...",
		Short: "Blend colours together",
		Long: `Blend folds the colours from left to right with the selected mode.

Modes:
  average   mean of each channel
  bounded   sum of each channel, capped at 1
  weighted  mix the squared channels, weighting the second colour by --midpoint
  opaque    weighted interpolation that keeps the first colour's alpha
  multiply  weighted mix at an even midpoint
  divide    multiply by the inverse of the second colour
  dark      darken by --midpoint, multiply and boost saturation
  bright    brighten by --midpoint, multiply and boost saturation

Examples:
  tincture blend sky flame
  tincture blend white black --mode weighted --midpoint 0.25`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			result := colours[0]
			for _, c := range colours[1:] {
				result = mode.apply(result, c, midpoint)
			}
			opts.logger.Debug("blended colours", "mode", mode, "midpoint", midpoint, "count", len(colours), "result", result.String())

			out := []labelled{{label: fmt.Sprintf("%s blend", mode), colour: result}}
			return writeColours(cmd.OutOrStdout(), opts.config, format, out)
		},
	}

	cmd.Flags().Var(&mode, "mode", fmt.Sprintf("blend mode (%s)", joinValues(blendModes)))
	cmd.Flags().Float64Var(&midpoint, "midpoint", colour.DefaultMidpoint, "weight or luminosity shift for weighted, opaque, dark and bright modes")
	addOutputFlag(cmd, &format)
	return cmd
}
