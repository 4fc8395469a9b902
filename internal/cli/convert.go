package cli

import (
	"github.com/spf13/cobra"
)

func newConvertCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Show colours in every supported notation",
		Long: `Convert parses each colour and prints its hex, RGBA, HSL and HSB forms.

Examples:
  tincture convert sky '#f80' 'hsl(200, 90%, 55%)'
  tincture convert flame -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			out := make([]labelled, len(colours))
			for i, c := range colours {
				opts.logger.Debug("parsed colour", "input", args[i], "colour", c.String())
				out[i] = labelled{label: args[i], colour: c}
			}
			return writeColours(cmd.OutOrStdout(), opts.config, format, out)
		},
	}

	addOutputFlag(cmd, &format)
	return cmd
}
