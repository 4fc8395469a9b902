package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/image"
)

func newSampleCmd(opts *options) *cobra.Command {
	var (
		format     string
		maxSamples int
	)

	cmd := &cobra.Command{
		Use:   "sample <image>",
		Short: "Sample the mean, darkest and lightest colours of an image",
		Long: `Sample reads an image (JPEG, PNG, GIF or WebP) and reports its mean colour
and the darkest and lightest pixels by HSL luminosity. Large images are
sampled on an even grid of at most --max-samples pixels.

Examples:
  tincture sample wallpaper.jpg
  tincture sample logo.png -o hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := image.NewFileLoader().Load(args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("image loaded", "path", args[0], "bounds", img.Bounds().String())

			sampler := image.NewSampler(maxSamples)
			mean, err := sampler.Mean(img)
			if err != nil {
				return err
			}
			darkest, lightest, err := sampler.Extremes(img)
			if err != nil {
				return err
			}

			out := []labelled{
				{label: "mean", colour: mean},
				{label: "darkest", colour: darkest},
				{label: "lightest", colour: lightest},
			}
			return writeColours(cmd.OutOrStdout(), opts.config, format, out)
		},
	}

	cmd.Flags().IntVar(&maxSamples, "max-samples", image.DefaultMaxSamples, "maximum number of pixels to read")
	addOutputFlag(cmd, &format)
	return cmd
}
