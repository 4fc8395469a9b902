package cli

import (
	"encoding/json"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/adapter"
	"github.com/jmylchreest/tincture/pkg/colour"
)

// contrastReport describes a foreground colour against a background.
type contrastReport struct {
	Foreground           colour.RGBA `json:"foreground"`
	Background           colour.RGBA `json:"background"`
	ForegroundDark       bool        `json:"foreground_dark"`
	BackgroundDark       bool        `json:"background_dark"`
	ForegroundBrightness float64     `json:"foreground_brightness"`
	BackgroundBrightness float64     `json:"background_brightness"`
	Visible              bool        `json:"visible"`
	Distance             float64     `json:"distance"`
	LightText            bool        `json:"light_text"`
	Text                 colour.RGBA `json:"text"`
	Aligned              colour.RGBA `json:"aligned"`
}

func newContrastReport(fg, bg colour.RGBA) (contrastReport, error) {
	distance, err := perceptualDistance(fg, bg)
	if err != nil {
		return contrastReport{}, err
	}

	lightText, text := colour.AlignedForeground(bg)
	return contrastReport{
		Foreground:           fg,
		Background:           bg,
		ForegroundDark:       colour.IsDark(fg),
		BackgroundDark:       colour.IsDark(bg),
		ForegroundBrightness: colour.ComputedBrightness(fg),
		BackgroundBrightness: colour.ComputedBrightness(bg),
		Visible:              colour.IsVisible(fg, bg),
		Distance:             distance,
		LightText:            lightText,
		Text:                 text,
		Aligned:              colour.Aligned(bg, fg),
	}, nil
}

// perceptualDistance is the CIEDE2000 difference of the opaque forms of a
// and b.
func perceptualDistance(a, b colour.RGBA) (float64, error) {
	ca, err := adapter.ToNative[colorful.Color](adapter.Colorful{}, a)
	if err != nil {
		return 0, err
	}
	cb, err := adapter.ToNative[colorful.Color](adapter.Colorful{}, b)
	if err != nil {
		return 0, err
	}
	return ca.DistanceCIEDE2000(cb), nil
}

func newContrastCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check a foreground colour against a background",
		Long: `Contrast reports whether each colour reads as dark or light, whether the
foreground stands out against the background, which text colour suits the
background and the foreground aligned to the background.

Examples:
  tincture contrast white sky
  tincture contrast 'rgba(0, 0, 0, 0.33)' graphite --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			report, err := newContrastReport(colours[0], colours[1])
			if err != nil {
				return err
			}
			opts.logger.Debug("contrast report", "foreground", report.Foreground.String(),
				"background", report.Background.String(), "visible", report.Visible)

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(report)
			}

			preview := previewEnabled(opts.config, out)
			swatch := func(c colour.RGBA) string {
				if preview {
					return Swatch(c, 2) + " " + hexString(c)
				}
				return hexString(c)
			}

			table := NewTable("Property", "Value")
			table.AddRow("foreground", swatch(report.Foreground))
			table.AddRow("background", swatch(report.Background))
			table.AddRow("foreground tone", tone(report.ForegroundDark))
			table.AddRow("background tone", tone(report.BackgroundDark))
			table.AddRow("foreground brightness", strconv.FormatFloat(report.ForegroundBrightness, 'f', 3, 64))
			table.AddRow("background brightness", strconv.FormatFloat(report.BackgroundBrightness, 'f', 3, 64))
			table.AddRow("visible", strconv.FormatBool(report.Visible))
			table.AddRow("perceptual distance", strconv.FormatFloat(report.Distance, 'f', 3, 64))
			table.AddRow("text colour", swatch(report.Text))
			table.AddRow("aligned", swatch(report.Aligned))
			if preview {
				table.AddRow("sample", SwatchWithText(report.Background, "Aa", 6)+" "+
					ColourString(report.Foreground, "sample"))
			}

			_, err = table.WriteTo(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func tone(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
