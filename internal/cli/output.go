package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// Output formats shared by the colour-producing commands.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatHex   = "hex"
	formatRGBA  = "rgba"
	formatWeb   = "web"
	formatHSL   = "hsl"
	formatHSB   = "hsb"
)

var outputFormats = []string{formatTable, formatJSON, formatHex, formatRGBA, formatWeb, formatHSL, formatHSB}

// labelled is a colour with the argument or operation that produced it.
type labelled struct {
	label  string
	colour colour.RGBA
}

func addOutputFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "output", "o", formatTable,
		fmt.Sprintf("output format (%s)", strings.Join(outputFormats, ", ")))
}

// writeColours prints colours in the requested format. The table format
// includes a swatch column when previews are enabled for w.
func writeColours(w io.Writer, config Config, format string, colours []labelled) error {
	switch format {
	case formatTable:
		return writeTable(w, previewEnabled(config, w), colours)
	case formatJSON:
		values := make([]colour.RGBA, len(colours))
		for i, c := range colours {
			values[i] = c.colour
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(values)
	}

	var render func(colour.RGBA) string
	switch format {
	case formatHex:
		render = hexString
	case formatRGBA:
		render = colour.RGBA.String
	case formatWeb:
		render = func(c colour.RGBA) string { return c.Web().String() }
	case formatHSL:
		render = func(c colour.RGBA) string { return hslString(c.HSL()) }
	case formatHSB:
		render = func(c colour.RGBA) string { return hsbString(c.HSB()) }
	default:
		return fmt.Errorf("unknown output format %q (must be one of %s)", format, strings.Join(outputFormats, ", "))
	}

	for _, c := range colours {
		if _, err := fmt.Fprintln(w, render(c.colour)); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, preview bool, colours []labelled) error {
	headers := []string{"Colour", "Hex", "RGBA", "HSL", "HSB"}
	if preview {
		headers = append([]string{"Swatch"}, headers...)
	}

	table := NewTable(headers...)
	for _, c := range colours {
		row := []string{c.label, hexString(c.colour), c.colour.String(), hslString(c.colour.HSL()), hsbString(c.colour.HSB())}
		if preview {
			row = append([]string{Swatch(c.colour, swatchWidth)}, row...)
		}
		table.AddRow(row...)
	}

	_, err := table.WriteTo(w)
	return err
}

// hexString returns #RRGGBB, with an alpha byte appended for translucent
// colours.
func hexString(c colour.RGBA) string {
	if colour.IsOpaque(c) {
		return "#" + c.Hex()
	}
	return fmt.Sprintf("#%s%02X", c.Hex(), colour.ToWebChannel(c.Alpha()))
}

func hslString(h colour.HSL) string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", h.Hue*360, h.Saturation*100, h.Luminosity*100)
}

func hsbString(h colour.HSB) string {
	return fmt.Sprintf("hsb(%.1f, %.1f%%, %.1f%%)", h.Hue*360, h.Saturation*100, h.Brightness*100)
}
