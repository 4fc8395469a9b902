package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 6
)

// Swatch returns a solid block of c drawn with ANSI truecolour background
// escapes. Alpha is ignored since the terminal background is unknown.
func Swatch(c colour.Components, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a swatch with text centred over it. The text is
// white on dark colours and black on light ones.
func SwatchWithText(c colour.Components, text string, width int) string {
	if width <= 0 {
		width = swatchWidth
	}

	_, fg := colour.AlignedForeground(c)

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return background(c) + foreground(fg) + displayText + ansiReset
}

// ColourString returns text drawn in c.
func ColourString(c colour.Components, text string) string {
	return foreground(c) + text + ansiReset
}

func background(c colour.Components) string {
	w := colour.ToWeb(c)
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, w.R, w.G, w.B, ansiSuffix)
}

func foreground(c colour.Components) string {
	w := colour.ToWeb(c)
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, w.R, w.G, w.B, ansiSuffix)
}

// SupportsANSIColours reports whether w is a terminal likely to render
// truecolour escapes.
func SupportsANSIColours(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// previewEnabled resolves the configured preview mode against w.
func previewEnabled(config Config, w io.Writer) bool {
	switch config.Preview {
	case PreviewAlways:
		return true
	case PreviewNever:
		return false
	}
	if config.NoColour {
		return false
	}
	return SupportsANSIColours(w)
}
