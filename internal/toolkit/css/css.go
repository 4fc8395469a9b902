// Package css provides a toolkit binding whose native colours are CSS colour
// values. It is served over go-plugin by cmd/tincture-css-toolkit and is the
// reference implementation of adapter.Toolkit.
package css

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/tincture/internal/version"
	"github.com/jmylchreest/tincture/pkg/adapter"
	"github.com/jmylchreest/tincture/pkg/colour"
)

// ErrUnsupported is returned for CSS values the binding cannot read.
var ErrUnsupported = errors.New("unsupported CSS colour")

var (
	hexRegex      = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	functionRegex = regexp.MustCompile(`^(rgba?|hsla?)\s*\(\s*([^)]*)\)$`)
	separator     = regexp.MustCompile(`\s*[,/]\s*|\s+`)
)

// Toolkit reads and writes CSS colour values.
type Toolkit struct{}

var _ adapter.Toolkit = Toolkit{}

// New creates a CSS toolkit binding.
func New() Toolkit {
	return Toolkit{}
}

// Info implements adapter.Toolkit.
func (Toolkit) Info() adapter.ToolkitInfo {
	return adapter.ToolkitInfo{
		Name:            "css",
		Version:         version.Short(),
		ProtocolVersion: adapter.ProtocolVersion,
		Description:     "CSS colour values (hex, rgb(), hsl(), named colours)",
	}
}

// Components parses a CSS colour value.
// Supports: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(), hsla(),
// transparent and named colours.
func (Toolkit) Components(ref string) (colour.Record, error) {
	value := strings.ToLower(strings.TrimSpace(ref))

	if value == "transparent" {
		return colour.Encode(colour.Clear), nil
	}

	if m := hexRegex.FindStringSubmatch(value); m != nil {
		return parseHex(m[1])
	}

	if m := functionRegex.FindStringSubmatch(value); m != nil {
		args := separator.Split(strings.TrimSpace(m[2]), -1)
		if strings.HasPrefix(m[1], "rgb") {
			return parseRGB(args)
		}
		return parseHSL(args)
	}

	if c, ok := colour.FromName(value); ok {
		return colour.Encode(c), nil
	}

	return colour.Record{}, fmt.Errorf("%w: %q", ErrUnsupported, ref)
}

// Native formats rec as #RRGGBB when opaque and rgba() otherwise.
func (Toolkit) Native(rec colour.Record) (string, error) {
	c := colour.Decode(rec)
	if colour.IsOpaque(c) {
		return "#" + colour.Hex(c), nil
	}
	w := colour.ToWeb(c)
	alpha := strconv.FormatFloat(colour.RoundTo(c.Alpha(), 3), 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", w.R, w.G, w.B, alpha), nil
}

// parseHex expands short forms and reads an optional alpha byte.
func parseHex(digits string) (colour.Record, error) {
	if len(digits) <= 4 {
		var b strings.Builder
		for _, d := range digits {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		digits = b.String()
	}

	alpha := 1.0
	if len(digits) == 8 {
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return colour.Record{}, fmt.Errorf("failed to parse alpha: %w", err)
		}
		alpha = colour.FromWebChannel(int(a))
		digits = digits[:6]
	}

	c, ok := colour.FromHex(digits, alpha)
	if !ok {
		return colour.Record{}, fmt.Errorf("%w: #%s", ErrUnsupported, digits)
	}
	return colour.Encode(c), nil
}

func parseRGB(args []string) (colour.Record, error) {
	if len(args) != 3 && len(args) != 4 {
		return colour.Record{}, fmt.Errorf("%w: rgb() takes 3 or 4 values, got %d", ErrUnsupported, len(args))
	}

	var ch [3]float64
	for i := range ch {
		v, err := parseChannel(args[i], 255)
		if err != nil {
			return colour.Record{}, err
		}
		ch[i] = v
	}

	alpha, err := parseAlpha(args)
	if err != nil {
		return colour.Record{}, err
	}
	return colour.Encode(colour.New(ch[0], ch[1], ch[2], alpha)), nil
}

func parseHSL(args []string) (colour.Record, error) {
	if len(args) != 3 && len(args) != 4 {
		return colour.Record{}, fmt.Errorf("%w: hsl() takes 3 or 4 values, got %d", ErrUnsupported, len(args))
	}

	hue, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return colour.Record{}, fmt.Errorf("failed to parse hue %q: %w", args[0], err)
	}
	hue /= 360
	hue -= math.Floor(hue)

	saturation, err := parseChannel(args[1], 100)
	if err != nil {
		return colour.Record{}, err
	}
	luminosity, err := parseChannel(args[2], 100)
	if err != nil {
		return colour.Record{}, err
	}

	alpha, err := parseAlpha(args)
	if err != nil {
		return colour.Record{}, err
	}
	return colour.Encode(colour.FromHSL(hue, saturation, luminosity, alpha)), nil
}

// parseChannel reads a number in [0, scale] or a percentage and returns it in
// the unit range.
func parseChannel(arg string, scale float64) (float64, error) {
	if pct, ok := strings.CutSuffix(arg, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %q: %w", arg, err)
		}
		return v / 100, nil
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q: %w", arg, err)
	}
	return v / scale, nil
}

func parseAlpha(args []string) (float64, error) {
	if len(args) < 4 {
		return 1, nil
	}
	return parseChannel(args[3], 1)
}
