package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/tincture/internal/toolkit/css"
	"github.com/jmylchreest/tincture/pkg/adapter"
	"github.com/jmylchreest/tincture/pkg/colour"
)

// ErrUnknownColour is returned for arguments that name no colour.
var ErrUnknownColour = errors.New("unknown colour")

// ParseColour reads a colour argument. Accepted forms are a JSON record
// ({"red":1,"green":0,"blue":0,"alpha":1}), any CSS colour value the css
// toolkit understands, a built-in palette name and bare hex digits.
func ParseColour(arg string) (colour.RGBA, error) {
	value := strings.TrimSpace(arg)

	if strings.HasPrefix(value, "{") {
		var c colour.RGBA
		if err := json.Unmarshal([]byte(value), &c); err != nil {
			return colour.RGBA{}, fmt.Errorf("failed to parse colour record: %w", err)
		}
		return c, nil
	}

	c, err := adapter.FromNative[string](css.New(), value)
	if err == nil {
		return c, nil
	}

	if hex, ok := colour.FromHex(value, 1); ok {
		return hex, nil
	}

	return colour.RGBA{}, fmt.Errorf("%w %q", ErrUnknownColour, arg)
}

// parseColours parses every argument, stopping at the first failure.
func parseColours(args []string) ([]colour.RGBA, error) {
	colours := make([]colour.RGBA, 0, len(args))
	for _, arg := range args {
		c, err := ParseColour(arg)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	return colours, nil
}
