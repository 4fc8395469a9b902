package colour

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Built-in colours.
var (
	Clear    = RGBA{}
	Black    = NewOpaque(0, 0, 0)
	White    = NewOpaque(1, 1, 1)
	Red      = NewOpaque(1, 0, 0)
	Green    = NewOpaque(0, 1, 0)
	Blue     = NewOpaque(0, 0, 1)
	Orange   = NewOpaque(1.0, 0.6235294117647059, 0.0392156862745098)
	Graphite = NewOpaque(0.5960784314, 0.5960784314, 0.5960784314)
	Sky      = NewOpaque(0.1215686275, 0.7176470588, 0.9803921569)
	Flame    = WithSaturation(Multiply(NewOpaque(0.968627451, 0.5098039216, 0.1058823529), Red), 2.75)

	// Shadow and Highlight are translucent black and white for layering.
	Shadow    = Gray(0, 0.33)
	Highlight = Gray(1, 0.33)
)

var palette = map[string]RGBA{
	"clear":     Clear,
	"black":     Black,
	"white":     White,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"orange":    Orange,
	"graphite":  Graphite,
	"sky":       Sky,
	"flame":     Flame,
	"shadow":    Shadow,
	"highlight": Highlight,
}

// FromName looks up a colour by name, case-insensitively. Built-in colours
// take precedence over the CSS/SVG names, so "green" is pure 0,1,0 rather
// than the CSS #008000.
func FromName(name string) (RGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := palette[name]; ok {
		return c, true
	}
	nc, ok := colornames.Map[name]
	if !ok {
		return RGBA{}, false
	}
	return FromWeb(int(nc.R), int(nc.G), int(nc.B), float64(nc.A)/255), true
}

// Names returns the built-in colour names.
func Names() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	return names
}
