package adapter

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// Colorful adapts github.com/lucasb-eyer/go-colorful. go-colorful colours
// carry no alpha: extraction reports 1 and construction drops it.
type Colorful struct{}

var _ Adapter[colorful.Color] = Colorful{}

// Components implements Adapter.
func (Colorful) Components(native colorful.Color) (colour.Record, error) {
	c := native.Clamped()
	return colour.Record{Red: c.R, Green: c.G, Blue: c.B, Alpha: 1}, nil
}

// Native implements Adapter.
func (Colorful) Native(rec colour.Record) (colorful.Color, error) {
	c := colour.Decode(rec)
	return colorful.Color{R: c.Red(), G: c.Green(), B: c.Blue()}, nil
}
