package adapter

import (
	"image/color"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// Image adapts the standard library image/color model. Native colours are
// produced as non-premultiplied color.NRGBA64.
type Image struct{}

var _ Adapter[color.Color] = Image{}

// Components implements Adapter. Premultiplied input is converted back to
// straight alpha.
func (Image) Components(native color.Color) (colour.Record, error) {
	n := color.NRGBA64Model.Convert(native).(color.NRGBA64)
	return colour.Record{
		Red:   float64(n.R) / 0xffff,
		Green: float64(n.G) / 0xffff,
		Blue:  float64(n.B) / 0xffff,
		Alpha: float64(n.A) / 0xffff,
	}, nil
}

// Native implements Adapter.
func (Image) Native(rec colour.Record) (color.Color, error) {
	c := colour.Decode(rec)
	return color.NRGBA64{
		R: to16(c.Red()),
		G: to16(c.Green()),
		B: to16(c.Blue()),
		A: to16(c.Alpha()),
	}, nil
}

func to16(v float64) uint16 {
	return uint16(v*0xffff + 0.5)
}
