package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/jmylchreest/tincture/pkg/adapter"
	"github.com/jmylchreest/tincture/pkg/colour"
)

// DefaultMaxSamples bounds the pixels read by Mean and Extremes.
const DefaultMaxSamples = 1 << 16

// ErrEmptyImage is returned when an image has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Sampler reads colours from an image through the image/color adapter.
type Sampler struct {
	adapter    adapter.Adapter[color.Color]
	maxSamples int
}

// NewSampler creates a sampler reading at most maxSamples pixels. Values
// below 1 select DefaultMaxSamples.
func NewSampler(maxSamples int) *Sampler {
	if maxSamples < 1 {
		maxSamples = DefaultMaxSamples
	}
	return &Sampler{adapter: adapter.Image{}, maxSamples: maxSamples}
}

// stride returns the step between sampled pixels on both axes.
func (s *Sampler) stride(bounds image.Rectangle) int {
	pixels := bounds.Dx() * bounds.Dy()
	if pixels <= s.maxSamples {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(pixels) / float64(s.maxSamples))))
}

// each calls fn with every sampled pixel.
func (s *Sampler) each(img image.Image, fn func(colour.RGBA)) error {
	bounds := img.Bounds()
	if bounds.Empty() {
		return ErrEmptyImage
	}

	step := s.stride(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, err := adapter.FromNative(s.adapter, img.At(x, y))
			if err != nil {
				return fmt.Errorf("failed to read pixel (%d, %d): %w", x, y, err)
			}
			fn(c)
		}
	}
	return nil
}

// Mean returns the channel-wise average of the sampled pixels, alpha
// included.
func (s *Sampler) Mean(img image.Image) (colour.RGBA, error) {
	var sum colour.Record
	n := 0
	err := s.each(img, func(c colour.RGBA) {
		sum.Red += c.Red()
		sum.Green += c.Green()
		sum.Blue += c.Blue()
		sum.Alpha += c.Alpha()
		n++
	})
	if err != nil {
		return colour.RGBA{}, err
	}

	count := float64(n)
	return colour.New(sum.Red/count, sum.Green/count, sum.Blue/count, sum.Alpha/count), nil
}

// Extremes returns the sampled pixels with the lowest and highest HSL
// luminosity. Ties keep the first pixel in scan order.
func (s *Sampler) Extremes(img image.Image) (darkest, lightest colour.RGBA, err error) {
	low, high := math.Inf(1), math.Inf(-1)
	err = s.each(img, func(c colour.RGBA) {
		l := colour.ToHSL(c).Luminosity
		if l < low {
			low, darkest = l, c
		}
		if l > high {
			high, lightest = l, c
		}
	})
	return darkest, lightest, err
}
