// Package adapter bridges colour values and the native colour types of host
// toolkits.
//
// A toolkit binding only has to move four unit-range floats in each
// direction. In-process bindings implement Adapter directly; bindings that
// must live in another process (a platform UI helper, for example) are
// served over go-plugin and reached through Remote.
package adapter

import (
	"fmt"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// Adapter converts between colour records and a native colour type N.
type Adapter[N any] interface {
	// Components extracts red, green, blue and alpha from a native colour.
	Components(native N) (colour.Record, error)

	// Native builds a native colour from red, green, blue and alpha.
	Native(rec colour.Record) (N, error)
}

// FromNative reads a native colour into an RGBA. Out-of-range channels
// reported by the toolkit are clamped.
func FromNative[N any](a Adapter[N], native N) (colour.RGBA, error) {
	rec, err := a.Components(native)
	if err != nil {
		return colour.RGBA{}, fmt.Errorf("failed to extract components: %w", err)
	}
	return colour.Decode(rec), nil
}

// ToNative builds a native colour from any colour value.
func ToNative[N any](a Adapter[N], c colour.Components) (N, error) {
	native, err := a.Native(colour.Encode(c))
	if err != nil {
		var zero N
		return zero, fmt.Errorf("failed to build native colour: %w", err)
	}
	return native, nil
}
