package colour

import "math/rand/v2"

// Source supplies random integers in [0, n). Implementations shared across
// goroutines must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the math/rand/v2 top-level generator, which is
// safe for concurrent use.
var DefaultSource Source = globalSource{}

// Random returns an opaque colour whose channels are drawn uniformly from
// the 8-bit range.
func Random(src Source) RGBA {
	return FromWeb(src.IntN(256), src.IntN(256), src.IntN(256), 1)
}
