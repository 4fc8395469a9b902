package cli

import (
	"encoding/binary"
	"fmt"
	mathrand "math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// seededSource returns a deterministic source for seed.
func seededSource(seed uint64) colour.Source {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], seed)
	// #nosec G404 -- Using math/rand intentionally for reproducible colours, not cryptography
	return mathrand.New(mathrand.NewChaCha8(seedArray))
}

func newRandomCmd(opts *options) *cobra.Command {
	var (
		format string
		count  int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random opaque colours",
		Long: `Random draws each channel uniformly from 0-255.

Pass --seed for a reproducible sequence.

Examples:
  tincture random --count 8
  tincture random --count 4 --seed 42 -o hex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			src := colour.DefaultSource
			if cmd.Flags().Changed("seed") {
				src = seededSource(seed)
			}
			opts.logger.Debug("generating random colours", "count", count, "seeded", cmd.Flags().Changed("seed"), "seed", seed)

			out := make([]labelled, count)
			for i := range count {
				out[i] = labelled{label: fmt.Sprintf("random %d", i+1), colour: colour.Random(src)}
			}
			return writeColours(cmd.OutOrStdout(), opts.config, format, out)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of colours to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible generation")
	addOutputFlag(cmd, &format)
	return cmd
}
