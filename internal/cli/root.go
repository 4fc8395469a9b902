// Package cli provides the command-line interface for tincture.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/version"
)

// options carries global flag values and the state derived from them.
type options struct {
	verbose bool
	quiet   bool
	toolkit string
	preview string

	config Config
	logger hclog.Logger
}

// NewRootCmd builds the tincture command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tincture",
		Short: "Colour arithmetic for themes and UI palettes",
		Long: `Tincture converts, blends and adjusts colours from the command line.

Colours can be given as hex (#f80, ff8800), CSS values (rgb(), hsl(), named
colours), built-in palette names (sky, flame, graphite, ...) or JSON records
({"red":1,"green":0.5,"blue":0,"alpha":1}).`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().StringVar(&opts.toolkit, "toolkit", "", "toolkit binding binary (overrides TINCTURE_TOOLKIT)")
	cmd.PersistentFlags().StringVar(&opts.preview, "preview", "", "colour swatches: auto, always or never (overrides TINCTURE_PREVIEW)")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(opts),
		newBlendCmd(opts),
		newAdjustCmd(opts),
		newContrastCmd(opts),
		newRandomCmd(opts),
		newFormatCmd(opts),
		newSampleCmd(opts),
		newToolkitCmd(opts),
	)

	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration from the environment and flags and builds
// the logger.
func (o *options) setup(cmd *cobra.Command) error {
	config, err := NewConfigBuilder().WithEnvConfig().Build()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("toolkit") {
		config.ToolkitPath = o.toolkit
	}
	if cmd.Flags().Changed("preview") {
		mode, err := ParsePreviewMode(o.preview)
		if err != nil {
			return err
		}
		config.Preview = mode
	}
	o.config = config

	level := hclog.Warn
	switch {
	case o.verbose:
		level = hclog.Debug
	case o.quiet:
		level = hclog.Error
	}
	o.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "tincture",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	o.logger.Debug("configuration loaded",
		"toolkit", config.ToolkitPath,
		"preview", config.Preview,
		"no_colour", config.NoColour)
	return nil
}

// toolkitLogger returns the logger handed to toolkit plugin clients.
func (o *options) toolkitLogger() hclog.Logger {
	if o.verbose {
		return o.logger.Named("toolkit")
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "toolkit",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
