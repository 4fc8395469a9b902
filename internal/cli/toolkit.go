package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/adapter"
)

// launchToolkit is replaced in tests.
var launchToolkit = func(path string, opts *options) (toolkitClient, error) {
	return adapter.Launch(path, opts.toolkitLogger())
}

// toolkitClient is the part of adapter.Remote the toolkit commands use.
type toolkitClient interface {
	adapter.Adapter[string]
	Info() (adapter.ToolkitInfo, error)
	Close()
}

func newToolkitCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolkit",
		Short: "Exchange colours with a toolkit binding",
		Long: `Toolkit commands talk to a toolkit binding: a plugin binary that converts
between tincture colours and a host's native colour values.

The binding is taken from --toolkit or TINCTURE_TOOLKIT. tincture-css-toolkit
is a binding for CSS colour values.`,
	}

	cmd.AddCommand(
		newToolkitResolveCmd(opts),
		newToolkitNativeCmd(opts),
		newToolkitInfoCmd(opts),
	)
	return cmd
}

// withToolkit launches the configured binding, runs fn and stops it.
func withToolkit(opts *options, fn func(toolkitClient) error) error {
	client, err := launchToolkit(opts.config.ToolkitPath, opts)
	if err != nil {
		return fmt.Errorf("failed to start toolkit: %w", err)
	}
	defer client.Close()

	opts.logger.Debug("toolkit started", "path", opts.config.ToolkitPath)
	return fn(client)
}

func newToolkitResolveCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "resolve <ref>...",
		Short: "Read native colour references through the toolkit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withToolkit(opts, func(client toolkitClient) error {
				out := make([]labelled, len(args))
				for i, ref := range args {
					c, err := adapter.FromNative[string](client, ref)
					if err != nil {
						return err
					}
					out[i] = labelled{label: ref, colour: c}
				}
				return writeColours(cmd.OutOrStdout(), opts.config, format, out)
			})
		},
	}

	addOutputFlag(cmd, &format)
	return cmd
}

func newToolkitNativeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "native <colour>...",
		Short: "Build native colour references through the toolkit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			return withToolkit(opts, func(client toolkitClient) error {
				for _, c := range colours {
					ref, err := adapter.ToNative[string](client, c)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), ref)
				}
				return nil
			})
		},
	}
}

func newToolkitInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show toolkit binding metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withToolkit(opts, func(client toolkitClient) error {
				info, err := client.Info()
				if err != nil {
					return fmt.Errorf("failed to get toolkit info: %w", err)
				}

				table := NewTable("Field", "Value")
				table.AddRow("name", info.Name)
				table.AddRow("version", info.Version)
				table.AddRow("protocol", info.ProtocolVersion)
				table.AddRow("description", info.Description)
				_, err = table.WriteTo(cmd.OutOrStdout())
				return err
			})
		},
	}
}
