package adapter

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// ErrNoToolkit is returned when no toolkit binding has been configured.
var ErrNoToolkit = errors.New("no toolkit binding configured")

// Remote is a toolkit binding running in a child process.
type Remote struct {
	client *plugin.Client
	rpc    *ToolkitRPCClient
	logger hclog.Logger
}

var _ Adapter[string] = (*Remote)(nil)

// Launch starts the toolkit binding at path and connects to it. A nil
// logger silences plugin output.
func Launch(path string, logger hclog.Logger) (*Remote, error) {
	if path == "" {
		return nil, ErrNoToolkit
	}
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "toolkit",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &ToolkitRPC{},
		},
		Cmd:              exec.Command(path),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense toolkit: %w", err)
	}

	toolkit, ok := raw.(*ToolkitRPCClient)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("unexpected toolkit client type %T", raw)
	}

	logger.Debug("toolkit connected", "path", path)
	return &Remote{client: client, rpc: toolkit, logger: logger}, nil
}

// Components implements Adapter.
func (r *Remote) Components(ref string) (colour.Record, error) {
	rec, err := r.rpc.Components(ref)
	if err != nil {
		return colour.Record{}, fmt.Errorf("toolkit could not read %q: %w", ref, err)
	}
	r.logger.Trace("read native colour", "ref", ref, "record", rec)
	return rec, nil
}

// Native implements Adapter.
func (r *Remote) Native(rec colour.Record) (string, error) {
	ref, err := r.rpc.Native(rec)
	if err != nil {
		return "", fmt.Errorf("toolkit could not build colour: %w", err)
	}
	r.logger.Trace("built native colour", "ref", ref, "record", rec)
	return ref, nil
}

// Info returns the binding metadata.
func (r *Remote) Info() (ToolkitInfo, error) {
	return r.rpc.Info()
}

// Close stops the child process.
func (r *Remote) Close() {
	if r.client != nil {
		r.client.Kill()
		r.client = nil
	}
}

// Serve runs impl as a toolkit binding. It is called from the main function
// of the binding binary and blocks until the host disconnects.
func Serve(impl Toolkit) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &ToolkitRPC{Impl: impl},
		},
	})
}
