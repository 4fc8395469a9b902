package adapter

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// ToolkitRPC implements the go-plugin Plugin interface for toolkit bindings.
type ToolkitRPC struct {
	plugin.Plugin
	Impl Toolkit
}

// Server returns an RPC server for this plugin.
func (p *ToolkitRPC) Server(*plugin.MuxBroker) (any, error) {
	return &ToolkitRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *ToolkitRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &ToolkitRPCClient{client: c}, nil
}

// ToolkitRPCServer is the RPC server implementation for toolkit bindings.
type ToolkitRPCServer struct {
	Impl Toolkit
}

// Components implements the RPC method for reading a native colour.
func (s *ToolkitRPCServer) Components(ref string, resp *colour.Record) error {
	rec, err := s.Impl.Components(ref)
	if err != nil {
		return err
	}
	*resp = rec
	return nil
}

// Native implements the RPC method for building a native colour.
func (s *ToolkitRPCServer) Native(rec colour.Record, resp *string) error {
	ref, err := s.Impl.Native(rec)
	if err != nil {
		return err
	}
	*resp = ref
	return nil
}

// Info implements the RPC method for fetching binding metadata.
func (s *ToolkitRPCServer) Info(_ any, resp *ToolkitInfo) error {
	*resp = s.Impl.Info()
	return nil
}

// ToolkitRPCClient is the RPC client implementation for toolkit bindings.
// It satisfies Adapter[string].
type ToolkitRPCClient struct {
	client *rpc.Client
}

var _ Adapter[string] = (*ToolkitRPCClient)(nil)

// Components calls the remote Components method.
func (c *ToolkitRPCClient) Components(ref string) (colour.Record, error) {
	var rec colour.Record
	err := c.client.Call("Plugin.Components", ref, &rec)
	return rec, err
}

// Native calls the remote Native method.
func (c *ToolkitRPCClient) Native(rec colour.Record) (string, error) {
	var ref string
	err := c.client.Call("Plugin.Native", rec, &ref)
	return ref, err
}

// Info calls the remote Info method.
func (c *ToolkitRPCClient) Info() (ToolkitInfo, error) {
	var info ToolkitInfo
	err := c.client.Call("Plugin.Info", new(any), &info)
	return info, err
}
