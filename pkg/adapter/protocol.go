package adapter

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current toolkit plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	ProtocolVersion = "0.1.0"

	// PluginName is the key toolkit bindings are dispensed under.
	PluginName = "toolkit"
)

// Handshake is the handshake configuration shared by tincture and toolkit
// bindings. A binary built against a different major version is refused.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // Major version from ProtocolVersion
	MagicCookieKey:   "TINCTURE_TOOLKIT_PLUGIN",
	MagicCookieValue: "tincture_colour_toolkit",
}

// ToolkitInfo describes a toolkit binding.
type ToolkitInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// Toolkit is a binding whose native colours are addressed by string
// references, such as a system colour name or a serialized native value.
// It is the shape an out-of-process binding takes.
type Toolkit interface {
	Adapter[string]

	// Info returns binding metadata.
	Info() ToolkitInfo
}
