package cli

import (
	"fmt"
	"os"
	"strings"
)

// PreviewMode controls whether colour swatches are drawn in command output.
type PreviewMode string

const (
	// PreviewAuto draws swatches when stdout is a colour-capable terminal.
	PreviewAuto PreviewMode = "auto"
	// PreviewAlways draws swatches unconditionally.
	PreviewAlways PreviewMode = "always"
	// PreviewNever disables swatches.
	PreviewNever PreviewMode = "never"
)

// ParsePreviewMode parses a preview mode name.
func ParsePreviewMode(s string) (PreviewMode, error) {
	switch mode := PreviewMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case PreviewAuto, PreviewAlways, PreviewNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid preview mode %q (must be auto, always or never)", s)
	}
}

// Config holds CLI configuration.
type Config struct {
	// ToolkitPath is the toolkit binding binary used by the toolkit commands.
	ToolkitPath string

	// Preview controls colour swatches in output.
	Preview PreviewMode

	// NoColour is set when the NO_COLOR convention asks for plain output.
	NoColour bool
}

// ConfigBuilder provides a fluent interface for constructing a Config.
type ConfigBuilder struct {
	config Config
	useEnv bool
}

// NewConfigBuilder creates a new builder with default settings.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{Preview: PreviewAuto},
	}
}

// WithConfig sets the base configuration.
func (b *ConfigBuilder) WithConfig(config Config) *ConfigBuilder {
	b.config = config
	return b
}

// WithEnvConfig loads configuration from environment variables.
// Reads TINCTURE_TOOLKIT, TINCTURE_PREVIEW and NO_COLOR.
func (b *ConfigBuilder) WithEnvConfig() *ConfigBuilder {
	b.useEnv = true
	return b
}

// Build constructs the Config. Environment values override the base
// configuration.
func (b *ConfigBuilder) Build() (Config, error) {
	config := b.config
	if config.Preview == "" {
		config.Preview = PreviewAuto
	}

	if b.useEnv {
		if path := os.Getenv("TINCTURE_TOOLKIT"); path != "" {
			config.ToolkitPath = path
		}
		if preview := os.Getenv("TINCTURE_PREVIEW"); preview != "" {
			mode, err := ParsePreviewMode(preview)
			if err != nil {
				return Config{}, fmt.Errorf("failed to read TINCTURE_PREVIEW: %w", err)
			}
			config.Preview = mode
		}
		if os.Getenv("NO_COLOR") != "" {
			config.NoColour = true
		}
	}

	return config, nil
}
