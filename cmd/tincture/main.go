// Tincture - Colour arithmetic for themes and UI palettes
//
// Tincture converts, blends and adjusts colours, checks contrast and
// exchanges colours with host toolkits through plugin bindings.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/tincture/internal/cli"
)

func main() {
	cli.Execute()
}
