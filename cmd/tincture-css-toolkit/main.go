// tincture-css-toolkit - CSS colour toolkit binding for tincture
//
// Serves CSS colour values (hex, rgb(), hsl(), named colours) over the
// go-plugin RPC protocol so tincture can resolve and build them.
//
// Build:
//
//	go build -o tincture-css-toolkit ./cmd/tincture-css-toolkit
//
// Usage:
//
//	export TINCTURE_TOOLKIT=$PWD/tincture-css-toolkit
//	tincture toolkit resolve 'hsl(200, 90%, 55%)'
//	tincture toolkit native sky flame
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmylchreest/tincture/internal/toolkit/css"
	"github.com/jmylchreest/tincture/pkg/adapter"
)

func main() {
	toolkit := css.New()

	// Handle --plugin-info flag
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(toolkit.Info()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding toolkit info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	adapter.Serve(toolkit)
}
