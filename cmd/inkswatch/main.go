// inkswatch - Fountain pen ink colour matching
//
// inkswatch searches a catalog of scanned ink swatches by name and colour
// and builds ink palettes, over MCP or from the command line.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/inkswatch/internal/cli"
)

func main() {
	cli.Execute()
}
