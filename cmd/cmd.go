// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/rasterbatch"
	"github.com/matt-FFFFFF/rasterbatch/cmd/gen"
	"github.com/matt-FFFFFF/rasterbatch/cmd/initcfg"
	"github.com/matt-FFFFFF/rasterbatch/cmd/inspect"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		gen.GenCmd,
		inspect.InspectCmd,
		initcfg.InitCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "rasterbatch",
	Version:   rasterbatch.Version,
	Description: `Rasterbatch generates batch scripts of GDAL commands from a declarative
YAML definition. It enumerates raster tiles, derives safe output paths, and
writes one fully resolved shell command per file (clipping with gdalwarp,
band stacking with gdal_merge.py, raster algebra with gdal_calc.py) to a
script for later execution. It never runs the commands itself.`,
	Usage:     "rasterbatch gen -f batch.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
