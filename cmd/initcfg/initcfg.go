// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package initcfg implements the command that writes a starter plan
// definition to get a new batch going.
package initcfg

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/rasterbatch/internal/ctxlog"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	pathArg   = "path"
	forceFlag = "force"

	// DefaultPath is where the starter definition is written when no path
	// argument is given.
	DefaultPath = "rasterbatch.yaml"
)

// ExampleYAML is the starter plan definition written by the init command.
// It walks the canonical Global Forest Change workflow: clip a directory of
// band tiles to an area of interest, stack the clipped bands, and threshold
// tree cover into a binary forest mask.
const ExampleYAML = `name: "Forest cover workflow"
script: "forest_workflow.sh"
line_endings: "posix"
jobs:
  - type: "warp"
    name: "clip-bands"
    directory: "./tiles"
    pattern: "band*.tif"
    output_suffix: "_clip"
    bounds:
      min_x: 91.979254
      min_y: 21.742929
      max_x: 92.406997
      max_y: 22.294557

  - type: "merge"
    name: "stack-bands"
    directory: "./tiles"
    pattern: "band*_clip.tif"
    output: "./tiles/stack.tif"
    separate: true

  - type: "calc"
    name: "forest-mask"
    inputs:
      A: "./tiles/treecover2000.tif"
    expression: "A>=30"
    output: "./tiles/forest_mask.tif"
    compress: "LZW"
`

// InitCmd is the command that writes a starter plan definition.
var InitCmd = &cli.Command{
	Name:        "init",
	Description: "Write a starter YAML plan definition to the given path.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      pathArg,
			UsageText: " [PATH]",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        forceFlag,
			Usage:       "Replace the file if it already exists",
			Value:       false,
			DefaultText: "false",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg(pathArg)
	if path == "" {
		path = DefaultPath
	}

	fsys := afero.NewOsFs()

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if exists && !cmd.Bool(forceFlag) {
		return cli.Exit(fmt.Sprintf("%s already exists, use --force to replace it", path), 1)
	}

	if err := afero.WriteFile(fsys, path, []byte(ExampleYAML), 0o644); err != nil {
		return cli.Exit("failed to write "+path+": "+err.Error(), 1)
	}

	ctxlog.Info(ctx, "starter plan written", "path", path)

	return nil
}
