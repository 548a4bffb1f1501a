// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gen implements the command that generates a batch script from a
// YAML plan definition.
package gen

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/rasterbatch/internal/batch"
	"github.com/matt-FFFFFF/rasterbatch/internal/config"
	"github.com/matt-FFFFFF/rasterbatch/internal/ctxlog"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag        = "file"
	outFlag         = "out"
	overwriteFlag   = "overwrite"
	lineEndingsFlag = "line-endings"
	dryRunFlag      = "dry-run"
)

// GenCmd is the command that generates a script from a YAML plan definition.
var GenCmd = NewGenCmd()

// NewGenCmd returns a fresh gen command. Command values carry parsed flag
// state, so each invocation needs its own.
func NewGenCmd() *cli.Command {
	return &cli.Command{
		Name: "gen",
		Description: `Generate a batch script from a YAML plan definition.
The plan enumerates raster files, derives output paths, and renders one GDAL
command per invocation. The resulting script is written in full or not at
all: any enumeration or rendering failure aborts before the file is touched.

Plan file URLs use Hashicorp's go-getter syntax, which allows for fetching
files from various sources. See https://github.com/hashicorp/go-getter.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     fileFlag,
				Aliases:  []string{"f"},
				Usage:    "URL or path of the YAML plan definition",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:      outFlag,
				Aliases:   []string{"o"},
				Usage:     "Override the script path named in the plan",
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.BoolFlag{
				Name:        overwriteFlag,
				Usage:       "Replace the script file if it already exists",
				Value:       false,
				DefaultText: "false",
			},
			&cli.StringFlag{
				Name:     lineEndingsFlag,
				Usage:    "Override the script line endings: 'posix' or 'windows'",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:        dryRunFlag,
				Aliases:     []string{"n"},
				Usage:       "Print the rendered commands instead of writing the script",
				Value:       false,
				DefaultText: "false",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	src := cmd.String(fileFlag)
	if src == "" {
		return cli.Exit("Please provide a YAML plan definition with --file", 1)
	}

	data, err := getURL(ctx, src)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to get plan %s: %s", src, err.Error()), 1)
	}

	plan, err := config.BuildFromYAML(ctx, data)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to build plan from %s: %s", src, err.Error()), 1)
	}

	if le := cmd.String(lineEndingsFlag); le != "" {
		ending, err := batch.ParseLineEnding(le)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		plan.Ending = ending
	}

	fsys := afero.NewOsFs()

	script, err := plan.Build(ctx, fsys)
	if err != nil {
		return cli.Exit("failed to build script: "+err.Error(), 1)
	}

	if script.Len() == 0 {
		ctxlog.Warn(ctx, "no files matched, generating an empty script")
	}

	if cmd.Bool(dryRunFlag) {
		for _, line := range script.Commands {
			fmt.Fprintln(cmd.Writer, line)
		}

		return nil
	}

	out := cmd.String(outFlag)
	if out == "" {
		out = plan.Script
	}

	if out == "" {
		return cli.Exit(config.ErrNoScript.Error(), 1)
	}

	overwrite := plan.Overwrite || cmd.Bool(overwriteFlag)

	if err := script.Write(fsys, out, overwrite); err != nil {
		return cli.Exit("failed to write script: "+err.Error(), 1)
	}

	ctxlog.Info(ctx, "script written",
		"path", out,
		"commands", script.Len(),
		"run_id", script.RunID.String(),
		"line_endings", script.Ending.String(),
	)

	return nil
}
