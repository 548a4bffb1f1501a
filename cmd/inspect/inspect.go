// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package inspect implements the command that prints raster metadata and
// band statistics.
package inspect

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/rasterbatch/internal/ctxlog"
	"github.com/matt-FFFFFF/rasterbatch/internal/rasterinfo"
	"github.com/urfave/cli/v3"
)

const (
	rasterArg = "raster"
	statsFlag = "stats"
	bandFlag  = "band"
)

// InspectCmd is the command that prints raster metadata.
var InspectCmd = &cli.Command{
	Name: "inspect",
	Description: `Print the metadata of a raster file: dimensions, band count, pixel type,
projection, geotransform, and no-data value. With --stats, also compute
min/max/mean/stddev over the valid pixels of one band. Statistics are
computed once per invocation and cached on the open dataset handle.`,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      rasterArg,
			UsageText: "RASTERFILE",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        statsFlag,
			Usage:       "Compute band statistics over valid pixels",
			Value:       false,
			DefaultText: "false",
		},
		&cli.IntFlag{
			Name:    bandFlag,
			Aliases: []string{"b"},
			Usage:   "Band number for --stats (1-based)",
			Value:   1,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg(rasterArg)
	if path == "" {
		return cli.Exit("Please provide a raster file to inspect", 1)
	}

	h, err := rasterinfo.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	defer h.Close() //nolint:errcheck

	info := h.Info()

	fmt.Fprintf(cmd.Writer, "Path:       %s\n", info.Path)
	fmt.Fprintf(cmd.Writer, "Size:       %d x %d\n", info.SizeX, info.SizeY)
	fmt.Fprintf(cmd.Writer, "Bands:      %d (%s)\n", info.Bands, info.DataType)

	if info.Projection != "" {
		fmt.Fprintf(cmd.Writer, "Projection: %s\n", info.Projection)
	}

	fmt.Fprintf(cmd.Writer, "Origin:     (%.6f, %.6f)\n", info.GeoTransform[0], info.GeoTransform[3])
	fmt.Fprintf(cmd.Writer, "Pixel size: (%.6f, %.6f)\n", info.GeoTransform[1], info.GeoTransform[5])

	if info.NoData != nil {
		fmt.Fprintf(cmd.Writer, "No-data:    %g\n", *info.NoData)
	}

	if !cmd.Bool(statsFlag) {
		return nil
	}

	band := cmd.Int(bandFlag)

	stats, err := h.Statistics(band)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctxlog.Debug(ctx, "statistics computed", "band", band, "pixels", stats.Count)

	fmt.Fprintf(cmd.Writer, "Band %d:     min=%g max=%g mean=%.4f stddev=%.4f (%d valid pixels)\n",
		band, stats.Min, stats.Max, stats.Mean, stats.StdDev, stats.Count)

	return nil
}
