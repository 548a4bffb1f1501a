// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gdal

import (
	"strings"

	"github.com/matt-FFFFFF/rasterbatch/internal/cmdtemplate"
)

// DefaultWarpTool is the gdalwarp executable name.
const DefaultWarpTool = "gdalwarp"

var _ Command = Warp{}

// Warp is one gdalwarp invocation: clip an input raster to a bounding box
// and/or reproject it to a target spatial reference.
type Warp struct {
	// Tool overrides the executable name. Empty means DefaultWarpTool.
	Tool string
	// Bounds is the target extent passed as -te. Optional when TargetSRS is set.
	Bounds BoundingBox
	// TargetSRS is the target spatial reference passed as -t_srs, e.g. "EPSG:4326".
	TargetSRS string
	// Resampling is the resampling method passed as -r, e.g. "near", "bilinear".
	Resampling string
	// Input is the source raster path.
	Input string
	// Output is the destination raster path.
	Output string
}

// Validate checks the invocation before rendering.
func (w Warp) Validate() error {
	if w.Input == "" {
		return ErrNoInput
	}

	if w.Output == "" {
		return ErrNoOutput
	}

	if w.Output == w.Input {
		return ErrOutputIsInput
	}

	if !w.Bounds.IsZero() {
		return w.Bounds.Validate()
	}

	return nil
}

// Command renders the gdalwarp command line.
func (w Warp) Command() (string, error) {
	if err := w.Validate(); err != nil {
		return "", err
	}

	tool := w.Tool
	if tool == "" {
		tool = DefaultWarpTool
	}

	sb := strings.Builder{}
	sb.WriteString("{tool}")

	subs := map[string]string{
		"tool":   quoteArg(tool),
		"input":  quoteArg(w.Input),
		"output": quoteArg(w.Output),
	}

	if !w.Bounds.IsZero() {
		sb.WriteString(" -te {bounds}")

		subs["bounds"] = w.Bounds.String()
	}

	if w.TargetSRS != "" {
		sb.WriteString(" -t_srs {t_srs}")

		subs["t_srs"] = quoteArg(w.TargetSRS)
	}

	if w.Resampling != "" {
		sb.WriteString(" -r {resampling}")

		subs["resampling"] = quoteArg(w.Resampling)
	}

	sb.WriteString(" {input} {output}")

	return cmdtemplate.Render(sb.String(), subs)
}
