// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gdal

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/rasterbatch/internal/cmdtemplate"
)

// DefaultMergeTool is the gdal_merge executable name.
const DefaultMergeTool = "gdal_merge.py"

var _ Command = Merge{}

// Merge is one gdal_merge.py invocation: mosaic several rasters into one, or
// stack them into a multi-band output when Separate is set.
type Merge struct {
	// Tool overrides the executable name. Empty means DefaultMergeTool.
	Tool string
	// Inputs are the source raster paths, in band order when stacking.
	Inputs []string
	// Output is the destination raster path.
	Output string
	// Separate places each input in its own band instead of mosaicking.
	Separate bool
	// NoData sets the output no-data value via -a_nodata.
	NoData *float64
}

// Validate checks the invocation before rendering.
func (m Merge) Validate() error {
	if len(m.Inputs) == 0 {
		return ErrNoInput
	}

	if m.Output == "" {
		return ErrNoOutput
	}

	if slices.Contains(m.Inputs, m.Output) {
		return ErrOutputIsInput
	}

	return nil
}

// Command renders the gdal_merge.py command line.
func (m Merge) Command() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	tool := m.Tool
	if tool == "" {
		tool = DefaultMergeTool
	}

	sb := strings.Builder{}
	sb.WriteString("{tool} -o {output}")

	subs := map[string]string{
		"tool":   quoteArg(tool),
		"output": quoteArg(m.Output),
		"inputs": quoteAll(m.Inputs),
	}

	if m.Separate {
		sb.WriteString(" -separate")
	}

	if m.NoData != nil {
		sb.WriteString(" -a_nodata {nodata}")

		subs["nodata"] = strconv.FormatFloat(*m.NoData, 'f', -1, 64)
	}

	sb.WriteString(" {inputs}")

	return cmdtemplate.Render(sb.String(), subs)
}
