// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gdal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/rasterbatch/internal/cmdtemplate"
)

// DefaultCalcTool is the gdal_calc executable name.
const DefaultCalcTool = "gdal_calc.py"

var _ Command = Calc{}

// Calc is one gdal_calc.py invocation: evaluate an expression over one or
// more labeled input rasters and write the result. The canonical use is
// thresholding, e.g. turning a tree-cover percentage raster into a binary
// forest mask with the expression "A>=30".
type Calc struct {
	// Tool overrides the executable name. Empty means DefaultCalcTool.
	Tool string
	// Inputs maps single-letter labels (A-Z) to raster paths. Labels are
	// emitted in alphabetical order so rendering is deterministic.
	Inputs map[string]string
	// Expression is the calculation over the labels, passed to --calc.
	Expression string
	// Output is the destination raster path, passed to --outfile.
	Output string
	// NoData sets the output no-data value via --NoDataValue.
	NoData *float64
	// Compress selects an output compression algorithm, emitted as
	// --co COMPRESS=<alg>, e.g. "LZW" or "DEFLATE".
	Compress string
}

// Validate checks the invocation before rendering.
func (c Calc) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	if c.Expression == "" {
		return ErrNoExpression
	}

	if c.Output == "" {
		return ErrNoOutput
	}

	for label, path := range c.Inputs {
		if len(label) != 1 || label[0] < 'A' || label[0] > 'Z' {
			return fmt.Errorf("%w: %q", ErrBadLabel, label)
		}

		if path == c.Output {
			return ErrOutputIsInput
		}
	}

	return nil
}

// Command renders the gdal_calc.py command line.
func (c Calc) Command() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	tool := c.Tool
	if tool == "" {
		tool = DefaultCalcTool
	}

	labels := make([]string, 0, len(c.Inputs))
	for label := range c.Inputs {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	sb := strings.Builder{}
	sb.WriteString("{tool}")

	subs := map[string]string{
		"tool":   quoteArg(tool),
		"output": quoteArg(c.Output),
		"expr":   quoteArg(c.Expression),
	}

	for _, label := range labels {
		sb.WriteString(" -" + label + " {input_" + label + "}")

		subs["input_"+label] = quoteArg(c.Inputs[label])
	}

	sb.WriteString(" --outfile={output} --calc={expr}")

	if c.NoData != nil {
		sb.WriteString(" --NoDataValue={nodata}")

		subs["nodata"] = strconv.FormatFloat(*c.NoData, 'f', -1, 64)
	}

	if c.Compress != "" {
		sb.WriteString(" --co {co}")

		subs["co"] = quoteArg("COMPRESS=" + strings.ToUpper(c.Compress))
	}

	return cmdtemplate.Render(sb.String(), subs)
}
