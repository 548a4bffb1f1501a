// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"github.com/matt-FFFFFF/rasterbatch/internal/gdal"
)

// PlanDefinition is the top-level YAML document.
type PlanDefinition struct {
	// Name is the human-readable name of the batch.
	Name string `yaml:"name"`
	// Script is the path of the script file to generate.
	Script string `yaml:"script"`
	// LineEndings selects the script's line-ending convention: "posix"
	// (default) or "windows". This is never autodetected because the
	// generating and executing environments may differ.
	LineEndings string `yaml:"line_endings,omitempty"`
	// Overwrite permits replacing an existing script file.
	Overwrite bool `yaml:"overwrite,omitempty"`
	// Jobs is the ordered list of job definitions.
	Jobs []any `yaml:"jobs"`
}

// BaseDefinition contains fields common to all job types.
type BaseDefinition struct {
	// Type is the job type: "warp", "merge", or "calc".
	Type string `yaml:"type"`
	// Name is the descriptive name of the job.
	Name string `yaml:"name"`
	// Tool overrides the executable name for this job.
	Tool string `yaml:"tool,omitempty"`
}

// WarpDefinition is one gdalwarp job. Set Directory and Pattern to generate
// one command per matching file with outputs derived by the suffix rule, or
// set Input and Output for a single invocation.
type WarpDefinition struct {
	BaseDefinition `yaml:",inline"`
	// Directory is enumerated against Pattern in per-file mode.
	Directory string `yaml:"directory,omitempty"`
	// Pattern is a shell glob matched against file base names.
	Pattern string `yaml:"pattern,omitempty"`
	// OutputSuffix is inserted before the extension of each derived output.
	OutputSuffix string `yaml:"output_suffix,omitempty"`
	// OutputDirectory redirects derived outputs to another directory.
	OutputDirectory string `yaml:"output_directory,omitempty"`
	// Input is the source raster in single-invocation mode.
	Input string `yaml:"input,omitempty"`
	// Output is the destination raster in single-invocation mode.
	Output string `yaml:"output,omitempty"`
	// Bounds is the clip extent passed as -te.
	Bounds gdal.BoundingBox `yaml:"bounds,omitempty"`
	// TargetSRS is the target spatial reference, e.g. "EPSG:4326".
	TargetSRS string `yaml:"target_srs,omitempty"`
	// Resampling is the resampling method, e.g. "near", "bilinear".
	Resampling string `yaml:"resampling,omitempty"`
}

// MergeDefinition is one gdal_merge.py job. Inputs may be listed explicitly
// or enumerated from Directory and Pattern.
type MergeDefinition struct {
	BaseDefinition `yaml:",inline"`
	// Inputs are explicit source rasters, in band order when stacking.
	Inputs []string `yaml:"inputs,omitempty"`
	// Directory is enumerated against Pattern when Inputs is empty.
	Directory string `yaml:"directory,omitempty"`
	// Pattern is a shell glob matched against file base names.
	Pattern string `yaml:"pattern,omitempty"`
	// Output is the destination raster.
	Output string `yaml:"output"`
	// Separate stacks inputs into bands instead of mosaicking.
	Separate bool `yaml:"separate,omitempty"`
	// NoData sets the output no-data value.
	NoData *float64 `yaml:"nodata,omitempty"`
}

// CalcDefinition is one gdal_calc.py job. Set Inputs for a single labeled
// invocation, or Directory and Pattern to apply the expression to every
// matching file under the label A with outputs derived by the suffix rule.
type CalcDefinition struct {
	BaseDefinition `yaml:",inline"`
	// Inputs maps single-letter labels (A-Z) to raster paths.
	Inputs map[string]string `yaml:"inputs,omitempty"`
	// Directory is enumerated against Pattern in per-file mode.
	Directory string `yaml:"directory,omitempty"`
	// Pattern is a shell glob matched against file base names.
	Pattern string `yaml:"pattern,omitempty"`
	// OutputSuffix is inserted before the extension of each derived output.
	OutputSuffix string `yaml:"output_suffix,omitempty"`
	// OutputDirectory redirects derived outputs to another directory.
	OutputDirectory string `yaml:"output_directory,omitempty"`
	// Expression is the calculation over the labels, e.g. "A>=30".
	Expression string `yaml:"expression"`
	// Output is the destination raster in single-invocation mode.
	Output string `yaml:"output,omitempty"`
	// NoData sets the output no-data value.
	NoData *float64 `yaml:"nodata,omitempty"`
	// Compress selects output compression, e.g. "LZW".
	Compress string `yaml:"compress,omitempty"`
}
