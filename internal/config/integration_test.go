// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config_test

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/rasterbatch/internal/batch"
	"github.com/matt-FFFFFF/rasterbatch/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()

	for _, f := range files {
		require.NoError(t, afero.WriteFile(fsys, f, []byte("data"), 0o644))
	}

	return fsys
}

func TestBuildFromYAML_WarpPerFile(t *testing.T) {
	yamlData := `
name: "Clip forest tiles"
script: "clip_tiles.sh"
jobs:
  - type: "warp"
    name: "clip-bands"
    directory: "/data"
    pattern: "*.tif"
    output_suffix: "_clip"
    bounds:
      min_x: 91.979254
      min_y: 21.742929
      max_x: 92.406997
      max_y: 22.294557
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)
	require.Len(t, plan.Jobs, 1)
	assert.Equal(t, "Clip forest tiles", plan.Name)
	assert.Equal(t, "clip_tiles.sh", plan.Script)
	assert.Equal(t, batch.LineEndingPosix, plan.Ending)

	fsys := testFs(t, "/data/band3.tif", "/data/band4.tif", "/data/band5.tif")

	script, err := plan.Build(ctx, fsys)
	require.NoError(t, err)

	expected := []string{
		"gdalwarp -te 91.979254 21.742929 92.406997 22.294557 /data/band3.tif /data/band3_clip.tif",
		"gdalwarp -te 91.979254 21.742929 92.406997 22.294557 /data/band4.tif /data/band4_clip.tif",
		"gdalwarp -te 91.979254 21.742929 92.406997 22.294557 /data/band5.tif /data/band5_clip.tif",
	}
	assert.Equal(t, expected, script.Commands)
}

func TestBuildFromYAML_EmptyMatchYieldsEmptyScript(t *testing.T) {
	yamlData := `
name: "Nothing to do"
script: "noop.sh"
jobs:
  - type: "warp"
    name: "clip-bands"
    directory: "/data"
    pattern: "*.tif"
    output_suffix: "_clip"
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)

	fsys := testFs(t, "/data/readme.txt")

	script, err := plan.Build(ctx, fsys)
	require.NoError(t, err)
	assert.Zero(t, script.Len())
}

func TestBuildFromYAML_MergeStack(t *testing.T) {
	yamlData := `
name: "Stack bands"
script: "stack.sh"
jobs:
  - type: "merge"
    name: "stack-bands"
    inputs:
      - "band3_clip.tif"
      - "band4_clip.tif"
      - "band5_clip.tif"
    output: "stack.tif"
    separate: true
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)

	script, err := plan.Build(ctx, afero.NewMemMapFs())
	require.NoError(t, err)

	require.Equal(t, 1, script.Len())
	assert.Equal(t,
		"gdal_merge.py -o stack.tif -separate band3_clip.tif band4_clip.tif band5_clip.tif",
		script.Commands[0])
}

func TestBuildFromYAML_MergeEnumerated(t *testing.T) {
	yamlData := `
name: "Mosaic tiles"
script: "mosaic.sh"
jobs:
  - type: "merge"
    name: "mosaic"
    directory: "/tiles"
    pattern: "*.tif"
    output: "/out/mosaic.tif"
    nodata: 0
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)

	fsys := testFs(t, "/tiles/a.tif", "/tiles/b.tif")

	script, err := plan.Build(ctx, fsys)
	require.NoError(t, err)

	require.Equal(t, 1, script.Len())
	assert.Equal(t,
		"gdal_merge.py -o /out/mosaic.tif -a_nodata 0 /tiles/a.tif /tiles/b.tif",
		script.Commands[0])
}

func TestBuildFromYAML_CalcForestMask(t *testing.T) {
	yamlData := `
name: "Forest mask"
script: "mask.sh"
jobs:
  - type: "calc"
    name: "threshold"
    inputs:
      A: "treecover2000.tif"
    expression: "A>=30"
    output: "forest_mask.tif"
    compress: "LZW"
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)

	script, err := plan.Build(ctx, afero.NewMemMapFs())
	require.NoError(t, err)

	require.Equal(t, 1, script.Len())
	assert.Equal(t,
		`gdal_calc.py -A treecover2000.tif --outfile=forest_mask.tif --calc="A>=30" --co COMPRESS=LZW`,
		script.Commands[0])
}

func TestBuildFromYAML_CalcPerFile(t *testing.T) {
	yamlData := `
name: "Threshold all tiles"
script: "mask_all.sh"
jobs:
  - type: "calc"
    name: "threshold-tiles"
    directory: "/cover"
    pattern: "*.tif"
    output_suffix: "_mask"
    expression: "A>=30"
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)

	fsys := testFs(t, "/cover/t1.tif", "/cover/t2.tif")

	script, err := plan.Build(ctx, fsys)
	require.NoError(t, err)

	expected := []string{
		`gdal_calc.py -A /cover/t1.tif --outfile=/cover/t1_mask.tif --calc="A>=30"`,
		`gdal_calc.py -A /cover/t2.tif --outfile=/cover/t2_mask.tif --calc="A>=30"`,
	}
	assert.Equal(t, expected, script.Commands)
}

func TestBuildFromYAML_MultipleJobsInOrder(t *testing.T) {
	yamlData := `
name: "Full workflow"
script: "workflow.sh"
line_endings: "posix"
jobs:
  - type: "warp"
    name: "clip"
    directory: "/data"
    pattern: "band*.tif"
    output_suffix: "_clip"
    bounds:
      min_x: 0
      min_y: 0
      max_x: 1
      max_y: 1
  - type: "merge"
    name: "stack"
    inputs: ["/data/band3_clip.tif", "/data/band4_clip.tif"]
    output: "/data/stack.tif"
    separate: true
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)
	require.Len(t, plan.Jobs, 2)

	fsys := testFs(t, "/data/band3.tif", "/data/band4.tif")

	script, err := plan.Build(ctx, fsys)
	require.NoError(t, err)

	require.Equal(t, 3, script.Len())
	assert.Contains(t, script.Commands[0], "band3.tif")
	assert.Contains(t, script.Commands[1], "band4.tif")
	assert.Contains(t, script.Commands[2], "gdal_merge.py")
}

func TestBuildFromYAML_MissingDirectoryAborts(t *testing.T) {
	yamlData := `
name: "Bad directory"
script: "bad.sh"
jobs:
  - type: "warp"
    name: "clip"
    directory: "/missing"
    pattern: "*.tif"
    output_suffix: "_clip"
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)

	_, err = plan.Build(ctx, afero.NewMemMapFs())
	require.ErrorIs(t, err, batch.ErrDirectoryNotFound)
}

func TestBuildFromYAML_CollisionAborts(t *testing.T) {
	// redirecting outputs to the input directory without a suffix derives
	// every input onto itself
	yamlData := `
name: "Colliding outputs"
script: "bad.sh"
jobs:
  - type: "warp"
    name: "clip"
    directory: "/data"
    pattern: "*.tif"
    output_directory: "/data"
    bounds: {min_x: 0, min_y: 0, max_x: 1, max_y: 1}
`

	ctx := context.Background()

	plan, err := config.BuildFromYAML(ctx, []byte(yamlData))
	require.NoError(t, err)

	fsys := testFs(t, "/data/band3.tif")

	_, err = plan.Build(ctx, fsys)
	require.ErrorIs(t, err, batch.ErrPathCollision)
}
