// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gdal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarpCommand(t *testing.T) {
	tests := []struct {
		name     string
		warp     Warp
		expected string
		wantErr  error
	}{
		{
			name: "clip_to_bounds",
			warp: Warp{
				Bounds: BoundingBox{MinX: 91.98, MinY: 21.74, MaxX: 92.41, MaxY: 22.29},
				Input:  "band3.tif",
				Output: "band3_clip.tif",
			},
			expected: "gdalwarp -te 91.98 21.74 92.41 22.29 band3.tif band3_clip.tif",
		},
		{
			name: "reproject_only",
			warp: Warp{
				TargetSRS: "EPSG:32646",
				Input:     "tile.tif",
				Output:    "tile_utm.tif",
			},
			expected: "gdalwarp -t_srs EPSG:32646 tile.tif tile_utm.tif",
		},
		{
			name: "bounds_srs_and_resampling",
			warp: Warp{
				Bounds:     BoundingBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
				TargetSRS:  "EPSG:4326",
				Resampling: "bilinear",
				Input:      "in.tif",
				Output:     "out.tif",
			},
			expected: "gdalwarp -te 0 0 1 1 -t_srs EPSG:4326 -r bilinear in.tif out.tif",
		},
		{
			name: "path_with_spaces_is_quoted",
			warp: Warp{
				Bounds: BoundingBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
				Input:  "forest tiles/band3.tif",
				Output: "forest tiles/band3_clip.tif",
			},
			expected: `gdalwarp -te 0 0 1 1 "forest tiles/band3.tif" "forest tiles/band3_clip.tif"`,
		},
		{
			name:    "missing_input",
			warp:    Warp{Output: "out.tif"},
			wantErr: ErrNoInput,
		},
		{
			name:    "missing_output",
			warp:    Warp{Input: "in.tif"},
			wantErr: ErrNoOutput,
		},
		{
			name:    "output_equals_input",
			warp:    Warp{Input: "in.tif", Output: "in.tif"},
			wantErr: ErrOutputIsInput,
		},
		{
			name: "inverted_bounds",
			warp: Warp{
				Bounds: BoundingBox{MinX: 2, MinY: 0, MaxX: 1, MaxY: 1},
				Input:  "in.tif",
				Output: "out.tif",
			},
			wantErr: ErrInvalidBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.warp.Command()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBoundingBoxString(t *testing.T) {
	b := BoundingBox{MinX: 91.979254, MinY: 21.742929, MaxX: 92.406997, MaxY: 22.294557}
	assert.Equal(t, "91.979254 21.742929 92.406997 22.294557", b.String())
}

func TestBoundingBoxIsZero(t *testing.T) {
	assert.True(t, BoundingBox{}.IsZero())
	assert.False(t, BoundingBox{MaxX: 1}.IsZero())
}
