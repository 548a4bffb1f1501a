// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gdal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestMergeCommand(t *testing.T) {
	tests := []struct {
		name     string
		merge    Merge
		expected string
		wantErr  error
	}{
		{
			name: "stack_bands",
			merge: Merge{
				Inputs:   []string{"band3_clip.tif", "band4_clip.tif", "band5_clip.tif"},
				Output:   "stack.tif",
				Separate: true,
			},
			expected: "gdal_merge.py -o stack.tif -separate band3_clip.tif band4_clip.tif band5_clip.tif",
		},
		{
			name: "mosaic_with_nodata",
			merge: Merge{
				Inputs: []string{"tile_10N_090E.tif", "tile_20N_090E.tif"},
				Output: "mosaic.tif",
				NoData: float64Ptr(0),
			},
			expected: "gdal_merge.py -o mosaic.tif -a_nodata 0 tile_10N_090E.tif tile_20N_090E.tif",
		},
		{
			name:    "no_inputs",
			merge:   Merge{Output: "out.tif"},
			wantErr: ErrNoInput,
		},
		{
			name:    "no_output",
			merge:   Merge{Inputs: []string{"a.tif"}},
			wantErr: ErrNoOutput,
		},
		{
			name: "output_among_inputs",
			merge: Merge{
				Inputs: []string{"a.tif", "out.tif"},
				Output: "out.tif",
			},
			wantErr: ErrOutputIsInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.merge.Command()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
