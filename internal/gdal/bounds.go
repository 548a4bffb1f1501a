// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gdal

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidBounds is returned when a bounding box is degenerate or inverted.
var ErrInvalidBounds = errors.New("invalid bounding box, min must be strictly less than max on both axes")

// BoundingBox is a georeferenced extent in the raster's coordinate system.
// The field order follows gdalwarp's -te convention: xmin ymin xmax ymax.
type BoundingBox struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// IsZero reports whether the box is entirely unset.
func (b BoundingBox) IsZero() bool {
	return b == BoundingBox{}
}

// Validate checks that the box spans a positive area.
func (b BoundingBox) Validate() error {
	if b.MinX >= b.MaxX || b.MinY >= b.MaxY {
		return fmt.Errorf("%w: %s", ErrInvalidBounds, b)
	}

	return nil
}

// String formats the box in -te argument order.
func (b BoundingBox) String() string {
	return formatCoord(b.MinX) + " " + formatCoord(b.MinY) + " " +
		formatCoord(b.MaxX) + " " + formatCoord(b.MaxY)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
