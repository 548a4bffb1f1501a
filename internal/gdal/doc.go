// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gdal builds shell command lines for the external GDAL utilities:
// gdalwarp (clip/reproject), gdal_merge.py (mosaic/stack), and gdal_calc.py
// (raster algebra). The tools are consumed as opaque command-line contracts;
// nothing in this package links against GDAL or executes the commands it
// builds.
package gdal
