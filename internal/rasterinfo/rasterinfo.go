// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rasterinfo reads raster metadata and band statistics through the
// GDAL bindings. It is the read-only counterpart to the command generator:
// it never modifies a dataset.
package rasterinfo

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/airbusgeo/godal"
)

var (
	// ErrOpen is returned when a raster cannot be opened.
	ErrOpen = errors.New("failed to open raster")
	// ErrBandIndex is returned when a band number is outside the dataset's range.
	ErrBandIndex = errors.New("band number out of range")
	// ErrNoValidPixels is returned when a band contains only no-data pixels.
	ErrNoValidPixels = errors.New("band contains no valid pixels")
)

var registerOnce sync.Once

// Info is the metadata of an open raster dataset.
type Info struct {
	// Path is the path the dataset was opened from.
	Path string
	// SizeX and SizeY are the raster dimensions in pixels.
	SizeX, SizeY int
	// Bands is the band count.
	Bands int
	// DataType is the pixel data type of the first band, e.g. "Byte".
	DataType string
	// Projection is the spatial reference in WKT, empty when ungeoreferenced.
	Projection string
	// GeoTransform maps pixel coordinates to georeferenced coordinates.
	GeoTransform [6]float64
	// NoData is the first band's no-data value, nil when unset.
	NoData *float64
}

// Stats are per-band statistics over valid (non no-data) pixels.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	// Count is the number of valid pixels included.
	Count uint64
}

// Handle is an open raster dataset. Statistics are computed on first request
// and memoized for the life of the handle. A Handle is not safe for
// concurrent use.
type Handle struct {
	path  string
	ds    *godal.Dataset
	stats map[int]Stats
}

// Open opens the raster at path read-only.
func Open(path string) (*Handle, error) {
	registerOnce.Do(godal.RegisterAll)

	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}

	return &Handle{
		path:  path,
		ds:    ds,
		stats: make(map[int]Stats),
	}, nil
}

// Close releases the dataset. It is safe to call more than once.
func (h *Handle) Close() error {
	if h.ds == nil {
		return nil
	}

	err := h.ds.Close()
	h.ds = nil

	return err
}

// Info returns the dataset metadata.
func (h *Handle) Info() Info {
	structure := h.ds.Structure()

	info := Info{
		Path:       h.path,
		SizeX:      structure.SizeX,
		SizeY:      structure.SizeY,
		Bands:      structure.NBands,
		DataType:   structure.DataType.String(),
		Projection: h.ds.Projection(),
	}

	if gt, err := h.ds.GeoTransform(); err == nil {
		info.GeoTransform = gt
	}

	if bands := h.ds.Bands(); len(bands) > 0 {
		if nodata, ok := bands[0].NoData(); ok {
			info.NoData = &nodata
		}
	}

	return info
}

// Statistics returns statistics for the 1-based band number, excluding
// no-data pixels. The first call reads the band block by block; subsequent
// calls return the memoized result without touching the data again.
func (h *Handle) Statistics(band int) (Stats, error) {
	if cached, ok := h.stats[band]; ok {
		return cached, nil
	}

	bands := h.ds.Bands()
	if band < 1 || band > len(bands) {
		return Stats{}, fmt.Errorf("%w: %d of %d", ErrBandIndex, band, len(bands))
	}

	computed, err := computeStats(bands[band-1])
	if err != nil {
		return Stats{}, err
	}

	h.stats[band] = computed

	return computed, nil
}

// computeStats walks the band block by block, accumulating a running mean
// and variance over valid pixels.
func computeStats(band godal.Band) (Stats, error) {
	structure := band.Structure()
	nodata, hasNodata := band.NoData()

	buf := make([]float64, structure.BlockSizeX*structure.BlockSizeY)

	var (
		count    uint64
		mean, m2 float64
		min      = math.Inf(1)
		max      = math.Inf(-1)
	)

	for block, ok := structure.FirstBlock(), true; ok; block, ok = block.Next() {
		if err := band.Read(block.X0, block.Y0, buf[:block.W*block.H], block.W, block.H); err != nil {
			return Stats{}, err
		}

		for _, v := range buf[:block.W*block.H] {
			if hasNodata && v == nodata {
				continue
			}

			count++

			delta := v - mean
			mean += delta / float64(count)
			m2 += delta * (v - mean)

			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}

	if count == 0 {
		return Stats{}, ErrNoValidPixels
	}

	return Stats{
		Min:    min,
		Max:    max,
		Mean:   mean,
		StdDev: math.Sqrt(m2 / float64(count)),
		Count:  count,
	}, nil
}
