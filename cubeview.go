// Package cubeview provides the core primitives behind an interactive
// hyperspectral-cube viewer: reading spectral-axis wavelength metadata from
// sidecar files, and rasterizing straight lines across an image plane so that
// samples can be extracted along a user-drawn transect.
package cubeview

import "context"

// A Coord is an integer pixel coordinate in an image plane.
type Coord struct {
	X int
	Y int
}

// A Raster provides samples at integer pixel coordinates, typically one image
// plane of a loaded cube. Implementations decide how to represent samples at
// coordinates outside their extent, for example as NaNs.
type Raster interface {
	Samples(ctx context.Context, coords []Coord) ([]float64, error)
}
