package cubeview

import "context"

// SampleTransect samples raster at every pixel of the 8-connected line from
// p1 to p2 and returns the samples in traversal order, one per line pixel.
// It is the primitive behind extracting a profile along a user-drawn
// transect. Coordinates are passed to raster unchecked; rasters decide how
// to represent pixels outside their extent.
func SampleTransect(ctx context.Context, raster Raster, p1, p2 Coord) ([]float64, error) {
	return raster.Samples(ctx, BresenhamLine(p1, p2))
}
