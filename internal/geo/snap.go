package geo

import "math"

// SnapOutward pushes each extent value outward to the nearest multiple
// of post: ceiling for maxima, floor for minima. Grids for different
// scenes over the same area then share exact pixel boundaries.
func SnapOutward(ext ProjectedExtent, post float64) ProjectedExtent {
	if post <= 0 {
		return ext
	}
	ext.XMax = math.Ceil(ext.XMax/post) * post
	ext.XMin = math.Floor(ext.XMin/post) * post
	ext.YMax = math.Ceil(ext.YMax/post) * post
	ext.YMin = math.Floor(ext.YMin/post) * post
	return ext
}

// GridSize returns the pixel count covering a span at the given pixel
// size, truncated toward zero.
func GridSize(min, max, pixel float64) int {
	return int(math.Floor(math.Abs(max-min) / pixel))
}
