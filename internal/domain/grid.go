package domain

// Grid data type codes as written to the parameter file.
const (
	DataTypeFloat = "REAL*4"
	DataTypeInt16 = "INTEGER*2"
)

// GridParameters describes the fixed, snapped output grid for one
// scene. Extents are projected UTM coordinates already snapped outward
// to the post-spacing grid, so independently generated grids over the
// same area share exact pixel alignment. Written once, never mutated.
type GridParameters struct {
	Title         string // scene base name
	Zone          int
	FalseNorthing float64 // 0 north, 1e7 south
	DataType      string
	PixelSpacing  float64
	Width         int
	Height        int

	// Snapped extent.
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}
