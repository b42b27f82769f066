package engine

// Resampling constants.
const (
	// DefaultCurvatureRate is the subdivision error threshold in source units.
	// A midpoint further than this from its chord forces another split.
	DefaultCurvatureRate = 0.15

	// DefaultMaxDepth bounds the adaptive subdivision recursion per piece.
	// 24 levels resolve a piece down to sub-intervals of 2^-24, far below
	// any meaningful pen-input resolution.
	DefaultMaxDepth = 24

	// straightLineFactor scales the curvature rate for the per-axis
	// deviation test between the curve midpoint and the chord midpoint.
	straightLineFactor = 10

	// piecePoints is the number of control points in one Catmull-Rom window.
	piecePoints = 4

	// minSplinePoints is the smallest buffer that defines a curve piece.
	// Below this the engine falls back to endpoint duplication.
	minSplinePoints = 4
)
