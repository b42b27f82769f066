package engine

import "sort"

// phantomFirst is the sentinel piece index of the protected first-point
// record; it sorts before every real piece. The protected last point uses
// the piece count as its sentinel and sorts after every real piece.
const phantomFirst = -1

// candidate is one potential output point: an original sample or an
// interpolated midpoint produced during subdivision or bisection.
type candidate struct {
	x, y  float64
	errSq float64 // squared chord distance; +Inf for protected endpoints
	piece int
	t     float64
	orig  int // original point index, or -1 for interpolated points
}

// before reports whether c precedes other in canonical arclength order.
// The ordering key is (piece, t) ascending.
func (c candidate) before(other candidate) bool {
	if c.piece != other.piece {
		return c.piece < other.piece
	}
	return c.t < other.t
}

// sortByArclength establishes the canonical (piece, t) ordering of a pool.
func sortByArclength(pool []candidate) {
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].before(pool[j])
	})
}
