// Package mathutil provides scalar and planar geometry helpers shared by the
// resampling engine.
package mathutil

// Horner4 evaluates the cubic c0 + c1·t + c2·t² + c3·t³ using Horner's scheme.
func Horner4(c0, c1, c2, c3, t float64) float64 {
	return ((c3*t+c2)*t+c1)*t + c0
}

// Lerp returns the straight-line value at t between the samples (v0, t0) and
// (v1, t1). If the parameter span collapses, v0 is returned.
func Lerp(v0, t0, v1, t1, t float64) float64 {
	span := t1 - t0
	if span == 0 {
		return v0
	}
	return v0 + (v1-v0)*(t-t0)/span
}

// Clamp limits v to the closed interval [lower, upper].
func Clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

// PointToSegmentSq returns the squared distance from the point (px, py) to the
// line segment from (ax, ay) to (bx, by). A zero-length segment degrades to
// the squared distance to its single point.
func PointToSegmentSq(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		ex := px - ax
		ey := py - ay
		return ex*ex + ey*ey
	}

	// Project the point onto the segment's supporting line, then clamp the
	// projection parameter to the segment.
	u := ((px-ax)*dx + (py-ay)*dy) / lenSq
	u = Clamp(u, 0, 1)

	cx := ax + u*dx
	cy := ay + u*dy
	ex := px - cx
	ey := py - cy
	return ex*ex + ey*ey
}

// DistSq returns the squared euclidean distance between two points.
func DistSq(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}
