package inkresample

import "fmt"

// Layout is the ordered sequence of attribute channels stored per point of a
// strided stroke buffer. Its length is the stride: point i's value for the
// attribute at layout position k lives at buffer offset i*stride + k.
type Layout []Attribute

// Stride returns the number of values stored per point.
func (l Layout) Stride() int {
	return len(l)
}

// Index returns the layout position of an attribute, or -1 when the layout
// does not carry it.
func (l Layout) Index(a Attribute) int {
	for i, tag := range l {
		if tag == a {
			return i
		}
	}
	return -1
}

// Validate checks the structural rules of a layout: at least one channel, no
// duplicate channels, both position channels present, every channel from the
// fixed catalogue.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}

	seen := make(map[Attribute]bool, len(l))
	for _, a := range l {
		if _, ok := a.policy(); !ok {
			return fmt.Errorf("%w: %v", ErrUnknownAttribute, a)
		}
		if seen[a] {
			return fmt.Errorf("%w: duplicate attribute %v", ErrInvalidLayout, a)
		}
		seen[a] = true
	}

	if !seen[PositionX] || !seen[PositionY] {
		return fmt.Errorf("%w: position X and Y are required", ErrInvalidLayout)
	}
	return nil
}

// PointCount returns the number of points a buffer holds under this layout,
// or -1 when the buffer length is not a multiple of the stride.
func (l Layout) PointCount(buffer []float64) int {
	if len(l) == 0 || len(buffer)%len(l) != 0 {
		return -1
	}
	return len(buffer) / len(l)
}

// Common layouts.
var (
	// LayoutXY carries positions only.
	LayoutXY = Layout{PositionX, PositionY}

	// LayoutXYT carries positions and capture timestamps.
	LayoutXYT = Layout{PositionX, PositionY, Timestamp}

	// LayoutPen carries the channels a typical stylus reports.
	LayoutPen = Layout{PositionX, PositionY, Timestamp, Pressure, Azimuth, Altitude}
)
