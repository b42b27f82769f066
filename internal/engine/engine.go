// Package engine implements the adaptive stroke resampling core.
//
// The engine rewrites a multi-attribute Catmull-Rom spline, stored as a flat
// strided buffer, so it contains exactly a target number of sample points.
// Shrinking removes the least geometrically significant points (decimation),
// growing inserts cubically interpolated points (up-sampling). Non-position
// attribute channels are re-derived per point through channel-specific
// interpolation policies.
package engine

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ink.resample'
func tracer() tracing.Trace {
	return tracing.Select("ink.resample")
}

// Common errors returned by the engine.
var (
	// ErrInvalidConfig indicates invalid engine configuration.
	ErrInvalidConfig = errors.New("invalid engine configuration")

	// ErrInvalidBuffer indicates a stroke buffer whose length is not a
	// positive multiple of the stride.
	ErrInvalidBuffer = errors.New("invalid stroke buffer")

	// ErrInvalidTarget indicates a target point count below 1.
	ErrInvalidTarget = errors.New("invalid target point count")
)

// PolicyKind selects the interpolation family of an attribute slot.
type PolicyKind int

const (
	// PolicyCurve marks a slot that drives the Catmull-Rom shape.
	// Exactly two slots carry it: position X and position Y.
	PolicyCurve PolicyKind = iota

	// PolicyLinear interpolates on the straight chord of each piece so the
	// channel never inherits curve overshoot (timestamps, color, size...).
	PolicyLinear

	// PolicyCubic evaluates the slot's Catmull-Rom polynomial and clamps
	// the result to [Lower, Upper] (pressure).
	PolicyCubic

	// PolicyAngle is cubic evaluation clamped to the channel's declared
	// angular bounds (azimuth, altitude, rotation).
	PolicyAngle
)

// Policy describes how one attribute slot of the layout is re-derived for
// resampled points.
type Policy struct {
	Kind  PolicyKind
	Lower float64 // clamp bound for PolicyCubic / PolicyAngle
	Upper float64
	// Integral truncates output values to their integral part (timestamps
	// are integer milliseconds on the wire).
	Integral bool
}

// Config holds the per-stroke-layout engine configuration. The engine itself
// is stateless between calls; all mutable state lives in a per-call pass.
type Config struct {
	// Policies describes every slot of the layout, in layout order.
	// len(Policies) is the buffer stride.
	Policies []Policy

	// XSlot and YSlot are the layout indices of position X and Y.
	XSlot int
	YSlot int

	// CurvatureRate is the subdivision error threshold in source units.
	// Zero selects DefaultCurvatureRate.
	CurvatureRate float64

	// MaxDepth bounds subdivision recursion. Zero selects DefaultMaxDepth.
	MaxDepth int

	// SplineStart and SplineEnd are the curve parameters at which the
	// first piece begins and the last piece ends. The zero value of
	// SplineEnd selects 1.
	SplineStart float64
	SplineEnd   float64
}

// Engine resamples strokes sharing one attribute layout. It holds only
// immutable configuration and is safe for concurrent use across strokes.
type Engine struct {
	cfg Config
}

// New validates the configuration, applies defaults, and returns an Engine.
func New(cfg Config) (*Engine, error) {
	if len(cfg.Policies) == 0 {
		return nil, fmt.Errorf("%w: empty policy table", ErrInvalidConfig)
	}

	if cfg.XSlot < 0 || cfg.XSlot >= len(cfg.Policies) ||
		cfg.YSlot < 0 || cfg.YSlot >= len(cfg.Policies) || cfg.XSlot == cfg.YSlot {
		return nil, fmt.Errorf("%w: position slots %d/%d out of range", ErrInvalidConfig, cfg.XSlot, cfg.YSlot)
	}

	for slot, pol := range cfg.Policies {
		switch pol.Kind {
		case PolicyCurve:
			if slot != cfg.XSlot && slot != cfg.YSlot {
				return nil, fmt.Errorf("%w: curve policy on non-position slot %d", ErrInvalidConfig, slot)
			}
		case PolicyLinear:
			// no parameters
		case PolicyCubic, PolicyAngle:
			if pol.Upper < pol.Lower {
				return nil, fmt.Errorf("%w: slot %d clamp bounds inverted", ErrInvalidConfig, slot)
			}
		default:
			// Fail closed: guessing an interpolation family would
			// silently corrupt the channel.
			return nil, fmt.Errorf("%w: unknown policy kind %d on slot %d", ErrInvalidConfig, pol.Kind, slot)
		}
	}
	if cfg.Policies[cfg.XSlot].Kind != PolicyCurve || cfg.Policies[cfg.YSlot].Kind != PolicyCurve {
		return nil, fmt.Errorf("%w: position slots must carry the curve policy", ErrInvalidConfig)
	}

	if cfg.CurvatureRate < 0 {
		return nil, fmt.Errorf("%w: negative curvature rate %v", ErrInvalidConfig, cfg.CurvatureRate)
	}
	if cfg.CurvatureRate == 0 {
		cfg.CurvatureRate = DefaultCurvatureRate
	}

	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: negative subdivision depth %d", ErrInvalidConfig, cfg.MaxDepth)
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	if cfg.SplineEnd == 0 {
		cfg.SplineEnd = 1
	}
	if cfg.SplineStart < 0 || cfg.SplineEnd > 1 || cfg.SplineStart >= cfg.SplineEnd {
		return nil, fmt.Errorf("%w: spline parameter range [%v, %v]", ErrInvalidConfig, cfg.SplineStart, cfg.SplineEnd)
	}

	return &Engine{cfg: cfg}, nil
}

// Stride returns the number of attribute slots per point.
func (e *Engine) Stride() int {
	return len(e.cfg.Policies)
}

// Resample rewrites buf so it holds exactly target points. The result is a
// fresh buffer in the same layout order, except when target equals the input
// point count, in which case the input is returned unmodified.
func (e *Engine) Resample(buf []float64, target int) ([]float64, error) {
	if target < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, target)
	}
	stride := e.Stride()
	if len(buf) == 0 || len(buf)%stride != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of stride %d", ErrInvalidBuffer, len(buf), stride)
	}
	n := len(buf) / stride

	switch {
	case n == target:
		return buf, nil

	case target == 1:
		// A single point cannot preserve both endpoints; keep the first.
		out := make([]float64, stride)
		copy(out, buf[:stride])
		return out, nil

	case n < minSplinePoints:
		tracer().Debugf("degenerate stroke: duplicating %d points to %d", n, target)
		return duplicateEndpoints(buf, stride, n, target), nil

	case n > target:
		tracer().Debugf("decimating stroke: %d -> %d points", n, target)
		return newPass(e, buf, n).decimate(target), nil

	default:
		tracer().Debugf("up-sampling stroke: %d -> %d points", n, target)
		return newPass(e, buf, n).upsample(target), nil
	}
}

// pass holds all mutable state of one resampling call. A fresh pass per call
// keeps polynomial coefficients from one stroke out of the next.
type pass struct {
	cfg    *Config
	buf    []float64
	stride int
	n      int

	cache *polyCache
	pool  []candidate

	// Lowest- and highest-parameter interpolated point recorded per piece,
	// used as chord ends when scoring the original sample points.
	first []chordEnd
	last  []chordEnd
}

// chordEnd is one recorded interpolated point flanking an original sample.
type chordEnd struct {
	x, y, t float64
	set     bool
}

func newPass(e *Engine, buf []float64, n int) *pass {
	pieces := n - (piecePoints - 1)
	return &pass{
		cfg:    &e.cfg,
		buf:    buf,
		stride: len(e.cfg.Policies),
		n:      n,
		cache:  newPolyCache(len(e.cfg.Policies)),
		first:  make([]chordEnd, pieces),
		last:   make([]chordEnd, pieces),
	}
}

// pieceCount returns the number of 4-point Catmull-Rom windows in the buffer.
func (p *pass) pieceCount() int {
	return p.n - (piecePoints - 1)
}

// attrAt returns the stored value of one attribute slot at an original point.
func (p *pass) attrAt(point, slot int) float64 {
	return p.buf[point*p.stride+slot]
}

// pieceSpan returns the parameter range covered by a piece. Only the first
// and last pieces honor a partial spline start or end.
func (p *pass) pieceSpan(piece int) (begin, end float64) {
	begin, end = 0, 1
	if piece == 0 {
		begin = p.cfg.SplineStart
	}
	if piece == p.pieceCount()-1 {
		end = p.cfg.SplineEnd
	}
	return begin, end
}

// curvePolys returns the cached position polynomials of a piece.
func (p *pass) curvePolys(piece int) (cx, cy [4]float64) {
	cs := p.cache.coefficients(p.buf, piece)
	return cs[p.cfg.XSlot], cs[p.cfg.YSlot]
}

// originalKey maps an interior original point to its canonical (piece, t)
// scheduling key: the point opens the piece it starts, or closes the last
// piece it can belong to.
func (p *pass) originalKey(point int) (piece int, t float64) {
	if point-1 < p.pieceCount() {
		return point - 1, 0
	}
	return p.pieceCount() - 1, 1
}

// duplicateEndpoints grows or shrinks a sub-spline buffer without curvature
// analysis. Growing alternately prepends the first and appends the last
// point; shrinking keeps the endpoints and truncates the interior.
func duplicateEndpoints(buf []float64, stride, n, target int) []float64 {
	out := make([]float64, 0, target*stride)
	if target >= n {
		extra := target - n
		prepends := (extra + 1) / 2
		for i := 0; i < prepends; i++ {
			out = append(out, buf[:stride]...)
		}
		out = append(out, buf...)
		for i := 0; i < extra-prepends; i++ {
			out = append(out, buf[(n-1)*stride:]...)
		}
		return out
	}

	out = append(out, buf[:stride]...)
	out = append(out, buf[stride:(target-1)*stride]...)
	out = append(out, buf[(n-1)*stride:]...)
	return out
}
