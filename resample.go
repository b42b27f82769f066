package inkresample

import (
	"errors"
	"fmt"

	"github.com/strokekit/go-ink-resampler/internal/engine"
)

// Common errors returned by the resampler.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid resampler configuration")

	// ErrInvalidLayout indicates a structurally invalid attribute layout.
	ErrInvalidLayout = errors.New("invalid attribute layout")

	// ErrUnknownAttribute indicates an attribute outside the fixed catalogue.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrInvalidBuffer indicates a buffer whose length is not a positive
	// multiple of the layout stride.
	ErrInvalidBuffer = errors.New("invalid stroke buffer")

	// ErrInvalidTarget indicates a target point count below 1.
	ErrInvalidTarget = errors.New("invalid target point count")
)

// Default engine parameters.
const (
	// DefaultCurvatureRate is the adaptive subdivision error threshold in
	// source units.
	DefaultCurvatureRate = engine.DefaultCurvatureRate

	// DefaultMaxDepth bounds the subdivision recursion per curve piece.
	DefaultMaxDepth = engine.DefaultMaxDepth
)

// Config holds resampling configuration for one attribute layout.
type Config struct {
	// Layout is the ordered attribute sequence of the stroke buffers this
	// resampler will process. It must contain PositionX and PositionY.
	Layout Layout

	// CurvatureRate is the subdivision error threshold in source units.
	// Points closer than this to the local chord are considered
	// geometrically insignificant. Zero selects DefaultCurvatureRate.
	CurvatureRate float64

	// SplineStart and SplineEnd restrict the curve to a partial parameter
	// range on the first and last piece. The zero values select the full
	// range [0, 1].
	SplineStart float64
	SplineEnd   float64

	// MaxDepth bounds the adaptive subdivision recursion. Zero selects
	// DefaultMaxDepth.
	MaxDepth int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if c.CurvatureRate < 0 {
		return fmt.Errorf("%w: curvature rate must not be negative", ErrInvalidConfig)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative", ErrInvalidConfig)
	}
	if c.SplineStart < 0 || c.SplineEnd > 1 ||
		(c.SplineEnd != 0 && c.SplineStart >= c.SplineEnd) {
		return fmt.Errorf("%w: spline parameter range [%v, %v]", ErrInvalidConfig, c.SplineStart, c.SplineEnd)
	}
	return nil
}

// Resampler rewrites stroke buffers of one layout to arbitrary point counts.
// It holds only immutable configuration: one Resampler may be shared by any
// number of goroutines, each resampling its own strokes.
type Resampler struct {
	layout Layout
	engine *engine.Engine
}

// New creates a resampler for the configured layout. The interpolation
// policy of every channel is resolved here, once; an attribute outside the
// catalogue fails construction rather than being guessed at resampling time.
func New(config *Config) (*Resampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	policies := make([]engine.Policy, len(config.Layout))
	for slot, attr := range config.Layout {
		pol, ok := attr.policy()
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownAttribute, attr)
		}
		policies[slot] = pol
	}

	eng, err := engine.New(engine.Config{
		Policies:      policies,
		XSlot:         config.Layout.Index(PositionX),
		YSlot:         config.Layout.Index(PositionY),
		CurvatureRate: config.CurvatureRate,
		MaxDepth:      config.MaxDepth,
		SplineStart:   config.SplineStart,
		SplineEnd:     config.SplineEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	layout := make(Layout, len(config.Layout))
	copy(layout, config.Layout)
	return &Resampler{layout: layout, engine: eng}, nil
}

// Layout returns the attribute layout this resampler processes.
func (r *Resampler) Layout() Layout {
	return r.layout
}

// Stride returns the number of values per point.
func (r *Resampler) Stride() int {
	return len(r.layout)
}

// Resample rewrites buffer so it holds exactly target points.
//
// Strokes of at least 4 points are resampled on their Catmull-Rom spline:
// decimation removes the least significant points, up-sampling inserts
// cubically interpolated ones; the first and last point are always preserved
// verbatim. Shorter strokes fall back to endpoint duplication. When target
// equals the input point count the input buffer is returned unmodified.
func (r *Resampler) Resample(buffer []float64, target int) ([]float64, error) {
	if target < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, target)
	}
	if len(buffer) == 0 || len(buffer)%r.Stride() != 0 {
		return nil, fmt.Errorf("%w: length %d under stride %d", ErrInvalidBuffer, len(buffer), r.Stride())
	}
	return r.engine.Resample(buffer, target)
}
