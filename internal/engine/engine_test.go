package engine

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokekit/go-ink-resampler/internal/testutil"
)

// xyConfig returns a config with position X/Y in the first two slots followed
// by the given payload policies.
func xyConfig(extra ...Policy) Config {
	policies := []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}}
	policies = append(policies, extra...)
	return Config{Policies: policies, XSlot: 0, YSlot: 1}
}

func newXYEngine(t *testing.T, extra ...Policy) *Engine {
	t.Helper()
	e, err := New(xyConfig(extra...))
	require.NoError(t, err)
	return e
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty policy table", Config{}},
		{"x slot out of range", Config{
			Policies: []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}},
			XSlot: 5, YSlot: 1,
		}},
		{"x and y collide", Config{
			Policies: []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}},
			XSlot: 0, YSlot: 0,
		}},
		{"curve policy on payload slot", Config{
			Policies: []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}, {Kind: PolicyCurve}},
			XSlot: 0, YSlot: 1,
		}},
		{"position slot without curve policy", Config{
			Policies: []Policy{{Kind: PolicyLinear}, {Kind: PolicyCurve}},
			XSlot: 0, YSlot: 1,
		}},
		{"inverted clamp bounds", Config{
			Policies: []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}, {Kind: PolicyCubic, Lower: 1, Upper: 0}},
			XSlot: 0, YSlot: 1,
		}},
		{"unknown policy kind fails closed", Config{
			Policies: []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}, {Kind: PolicyKind(99)}},
			XSlot: 0, YSlot: 1,
		}},
		{"negative curvature rate", Config{
			Policies:      []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}},
			XSlot: 0, YSlot: 1,
			CurvatureRate: -0.1,
		}},
		{"negative subdivision depth", Config{
			Policies: []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}},
			XSlot: 0, YSlot: 1,
			MaxDepth: -1,
		}},
		{"inverted spline parameter range", Config{
			Policies:    []Policy{{Kind: PolicyCurve}, {Kind: PolicyCurve}},
			XSlot: 0, YSlot: 1,
			SplineStart: 0.9, SplineEnd: 0.1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	e := newXYEngine(t)
	assert.Equal(t, DefaultCurvatureRate, e.cfg.CurvatureRate)
	assert.Equal(t, DefaultMaxDepth, e.cfg.MaxDepth)
	assert.Equal(t, 0.0, e.cfg.SplineStart)
	assert.Equal(t, 1.0, e.cfg.SplineEnd)
	assert.Equal(t, 2, e.Stride())
}

func TestResample_InvalidInput(t *testing.T) {
	e := newXYEngine(t)

	_, err := e.Resample(testutil.LineStrokeXY(10), 0)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = e.Resample(nil, 5)
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	_, err = e.Resample([]float64{1, 2, 3}, 5)
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}

func TestResample_Identity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	e := newXYEngine(t)
	in := testutil.WaveStrokeXY(12)
	out, err := e.Resample(in, 12)
	require.NoError(t, err)
	assert.Equal(t, in, out, "identity resampling must return the input unchanged")
}

func TestResample_TargetOne(t *testing.T) {
	e := newXYEngine(t)
	in := testutil.WaveStrokeXY(9)
	out, err := e.Resample(in, 1)
	require.NoError(t, err)
	assert.Equal(t, in[:2], out)
}

func TestResample_FallbackGrow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	e := newXYEngine(t)
	in := []float64{1, 2, 7, 8} // two points
	out, err := e.Resample(in, 6)
	require.NoError(t, err)

	// Alternating prepend/append duplication, no curve evaluation.
	want := []float64{1, 2, 1, 2, 1, 2, 7, 8, 7, 8, 7, 8}
	assert.Equal(t, want, out)
}

func TestResample_FallbackGrowSinglePoint(t *testing.T) {
	e := newXYEngine(t)
	out, err := e.Resample([]float64{3, 4}, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 3, 4, 3, 4, 3, 4}, out)
}

func TestResample_FallbackShrink(t *testing.T) {
	e := newXYEngine(t)
	in := []float64{0, 0, 5, 5, 9, 0} // three points
	out, err := e.Resample(in, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 9, 0}, out, "shrinking below 4 points keeps the endpoints")
}

func TestResample_CrossCallFreshness(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	// One engine, alternating strokes: a stale polynomial cache from the
	// first stroke would corrupt the second and third calls.
	e := newXYEngine(t)
	wave := testutil.WaveStrokeXY(40)
	line := testutil.LineStrokeXY(40)

	first, err := e.Resample(wave, 15)
	require.NoError(t, err)

	lineOut, err := e.Resample(line, 15)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lineOut[1], "line stroke must stay on y=0")
	assert.NotEqual(t, first, lineOut)

	again, err := e.Resample(wave, 15)
	require.NoError(t, err)
	assert.Equal(t, first, again, "same stroke, same target, same result")
}

func TestResample_Deterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	e := newXYEngine(t, Policy{Kind: PolicyLinear, Integral: true})
	in := weaveTimestamps(testutil.WaveStrokeXY(25), 7)

	first, err := e.Resample(in, 11)
	require.NoError(t, err)
	second, err := e.Resample(in, 11)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// weaveTimestamps widens an XY buffer to [X, Y, TIMESTAMP] with timestamps
// spaced stepMillis apart.
func weaveTimestamps(xy []float64, stepMillis float64) []float64 {
	n := len(xy) / 2
	out := make([]float64, 0, n*3)
	for i := 0; i < n; i++ {
		out = append(out, xy[i*2], xy[i*2+1], float64(i)*stepMillis)
	}
	return out
}
