package engine

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokekit/go-ink-resampler/internal/testutil"
)

func TestDecimate_StraightLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	// Zero curvature: every interior point scores equally, so only the
	// resulting count is contractual.
	e := newXYEngine(t)
	in := testutil.LineStrokeXY(20)

	out, err := e.Resample(in, 5)
	require.NoError(t, err)

	testutil.AssertPointCount(t, out, 2, 5)
	testutil.AssertEndpointsPreserved(t, in, out, 2)
	testutil.AssertNonDecreasing(t, testutil.ExtractChannel(out, 2, 0))
	for _, y := range testutil.ExtractChannel(out, 2, 1) {
		assert.Equal(t, 0.0, y, "decimated points must stay on the line")
	}
}

func TestDecimate_Wave(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	e := newXYEngine(t)
	in := testutil.WaveStrokeXY(60)

	out, err := e.Resample(in, 20)
	require.NoError(t, err)

	testutil.AssertPointCount(t, out, 2, 20)
	testutil.AssertEndpointsPreserved(t, in, out, 2)
	testutil.AssertNoNaNOrInf(t, out)
	testutil.AssertNonDecreasing(t, testutil.ExtractChannel(out, 2, 0))
	testutil.AssertAllInRange(t, testutil.ExtractChannel(out, 2, 1), -10, 10)
}

func TestDecimate_PayloadChannels(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	// Layout [X, Y, TIMESTAMP, PRESSURE]: linear integral timestamps and
	// a [0,1]-clamped cubic pressure channel.
	e := newXYEngine(t,
		Policy{Kind: PolicyLinear, Integral: true},
		Policy{Kind: PolicyCubic, Lower: 0, Upper: 1},
	)

	const n = 40
	in := make([]float64, 0, n*4)
	for i := 0; i < n; i++ {
		x := float64(i)
		in = append(in,
			x,
			10*math.Sin(x/5),
			x*8, // 8ms cadence
			0.5+0.4*math.Sin(x/3),
		)
	}

	out, err := e.Resample(in, 14)
	require.NoError(t, err)

	testutil.AssertPointCount(t, out, 4, 14)
	testutil.AssertEndpointsPreserved(t, in, out, 4)

	stamps := testutil.ExtractChannel(out, 4, 2)
	testutil.AssertNonDecreasing(t, stamps)
	for i, v := range stamps {
		assert.Equal(t, math.Trunc(v), v, "timestamp %d not integral", i)
	}

	testutil.AssertAllInRange(t, testutil.ExtractChannel(out, 4, 3), 0, 1)
}

func TestDecimate_EveryTargetConverges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	e := newXYEngine(t)
	in := testutil.WaveStrokeXY(30)

	for target := 2; target < 30; target++ {
		out, err := e.Resample(in, target)
		require.NoError(t, err, "target %d", target)
		testutil.AssertPointCount(t, out, 2, target)
		testutil.AssertEndpointsPreserved(t, in, out, 2)
	}
}

func TestDecimate_DepthCapStillConverges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	// A depth cap of 1 records a single midpoint per piece; decimation
	// must still reach the exact target count.
	cfg := xyConfig()
	cfg.MaxDepth = 1
	e, err := New(cfg)
	require.NoError(t, err)

	in := testutil.WaveStrokeXY(50)
	out, err := e.Resample(in, 10)
	require.NoError(t, err)
	testutil.AssertPointCount(t, out, 2, 10)
	testutil.AssertEndpointsPreserved(t, in, out, 2)
}

func TestDecimate_TightCurvatureRate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	// A very fine threshold drives the subdivision hard; the depth cap
	// keeps the recursion bounded and the result exact.
	cfg := xyConfig()
	cfg.CurvatureRate = 1e-6
	e, err := New(cfg)
	require.NoError(t, err)

	in := testutil.WaveStrokeXY(16)
	out, err := e.Resample(in, 8)
	require.NoError(t, err)
	testutil.AssertPointCount(t, out, 2, 8)
	testutil.AssertNoNaNOrInf(t, out)
}
