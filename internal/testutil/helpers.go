// Package testutil provides reusable test helper functions for stroke
// resampling tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-9
	GeometryTolerance = 1e-6
)

// ExtractChannel copies one attribute channel out of a strided buffer.
func ExtractChannel(buf []float64, stride, slot int) []float64 {
	n := len(buf) / stride
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = buf[i*stride+slot]
	}
	return out
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertNonDecreasing verifies that a slice never decreases.
func AssertNonDecreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not non-decreasing",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element exceeds its predecessor.
func AssertStrictlyIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertPointCount verifies that a strided buffer holds exactly want points.
func AssertPointCount(t *testing.T, buf []float64, stride, want int, msgAndArgs ...any) bool {
	t.Helper()
	if len(buf)%stride != 0 {
		return assert.Fail(t, "ragged buffer",
			"length %d is not a multiple of stride %d", len(buf), stride)
	}
	return assert.Equal(t, want, len(buf)/stride, msgAndArgs...)
}

// AssertEndpointsPreserved verifies that the first and last point of the
// output equal those of the input, slot for slot.
func AssertEndpointsPreserved(t *testing.T, in, out []float64, stride int, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.Equal(t, in[:stride], out[:stride], "first point not preserved")
	return assert.Equal(t, in[len(in)-stride:], out[len(out)-stride:], "last point not preserved") && ok
}

// LineStrokeXY generates n evenly spaced collinear XY points along y = 0.
func LineStrokeXY(n int) []float64 {
	buf := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		buf = append(buf, float64(i), 0)
	}
	return buf
}

// WaveStrokeXY generates n XY points along one period of a sine wave.
func WaveStrokeXY(n int) []float64 {
	buf := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		x := float64(i)
		buf = append(buf, x, 10*math.Sin(2*math.Pi*x/float64(n)))
	}
	return buf
}
