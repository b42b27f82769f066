// Package inkresample provides adaptive resampling of digital-ink strokes in
// pure Go.
//
// A stroke is a flat, strided buffer of sample points: positions plus any
// number of payload channels (pressure, timestamps, tilt angles, color,
// brush size). The resampler rewrites such a buffer so it holds exactly a
// target number of points while staying faithful to the stroke's Catmull-Rom
// spline: shrinking removes the geometrically least significant points,
// growing inserts cubically interpolated ones, and every payload channel is
// re-derived with the interpolation family appropriate to it (straight-line
// for timestamps and color, clamped cubic for pressure, angle-clamped cubic
// for azimuth, altitude and rotation).
//
// # Quick Start
//
// For simple one-shot resampling:
//
//	out, err := inkresample.ResampleStroke(buffer, inkresample.LayoutXYT, 64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated resampling of strokes sharing one layout:
//
//	config := &inkresample.Config{
//	    Layout: inkresample.Layout{
//	        inkresample.PositionX,
//	        inkresample.PositionY,
//	        inkresample.Timestamp,
//	        inkresample.Pressure,
//	    },
//	}
//	r, err := inkresample.New(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, stroke := range strokes {
//	    out, err := r.Resample(stroke.Buffer, 128)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    store(out)
//	}
//
// A Resampler holds no per-stroke state and may be shared across goroutines,
// one stroke per goroutine.
//
// # Guarantees
//
//   - The output length is exactly target × stride.
//   - The first and last input point appear unchanged in the output.
//   - Output points are ordered by their position along the curve.
//   - Pressure stays within [0, 1]; angle channels stay within their
//     declared bounds; timestamps are integral milliseconds.
//   - Resampling is deterministic: equal input and target yield equal output.
//
// Strokes with fewer than 4 points carry no curvature information; they are
// grown by duplicating their endpoints instead of being interpolated.
package inkresample
