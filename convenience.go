package inkresample

// ResampleStroke is a convenience function for one-shot resampling. It
// creates a resampler with default settings for the layout, processes the
// buffer, and returns the result.
func ResampleStroke(buffer []float64, layout Layout, target int) ([]float64, error) {
	r, err := New(&Config{Layout: layout})
	if err != nil {
		return nil, err
	}
	return r.Resample(buffer, target)
}

// ResampleXY is a convenience function for position-only strokes held as two
// parallel channel slices.
func ResampleXY(xs, ys []float64, target int) (outXs, outYs []float64, err error) {
	out, err := ResampleStroke(Interleave(xs, ys), LayoutXY, target)
	if err != nil {
		return nil, nil, err
	}
	channels := Deinterleave(out, 2)
	return channels[0], channels[1], nil
}

// Interleave weaves parallel channel slices into one strided buffer:
// [a0, b0, ..., a1, b1, ...]. Channels are truncated to the shortest.
func Interleave(channels ...[]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}
	points := len(channels[0])
	for _, ch := range channels[1:] {
		points = min(points, len(ch))
	}

	out := make([]float64, 0, points*len(channels))
	for i := 0; i < points; i++ {
		for _, ch := range channels {
			out = append(out, ch[i])
		}
	}
	return out
}

// Deinterleave splits a strided buffer into its per-channel slices.
// Trailing values short of a full point are dropped.
func Deinterleave(buffer []float64, stride int) [][]float64 {
	if stride < 1 {
		return nil
	}
	points := len(buffer) / stride
	out := make([][]float64, stride)
	for slot := range out {
		out[slot] = make([]float64, points)
		for i := 0; i < points; i++ {
			out[slot][i] = buffer[i*stride+slot]
		}
	}
	return out
}
