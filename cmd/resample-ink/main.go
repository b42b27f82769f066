// Command resample-ink resamples recorded ink strokes to a target point count.
//
// Usage:
//
//	resample-ink -points 64 input.csv output.csv
//	resample-ink -points 256 -rate 0.05 input.csv output.csv
//
// The input is a CSV stroke recording: a header row of attribute names
// (x, y, timestamp, pressure, azimuth, altitude, ...) followed by one row per
// sample point. The output uses the same column layout.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gonum.org/v1/gonum/floats"

	inkresample "github.com/strokekit/go-ink-resampler"
)

const (
	// CLI defaults
	defaultPoints   = 64
	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	points := flag.Int("points", defaultPoints, "Target number of sample points")
	rate := flag.Float64("rate", inkresample.DefaultCurvatureRate, "Curvature error threshold in source units")
	verbose := flag.Bool("verbose", false, "Print stroke statistics")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		flag.Usage()
		return fmt.Errorf("need input and output file, got %d argument(s)", len(args))
	}
	inputPath, outputPath := args[0], args[1]

	layout, buffer, err := readStrokeCSV(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	inputCount := layout.PointCount(buffer)
	if *verbose {
		log.Printf("Input: %d points, %d channels (%v)", inputCount, layout.Stride(), layout)
		logExtents(layout, buffer)
	}

	resampler, err := inkresample.New(&inkresample.Config{
		Layout:        layout,
		CurvatureRate: *rate,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := resampler.Resample(buffer, *points)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writeStrokeCSV(outputPath, layout, out); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	log.Printf("Resampled %d -> %d points in %v", inputCount, *points, elapsed)
	if *verbose {
		logExtents(layout, out)
	}
	return nil
}

// logExtents prints the X/Y bounding box of a stroke buffer.
func logExtents(layout inkresample.Layout, buffer []float64) {
	stride := layout.Stride()
	xs := channelValues(buffer, stride, layout.Index(inkresample.PositionX))
	ys := channelValues(buffer, stride, layout.Index(inkresample.PositionY))
	if len(xs) == 0 || len(ys) == 0 {
		return
	}
	log.Printf("Extent: x [%.3f, %.3f], y [%.3f, %.3f]",
		floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys))
}
