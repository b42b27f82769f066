package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	inkresample "github.com/strokekit/go-ink-resampler"
)

// readStrokeCSV loads a stroke recording. The header row names the attribute
// channels; each following row is one sample point.
func readStrokeCSV(path string) (inkresample.Layout, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // row width is checked against the layout below
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("empty stroke file")
	}

	layout, err := parseHeader(records[0])
	if err != nil {
		return nil, nil, err
	}

	buffer := make([]float64, 0, (len(records)-1)*layout.Stride())
	for row, record := range records[1:] {
		if len(record) != layout.Stride() {
			return nil, nil, fmt.Errorf("row %d: %d values, layout has %d channels", row+2, len(record), layout.Stride())
		}
		for col, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d, column %q: %w", row+2, records[0][col], err)
			}
			buffer = append(buffer, v)
		}
	}
	return layout, buffer, nil
}

// parseHeader resolves the CSV header into an attribute layout.
func parseHeader(header []string) (inkresample.Layout, error) {
	layout := make(inkresample.Layout, 0, len(header))
	for _, name := range header {
		attr, err := inkresample.ParseAttribute(name)
		if err != nil {
			return nil, err
		}
		layout = append(layout, attr)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return layout, nil
}

// writeStrokeCSV stores a stroke buffer with its layout as the header row.
func writeStrokeCSV(path string, layout inkresample.Layout, buffer []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	header := make([]string, layout.Stride())
	for i, attr := range layout {
		header[i] = attr.String()
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	stride := layout.Stride()
	record := make([]string, stride)
	for i := 0; i < len(buffer); i += stride {
		for slot := 0; slot < stride; slot++ {
			record[slot] = strconv.FormatFloat(buffer[i+slot], 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// channelValues extracts one attribute channel from a strided buffer.
func channelValues(buffer []float64, stride, slot int) []float64 {
	if slot < 0 || stride < 1 {
		return nil
	}
	n := len(buffer) / stride
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = buffer[i*stride+slot]
	}
	return out
}
