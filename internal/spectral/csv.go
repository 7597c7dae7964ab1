package spectral

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/camdesign-ml/camdesign/internal/tensor"
)

// Data holds wavelength-indexed spectral samples: one row per wavelength,
// one column per channel (sensor channels, patch reflectances, CMFs).
type Data struct {
	Wavelengths []float64   // nanometers, strictly increasing
	Values      [][]float64 // len(Values) == len(Wavelengths), rectangular
}

// Channels returns the number of value columns.
func (d *Data) Channels() int {
	if len(d.Values) == 0 {
		return 0
	}
	return len(d.Values[0])
}

// Tensor converts the spectral values into an (n, channels) tensor.
func Tensor[T tensor.Float, B tensor.Backend](d *Data, b B) (*tensor.Tensor[T, B], error) {
	n := len(d.Wavelengths)
	c := d.Channels()
	if n == 0 || c == 0 {
		return nil, fmt.Errorf("spectral: no data to convert")
	}

	flat := make([]T, 0, n*c)
	for _, row := range d.Values {
		for _, v := range row {
			flat = append(flat, T(v))
		}
	}
	return tensor.FromSlice(flat, tensor.Shape{n, c}, b)
}

// LoadCSV reads wavelength-indexed spectral data from a CSV file.
//
// The first column is the wavelength in nanometers; remaining columns are
// channel values. A non-numeric first row is treated as a header and
// skipped. Wavelengths must be strictly increasing and every row must have
// the same number of columns.
func LoadCSV(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spectral: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("spectral: %s: %w", path, err)
	}
	return d, nil
}

// ReadCSV parses wavelength-indexed spectral data from r. See LoadCSV for
// the expected format.
func ReadCSV(r io.Reader) (*Data, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	// Skip a header row if the first field is not numeric.
	start := 0
	if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); err != nil {
		start = 1
	}
	if start >= len(records) {
		return nil, fmt.Errorf("no data rows")
	}

	cols := len(records[start])
	if cols < 2 {
		return nil, fmt.Errorf("expected a wavelength column plus at least one channel, got %d columns", cols)
	}

	d := &Data{}
	for i, rec := range records[start:] {
		line := start + i + 1
		if len(rec) != cols {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", line, cols, len(rec))
		}

		w, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid wavelength %q", line, rec[0])
		}
		if n := len(d.Wavelengths); n > 0 && w <= d.Wavelengths[n-1] {
			return nil, fmt.Errorf("line %d: wavelengths must be strictly increasing (%g after %g)", line, w, d.Wavelengths[n-1])
		}

		row := make([]float64, cols-1)
		for j, field := range rec[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid value %q", line, field)
			}
			row[j] = v
		}

		d.Wavelengths = append(d.Wavelengths, w)
		d.Values = append(d.Values, row)
	}

	return d, nil
}

// WriteCSV writes wavelength-indexed spectral data to w in the format
// LoadCSV reads, with a generated header (wavelength_nm, channel_1, ...).
func WriteCSV(w io.Writer, d *Data) error {
	if len(d.Wavelengths) != len(d.Values) {
		return fmt.Errorf("spectral: %d wavelengths but %d value rows", len(d.Wavelengths), len(d.Values))
	}

	writer := csv.NewWriter(w)

	header := make([]string, 1+d.Channels())
	header[0] = "wavelength_nm"
	for j := 1; j < len(header); j++ {
		header[j] = fmt.Sprintf("channel_%d", j)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("spectral: write header: %w", err)
	}

	rec := make([]string, len(header))
	for i, wl := range d.Wavelengths {
		if len(d.Values[i]) != d.Channels() {
			return fmt.Errorf("spectral: row %d has %d channels, expected %d", i, len(d.Values[i]), d.Channels())
		}
		rec[0] = strconv.FormatFloat(wl, 'g', -1, 64)
		for j, v := range d.Values[i] {
			rec[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("spectral: write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes wavelength-indexed spectral data to a CSV file.
func SaveCSV(path string, d *Data) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spectral: create %s: %w", path, err)
	}
	if err := WriteCSV(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ValidateGrid checks that two spectral data sets are sampled on the same
// wavelength grid.
func ValidateGrid(a, b *Data) error {
	if len(a.Wavelengths) != len(b.Wavelengths) {
		return fmt.Errorf("spectral: wavelength grids differ in length: %d vs %d", len(a.Wavelengths), len(b.Wavelengths))
	}
	for i := range a.Wavelengths {
		if a.Wavelengths[i] != b.Wavelengths[i] {
			return fmt.Errorf("spectral: wavelength grids differ at index %d: %g vs %g", i, a.Wavelengths[i], b.Wavelengths[i])
		}
	}
	return nil
}
