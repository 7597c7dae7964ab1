package spectral

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := `wavelength_nm,r,g,b
400,0.1,0.2,0.3
410,0.4,0.5,0.6
420,0.7,0.8,0.9
`
	d, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []float64{400, 410, 420}, d.Wavelengths)
	assert.Equal(t, 3, d.Channels())
	assert.Equal(t, 0.5, d.Values[1][1])
}

func TestReadCSVNoHeader(t *testing.T) {
	in := "400,1\n410,2\n"
	d, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, d.Wavelengths, 2)
	assert.Equal(t, 1, d.Channels())
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"header only", "wavelength,r\n"},
		{"single column", "400\n410\n"},
		{"non-increasing wavelengths", "410,1\n400,2\n"},
		{"duplicate wavelengths", "400,1\n400,2\n"},
		{"bad value", "400,1\n410,abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	d := &Data{
		Wavelengths: []float64{400, 410, 420},
		Values: [][]float64{
			{0.1, 0.25},
			{0.5, 0.75},
			{1.0, 1.25},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, d))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.Wavelengths, back.Wavelengths)
	assert.Equal(t, d.Values, back.Values)
}

func TestValidateGrid(t *testing.T) {
	a := &Data{Wavelengths: []float64{400, 410}}
	b := &Data{Wavelengths: []float64{400, 410}}
	assert.NoError(t, ValidateGrid(a, b))

	c := &Data{Wavelengths: []float64{400, 420}}
	assert.Error(t, ValidateGrid(a, c))

	short := &Data{Wavelengths: []float64{400}}
	assert.Error(t, ValidateGrid(a, short))
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV("testdata/does-not-exist.csv")
	assert.Error(t, err)
}
