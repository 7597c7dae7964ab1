package evaluation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		VoraValue:     0.953,
		VoraLoss:      0.047,
		LutherLoss:    0.21,
		LutherLossRaw: 1.37,
		Wavelengths:   36,
		Channels:      3,
		Patches:       24,
		DeltaE76:      &Summary{Mean: 2.1, Max: 5.5, Median: 1.8, P95: 4.9, N: 24},
		DeltaE94:      &Summary{Mean: 1.4, Max: 3.9, Median: 1.2, P95: 3.4, N: 24},
		DeltaE2000:    &Summary{Mean: 1.1, Max: 3.1, Median: 0.9, P95: 2.8, N: 24},
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := sampleReport().Render("json")
	require.NoError(t, err)

	var back Report
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *sampleReport(), back)
}

func TestRenderYAML(t *testing.T) {
	out, err := sampleReport().Render("yaml")
	require.NoError(t, err)

	var back Report
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, *sampleReport(), back)
}

func TestRenderText(t *testing.T) {
	out, err := sampleReport().Render("text")
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Vora value")
	assert.Contains(t, text, "Luther loss (normalized)")
	assert.Contains(t, text, "deltaE2000")
	assert.Contains(t, text, "24 patches")
}

func TestRenderDefaultIsText(t *testing.T) {
	withFormat, err := sampleReport().Render("text")
	require.NoError(t, err)
	withEmpty, err := sampleReport().Render("")
	require.NoError(t, err)
	assert.Equal(t, withFormat, withEmpty)
}

func TestRenderTextOmitsPatchSectionWithoutPatches(t *testing.T) {
	r := sampleReport()
	r.Patches = 0
	r.DeltaE76, r.DeltaE94, r.DeltaE2000 = nil, nil, nil

	text := r.Text()
	assert.False(t, strings.Contains(text, "deltaE"), "patch section should be absent")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := sampleReport().Render("xml")
	assert.Error(t, err)
}
