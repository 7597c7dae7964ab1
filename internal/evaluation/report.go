package evaluation

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report assembles the computed metrics for one sensor design.
type Report struct {
	VoraValue     float64 `json:"vora_value" yaml:"vora_value"`
	VoraLoss      float64 `json:"vora_loss" yaml:"vora_loss"`
	LutherLoss    float64 `json:"luther_loss" yaml:"luther_loss"`
	LutherLossRaw float64 `json:"luther_loss_raw" yaml:"luther_loss_raw"`

	Wavelengths int `json:"wavelengths" yaml:"wavelengths"`
	Channels    int `json:"channels" yaml:"channels"`
	Patches     int `json:"patches,omitempty" yaml:"patches,omitempty"`

	DeltaE76   *Summary `json:"delta_e76,omitempty" yaml:"delta_e76,omitempty"`
	DeltaE94   *Summary `json:"delta_e94,omitempty" yaml:"delta_e94,omitempty"`
	DeltaE2000 *Summary `json:"delta_e2000,omitempty" yaml:"delta_e2000,omitempty"`
}

// Render serializes the report in the requested format: "text", "json" or
// "yaml".
func (r *Report) Render(format string) ([]byte, error) {
	switch format {
	case "text", "":
		return []byte(r.Text()), nil
	case "json":
		return json.MarshalIndent(r, "", "  ")
	case "yaml":
		return yaml.Marshal(r)
	default:
		return nil, fmt.Errorf("evaluation: unknown report format %q", format)
	}
}

// Text renders a human-readable table.
func (r *Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sensor evaluation (%d wavelengths x %d channels)\n", r.Wavelengths, r.Channels)
	fmt.Fprintf(&b, "%-24s %12.6f\n", "Vora value", r.VoraValue)
	fmt.Fprintf(&b, "%-24s %12.6f\n", "Vora loss", r.VoraLoss)
	fmt.Fprintf(&b, "%-24s %12.6f\n", "Luther loss (normalized)", r.LutherLoss)
	fmt.Fprintf(&b, "%-24s %12.6f\n", "Luther loss (raw)", r.LutherLossRaw)

	if r.Patches > 0 {
		fmt.Fprintf(&b, "\nColor accuracy over %d patches (after Luther correction)\n", r.Patches)
		fmt.Fprintf(&b, "%-12s %10s %10s %10s %10s\n", "metric", "mean", "median", "p95", "max")
		writeSummaryRow(&b, "deltaE76", r.DeltaE76)
		writeSummaryRow(&b, "deltaE94", r.DeltaE94)
		writeSummaryRow(&b, "deltaE2000", r.DeltaE2000)
	}

	return b.String()
}

func writeSummaryRow(b *strings.Builder, name string, s *Summary) {
	if s == nil {
		return
	}
	fmt.Fprintf(b, "%-12s %10.4f %10.4f %10.4f %10.4f\n", name, s.Mean, s.Median, s.P95, s.Max)
}
