package display

import (
	"fmt"

	"grievance-map-go/internal/severity"
)

// Style is the per-region paint instruction the map layer applies to a
// boundary polygon.
type Style struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      int     `json:"weight"`
}

var styles = map[severity.Severity]Style{
	severity.Low:    {Color: "#37474f", FillColor: "#2e7d32", FillOpacity: 0.55, Weight: 1},
	severity.Medium: {Color: "#37474f", FillColor: "#f9a825", FillOpacity: 0.55, Weight: 1},
	severity.High:   {Color: "#37474f", FillColor: "#c62828", FillOpacity: 0.55, Weight: 1},
}

// StyleFor returns the fill style for one severity tier.
func StyleFor(sev severity.Severity) Style {
	return styles[sev]
}

// Tooltip formats the hover text for one region, with the complaint
// count pluralized.
func Tooltip(label string, total int) string {
	if total == 1 {
		return fmt.Sprintf("%s – 1 complaint", label)
	}
	return fmt.Sprintf("%s – %d complaints", label, total)
}
