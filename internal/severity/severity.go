package severity

import "fmt"

// Severity is the three-tier classification of a region's complaint
// load.
type Severity string

const (
	Low    Severity = "low"
	Medium Severity = "medium"
	High   Severity = "high"
)

// Thresholds are the inclusive upper bounds of the lower two tiers;
// everything above MediumMax is High. They come from configuration so
// tuning never touches the classification logic.
type Thresholds struct {
	LowMax    int
	MediumMax int
}

// DefaultThresholds: 0–3 low, 4–5 medium, 6+ high.
var DefaultThresholds = Thresholds{LowMax: 3, MediumMax: 5}

// Classify maps a complaint count to its tier. A negative count is a
// programming error upstream, so it panics rather than producing a
// plausible-looking wrong answer.
func Classify(total int, t Thresholds) Severity {
	if total < 0 {
		panic(fmt.Sprintf("severity: negative complaint count %d", total))
	}
	switch {
	case total <= t.LowMax:
		return Low
	case total <= t.MediumMax:
		return Medium
	default:
		return High
	}
}
