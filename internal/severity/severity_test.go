package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_DefaultThresholds(t *testing.T) {
	cases := []struct {
		total int
		want  Severity
	}{
		{0, Low}, {1, Low}, {2, Low}, {3, Low},
		{4, Medium}, {5, Medium},
		{6, High}, {7, High}, {100, High},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.total, DefaultThresholds), "total=%d", c.total)
	}
}

func TestClassify_NoGapsNoOverlap(t *testing.T) {
	// every count lands in exactly one tier and tiers never interleave
	prev := Low
	for n := 0; n <= 50; n++ {
		got := Classify(n, DefaultThresholds)
		switch prev {
		case Low:
			require.Contains(t, []Severity{Low, Medium}, got, "n=%d", n)
		case Medium:
			require.Contains(t, []Severity{Medium, High}, got, "n=%d", n)
		case High:
			require.Equal(t, High, got, "n=%d", n)
		}
		prev = got
	}
}

func TestClassify_TunedThresholds(t *testing.T) {
	tuned := Thresholds{LowMax: 0, MediumMax: 10}
	assert.Equal(t, Low, Classify(0, tuned))
	assert.Equal(t, Medium, Classify(1, tuned))
	assert.Equal(t, Medium, Classify(10, tuned))
	assert.Equal(t, High, Classify(11, tuned))
}

func TestClassify_NegativeCountPanics(t *testing.T) {
	assert.Panics(t, func() { Classify(-1, DefaultThresholds) })
}
