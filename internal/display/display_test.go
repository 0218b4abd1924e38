package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grievance-map-go/internal/severity"
)

func TestTooltip(t *testing.T) {
	assert.Equal(t, "Hindol – 1 complaint", Tooltip("Hindol", 1))
	assert.Equal(t, "Sadar – 4 complaints", Tooltip("Sadar", 4))
	assert.Equal(t, "Kankadahad – 0 complaints", Tooltip("Kankadahad", 0))
}

func TestStyleFor(t *testing.T) {
	low := StyleFor(severity.Low)
	medium := StyleFor(severity.Medium)
	high := StyleFor(severity.High)

	assert.NotEqual(t, low.FillColor, medium.FillColor)
	assert.NotEqual(t, medium.FillColor, high.FillColor)

	for _, s := range []Style{low, medium, high} {
		assert.NotEmpty(t, s.Color)
		assert.Greater(t, s.FillOpacity, 0.0)
	}
}
