package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plotkit/chart2d/chart"
)

// TestPoint_Distances verifies euclidean and manhattan distances.
func TestPoint_Distances(t *testing.T) {
	p := chart.Pt(-11, 1)
	assert.Equal(t, 5.0, p.Distance(-7, -2), "3-4-5 triangle")
	assert.Equal(t, 7.0, p.ManhattanDistance(-7, -2))
}

// TestPoint_String pins the textual form used in error messages.
func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(15, 5)", chart.Pt(15, 5).String())
	assert.Equal(t, "(0.5, -1.25)", chart.Pt(0.5, -1.25).String())
}

// TestDefaultPointProvider verifies the fallback provider builds plain points.
func TestDefaultPointProvider(t *testing.T) {
	p := chart.DefaultPointProvider.NewPoint(1, 2)
	assert.Equal(t, &chart.Point{X: 1, Y: 2}, p)
}
