package chart

import (
	"fmt"
	"math"
)

// Point is a single 2D coordinate pair of a trace.
//
// A Point is immutable by convention beyond its coordinates; traces treat
// the pointer identity of a *Point as the identity of the plotted point.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the euclidean distance to (x, y).
func (p *Point) Distance(x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}

// ManhattanDistance returns the manhattan distance to (x, y).
func (p *Point) ManhattanDistance(x, y float64) float64 {
	return math.Abs(p.X-x) + math.Abs(p.Y-y)
}

// DistancePoint is the result of a nearest-point query: the matched point
// and its distance from the query location. Point is nil for empty traces.
type DistancePoint struct {
	Point    *Point
	Distance float64
}
