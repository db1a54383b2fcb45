// Package chart2d is a small, headless 2D trace toolkit: named, styled,
// ordered sequences of points, ready to be handed to whatever renders them.
//
// 🚀 What is chart2d?
//
//	A pure-Go library that models the data side of a 2D chart:
//		• chart/  — the Trace contract: points, ranges, strokes, collaborator
//		  interfaces (painters, highlighters, error-bar policies) and the
//		  property-change event model
//		• traces/ — implementations: Simple (in-memory, optional ring cap) and
//		  BoundsChecker (a validating proxy that rejects out-of-range points)
//
// ✨ Why choose chart2d?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Transparent decoration – BoundsChecker substitutes for any Trace and
//     guards exactly one behavior: point insertion
//   - Pure Go – no cgo, no rendering toolkit required
//   - Fail-loud – invalid data surfaces as errors at the insertion site,
//     never as a silently wrong plot
//
// Quick example:
//
//	tr := traces.NewSimple(traces.WithName("sensor-a"))
//	dbg, _ := traces.NewBoundsChecker(tr)
//	dbg.SetXRange(chart.NewRange(0, 10))
//	dbg.SetYRange(chart.NewRange(0, 10))
//
//	ok, err := dbg.AddPoint(5, 5)   // ok == true
//	_, err = dbg.AddPoint(15, 5)    // err: point (15, 5) outside x-range [0, 10]
//
// Dive into the package docs of chart and traces for the full contract.
package chart2d
