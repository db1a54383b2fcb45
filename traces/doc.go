// Package traces provides implementations of the chart.Trace contract.
//
// 🚀 What is in here?
//
//	Simple        — the reference in-memory trace: ordered points, tracked
//	                extents, styling, collaborators and property-change
//	                events; optionally capped (ring behavior, oldest point
//	                evicted first).
//	BoundsChecker — a validating proxy around any chart.Trace. Every point
//	                inserted is checked against configurable x/y ranges and
//	                rejected with an OutOfRangeError when a coordinate falls
//	                outside; every other operation forwards unchanged.
//
// ⚙️ Usage:
//
//	tr := traces.NewSimple(traces.WithName("sensor-a"))
//	dbg, err := traces.NewBoundsChecker(tr)
//	if err != nil { ... }
//	_ = dbg.SetXRange(chart.NewRange(0, 10))
//
//	if _, err := dbg.AddPoint(15, 5); err != nil {
//		var oor *traces.OutOfRangeError
//		errors.As(err, &oor) // oor.Axis == traces.AxisX, oor.Range == [0, 10]
//	}
//
// BoundsChecker is a development-time diagnostic: it fails loudly at the
// insertion site instead of letting out-of-range data distort a plot. It is
// not a production safety net and adds no synchronization of its own.
//
// Errors:
//
//	ErrPointOutOfRange - a coordinate fell outside the active range
//	                     (wrapped by *OutOfRangeError).
package traces
