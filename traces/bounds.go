// Package traces: BoundsChecker, a validating proxy over any chart.Trace.
//
// The proxy guards exactly one behavior: point insertion. Every other
// operation of the Trace contract forwards to the wrapped instance through
// the embedded interface and returns whatever the delegate returns.

package traces

import (
	"errors"
	"fmt"

	"github.com/plotkit/chart2d/chart"
)

// ErrPointOutOfRange indicates a coordinate fell outside the active range
// of a BoundsChecker. The returned error is always an *OutOfRangeError
// carrying the rejected point and the violated range.
var ErrPointOutOfRange = errors.New("traces: point out of range")

// Axis names the coordinate axis a range check applies to.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// OutOfRangeError reports a point rejected by a BoundsChecker: the point,
// the axis whose check failed, and the range actually violated. When both
// coordinates are out of range, the x axis is reported (the x check runs
// first).
type OutOfRangeError struct {
	Point chart.Point
	Axis  Axis
	Range chart.Range
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("traces: point %s is not within the valid %s-range %s", &e.Point, e.Axis, e.Range)
}

// Unwrap makes errors.Is(err, ErrPointOutOfRange) hold.
func (e *OutOfRangeError) Unwrap() error {
	return ErrPointOutOfRange
}

// BoundsChecker decorates a chart.Trace with coordinate validation: points
// inserted through it are checked against a configurable x range and y
// range, and rejected with an *OutOfRangeError when either coordinate falls
// outside. Both ranges default to chart.Unbounded, so checking is opt-in.
//
// Useful when a chart looks unexpected and the problem may be the data that
// is added: the bad point fails loudly at the insertion site instead of
// distorting the plot.
//
// The embedded Trace is the wrapped instance; every operation BoundsChecker
// does not override forwards to it unchanged. The proxy itself adds no
// synchronization: the range fields are plain shared state (last write
// wins), and thread-safety of forwarded operations is entirely the
// delegate's concern.
type BoundsChecker struct {
	chart.Trace

	xRange chart.Range
	yRange chart.Range
}

var _ chart.Trace = (*BoundsChecker)(nil)

// NewBoundsChecker wraps delegate in a validating proxy whose x and y
// ranges start unconstrained. Returns chart.ErrNilTrace for a nil delegate.
func NewBoundsChecker(delegate chart.Trace) (*BoundsChecker, error) {
	if delegate == nil {
		return nil, chart.ErrNilTrace
	}

	return &BoundsChecker{
		Trace:  delegate,
		xRange: chart.Unbounded(),
		yRange: chart.Unbounded(),
	}, nil
}

// XRange returns a snapshot of the active x range.
func (b *BoundsChecker) XRange() chart.Range {
	return b.xRange
}

// YRange returns a snapshot of the active y range.
func (b *BoundsChecker) YRange() chart.Range {
	return b.yRange
}

// SetXRange replaces the active x range. Rejects unusable intervals (NaN
// endpoint or Min > Max) with chart.ErrInvalidRange, keeping the previous
// range. Points already held by the delegate are never re-validated.
func (b *BoundsChecker) SetXRange(r chart.Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %s", chart.ErrInvalidRange, r)
	}
	b.xRange = r

	return nil
}

// SetYRange replaces the active y range. Rejects unusable intervals with
// chart.ErrInvalidRange, keeping the previous range.
func (b *BoundsChecker) SetYRange(r chart.Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %s", chart.ErrInvalidRange, r)
	}
	b.yRange = r

	return nil
}

// AddPoint constructs a point for (x, y) through the delegate renderer's
// point provider (chart.DefaultPointProvider while the delegate is
// unattached) and inserts it through the checked path.
func (b *BoundsChecker) AddPoint(x, y float64) (bool, error) {
	provider := chart.DefaultPointProvider
	if r := b.Trace.Renderer(); r != nil {
		if rp := r.PointProvider(); rp != nil {
			provider = rp
		}
	}

	return b.AddTracePoint(provider.NewPoint(x, y))
}

// AddTracePoint checks p.X against the x range, then p.Y against the y
// range, and forwards to the delegate only when both pass. A violation
// returns an *OutOfRangeError naming the range actually violated; the
// delegate is left untouched. When both checks pass, the result is exactly
// the delegate's (delegates may still reject points for their own reasons).
func (b *BoundsChecker) AddTracePoint(p *chart.Point) (bool, error) {
	if p == nil {
		return false, chart.ErrNilPoint
	}
	if !b.xRange.Contains(p.X) {
		return false, &OutOfRangeError{Point: *p, Axis: AxisX, Range: b.xRange}
	}
	if !b.yRange.Contains(p.Y) {
		return false, &OutOfRangeError{Point: *p, Axis: AxisY, Range: b.yRange}
	}

	return b.Trace.AddTracePoint(p)
}
