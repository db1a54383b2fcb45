package traces_test

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/chart2d/chart"
	"github.com/plotkit/chart2d/traces"
)

// TestBoundsChecker_NilDelegate verifies construction rejects a nil delegate.
func TestBoundsChecker_NilDelegate(t *testing.T) {
	dbg, err := traces.NewBoundsChecker(nil)
	assert.Nil(t, dbg)
	assert.ErrorIs(t, err, chart.ErrNilTrace)
}

// TestBoundsChecker_DefaultsUnconstrained verifies both ranges start
// unbounded and that, unconfigured, insertion never rejects a finite point.
func TestBoundsChecker_DefaultsUnconstrained(t *testing.T) {
	dbg, err := traces.NewBoundsChecker(traces.NewSimple())
	require.NoError(t, err)

	assert.True(t, dbg.XRange().IsUnbounded())
	assert.True(t, dbg.YRange().IsUnbounded())

	for _, xy := range [][2]float64{
		{0, 0},
		{-math.MaxFloat64, math.MaxFloat64},
		{1e308, -1e308},
	} {
		ok, err := dbg.AddPoint(xy[0], xy[1])
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 3, dbg.Size())
}

// TestBoundsChecker_Scenario walks the canonical scenario: ranges [0,10] on
// both axes, one accepted point, one x violation, one y violation. The
// delegate must be untouched by rejected points.
func TestBoundsChecker_Scenario(t *testing.T) {
	delegate := traces.NewSimple()
	dbg, err := traces.NewBoundsChecker(delegate)
	require.NoError(t, err)
	require.NoError(t, dbg.SetXRange(chart.NewRange(0, 10)))
	require.NoError(t, dbg.SetYRange(chart.NewRange(0, 10)))

	ok, err := dbg.AddPoint(5, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, delegate.Size())

	ok, err = dbg.AddPoint(15, 5)
	assert.False(t, ok)
	require.ErrorIs(t, err, traces.ErrPointOutOfRange)
	var oor *traces.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, traces.AxisX, oor.Axis)
	assert.Equal(t, chart.NewRange(0, 10), oor.Range)
	assert.Equal(t, chart.Point{X: 15, Y: 5}, oor.Point)
	assert.Equal(t, 1, delegate.Size(), "rejected point never reaches the delegate")

	ok, err = dbg.AddPoint(5, -1)
	assert.False(t, ok)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, traces.AxisY, oor.Axis)
	assert.Equal(t, 1, delegate.Size())
}

// TestBoundsChecker_YViolationReportsYRange pins that a y violation names
// the y range. A copy-pasted guard can easily report the x range here, so
// the axis and range of the error are asserted explicitly.
func TestBoundsChecker_YViolationReportsYRange(t *testing.T) {
	dbg, err := traces.NewBoundsChecker(traces.NewSimple())
	require.NoError(t, err)
	require.NoError(t, dbg.SetXRange(chart.NewRange(0, 100)))
	require.NoError(t, dbg.SetYRange(chart.NewRange(-1, 1)))

	_, err = dbg.AddPoint(50, 2)
	var oor *traces.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, traces.AxisY, oor.Axis)
	assert.Equal(t, chart.NewRange(-1, 1), oor.Range, "the violated y-range is reported, not the x-range")
	assert.Equal(t, "traces: point (50, 2) is not within the valid y-range [-1, 1]", err.Error())
}

// TestBoundsChecker_XCheckedFirst verifies that when both coordinates are
// out of range, the x violation is reported (the x check runs first).
func TestBoundsChecker_XCheckedFirst(t *testing.T) {
	dbg, err := traces.NewBoundsChecker(traces.NewSimple())
	require.NoError(t, err)
	require.NoError(t, dbg.SetXRange(chart.NewRange(0, 1)))
	require.NoError(t, dbg.SetYRange(chart.NewRange(0, 1)))

	_, err = dbg.AddPoint(5, 5)
	var oor *traces.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, traces.AxisX, oor.Axis)
}

// TestBoundsChecker_SetRangeRejectsInvalid verifies invalid intervals are
// rejected with chart.ErrInvalidRange and the active range is retained.
func TestBoundsChecker_SetRangeRejectsInvalid(t *testing.T) {
	dbg, err := traces.NewBoundsChecker(traces.NewSimple())
	require.NoError(t, err)
	require.NoError(t, dbg.SetXRange(chart.NewRange(0, 10)))

	for _, bad := range []chart.Range{
		{Min: 5, Max: -5},
		{Min: math.NaN(), Max: 1},
		{Min: 0, Max: math.NaN()},
	} {
		assert.ErrorIs(t, dbg.SetXRange(bad), chart.ErrInvalidRange)
		assert.ErrorIs(t, dbg.SetYRange(bad), chart.ErrInvalidRange)
	}

	assert.Equal(t, chart.NewRange(0, 10), dbg.XRange(), "previous x range retained")
	assert.True(t, dbg.YRange().IsUnbounded(), "previous y range retained")
}

// TestBoundsChecker_NoRetroactiveValidation verifies narrowing a range does
// not remove previously accepted points but does guard new insertions.
func TestBoundsChecker_NoRetroactiveValidation(t *testing.T) {
	delegate := traces.NewSimple()
	dbg, err := traces.NewBoundsChecker(delegate)
	require.NoError(t, err)

	ok, err := dbg.AddPoint(6, 0)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, dbg.SetXRange(chart.NewRange(-5, 5)))
	assert.Equal(t, 1, delegate.Size(), "narrowing never removes held points")

	_, err = dbg.AddPoint(6, 0)
	assert.ErrorIs(t, err, traces.ErrPointOutOfRange)
	assert.Equal(t, 1, delegate.Size())
}

// TestBoundsChecker_AddTracePointNil verifies the nil point guard.
func TestBoundsChecker_AddTracePointNil(t *testing.T) {
	dbg, err := traces.NewBoundsChecker(traces.NewSimple())
	require.NoError(t, err)

	ok, err := dbg.AddTracePoint(nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, chart.ErrNilPoint)
}

// TestBoundsChecker_NaNRejected verifies NaN coordinates fail even the
// default unbounded ranges (NaN is never contained in a closed interval).
func TestBoundsChecker_NaNRejected(t *testing.T) {
	dbg, err := traces.NewBoundsChecker(traces.NewSimple())
	require.NoError(t, err)

	_, err = dbg.AddPoint(math.NaN(), 0)
	assert.ErrorIs(t, err, traces.ErrPointOutOfRange)
	_, err = dbg.AddPoint(0, math.NaN())
	assert.ErrorIs(t, err, traces.ErrPointOutOfRange)
}

// TestBoundsChecker_UsesRendererProvider verifies AddPoint builds the point
// through the delegate renderer's provider when one is attached.
func TestBoundsChecker_UsesRendererProvider(t *testing.T) {
	built := 0
	delegate := traces.NewSimple()
	delegate.SetRenderer(&stubRenderer{provider: chart.PointProviderFunc(func(x, y float64) *chart.Point {
		built++

		return chart.Pt(x, y)
	})})

	dbg, err := traces.NewBoundsChecker(delegate)
	require.NoError(t, err)

	_, err = dbg.AddPoint(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, built)

	// The guarded path also applies to renderer-built points.
	require.NoError(t, dbg.SetXRange(chart.NewRange(0, 0)))
	_, err = dbg.AddPoint(1, 2)
	assert.ErrorIs(t, err, traces.ErrPointOutOfRange)
	assert.Equal(t, 1, delegate.Size())
}

// TestBoundsChecker_PassThroughFidelity verifies forwarded getters return
// exactly the delegate's values and forwarded mutators hit the delegate.
func TestBoundsChecker_PassThroughFidelity(t *testing.T) {
	delegate := traces.NewSimple(
		traces.WithName("sensor-a"),
		traces.WithZIndex(4),
		traces.WithPhysicalUnits("s", "V"),
	)
	dbg, err := traces.NewBoundsChecker(delegate)
	require.NoError(t, err)

	// Getters mirror the delegate.
	assert.Equal(t, delegate.Name(), dbg.Name())
	assert.Equal(t, delegate.Label(), dbg.Label())
	assert.Equal(t, delegate.ZIndex(), dbg.ZIndex())
	assert.Equal(t, delegate.PhysicalUnits(), dbg.PhysicalUnits())
	assert.Equal(t, delegate.PhysicalUnitsX(), dbg.PhysicalUnitsX())
	assert.Equal(t, delegate.PhysicalUnitsY(), dbg.PhysicalUnitsY())
	assert.Equal(t, delegate.Visible(), dbg.Visible())
	assert.Equal(t, delegate.MaxSize(), dbg.MaxSize())
	assert.Equal(t, delegate.String(), dbg.String())

	// Mutations through the proxy land in the delegate.
	dbg.SetColor(color.White)
	assert.Equal(t, color.White, delegate.Color())
	dbg.SetName("renamed")
	assert.Equal(t, "renamed", delegate.Name())
	dbg.SetStroke(chart.Stroke{Width: 3})
	assert.Equal(t, 3.0, delegate.Stroke().Width)
	dbg.SetVisible(false)
	assert.False(t, delegate.Visible())

	// Point state is shared: the proxy reads the delegate's extent.
	ok, err := delegate.AddTracePoint(chart.Pt(2, 8))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, delegate.Size(), dbg.Size())
	assert.Equal(t, delegate.MinX(), dbg.MinX())
	assert.Equal(t, delegate.MaxY(), dbg.MaxY())
	assert.Equal(t, delegate.Points(), dbg.Points())

	near := dbg.NearestPointEuclid(2, 8)
	assert.Same(t, delegate.NearestPointEuclid(2, 8).Point, near.Point)

	// Removal and collaborator management forward unchanged.
	p := delegate.Points()[0]
	assert.True(t, dbg.RemovePoint(p))
	assert.True(t, delegate.Empty())

	painter := &stubPainter{}
	assert.True(t, dbg.AddPainter(painter))
	assert.True(t, delegate.ContainsPainter(painter))
	assert.True(t, dbg.RemovePainter(painter))
	assert.False(t, delegate.ContainsPainter(painter))

	rec := &recorder{}
	dbg.AddPropertyChangeListener(chart.PropertyName, rec)
	delegate.SetName("again")
	require.Len(t, rec.snapshot(), 1, "listener registration reaches the delegate")
	assert.Same(t, delegate, rec.snapshot()[0].Source.(*traces.Simple), "events are sourced at the delegate")
}

// TestBoundsChecker_AcceptedInsertMatchesDirect verifies an accepted point
// leaves the delegate exactly as a direct insertion would.
func TestBoundsChecker_AcceptedInsertMatchesDirect(t *testing.T) {
	direct := traces.NewSimple()
	wrapped := traces.NewSimple()
	dbg, err := traces.NewBoundsChecker(wrapped)
	require.NoError(t, err)
	require.NoError(t, dbg.SetXRange(chart.NewRange(0, 10)))
	require.NoError(t, dbg.SetYRange(chart.NewRange(0, 10)))

	for _, xy := range [][2]float64{{0, 0}, {10, 10}, {3, 7}} {
		okDirect, errDirect := direct.AddPoint(xy[0], xy[1])
		okProxy, errProxy := dbg.AddPoint(xy[0], xy[1])
		assert.Equal(t, okDirect, okProxy)
		assert.Equal(t, errDirect, errProxy)
	}

	assert.Equal(t, direct.Size(), wrapped.Size())
	assert.Equal(t, direct.MinX(), wrapped.MinX())
	assert.Equal(t, direct.MaxX(), wrapped.MaxX())
	assert.Equal(t, direct.MinY(), wrapped.MinY())
	assert.Equal(t, direct.MaxY(), wrapped.MaxY())
}

// TestBoundsChecker_ErrorIsAndAs verifies the error chain exposes both the
// sentinel and the context-carrying type.
func TestBoundsChecker_ErrorIsAndAs(t *testing.T) {
	dbg, err := traces.NewBoundsChecker(traces.NewSimple())
	require.NoError(t, err)
	require.NoError(t, dbg.SetXRange(chart.NewRange(0, 1)))

	_, err = dbg.AddTracePoint(chart.Pt(2, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, traces.ErrPointOutOfRange))

	var oor *traces.OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 2.0, oor.Point.X)
	assert.Equal(t, chart.NewRange(0, 1), oor.Range)
}
