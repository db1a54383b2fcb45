package chart

// Property names fired by traces when their observable state changes.
// Listeners register for one name, or for PropertyAll to receive everything.
const (
	// PropertyAll subscribes a listener to every property of a trace.
	PropertyAll = ""

	PropertyName          = "trace.name"
	PropertyLabel         = "trace.label"
	PropertyColor         = "trace.color"
	PropertyStroke        = "trace.stroke"
	PropertyVisible       = "trace.visible"
	PropertyZIndex        = "trace.zindex"
	PropertyPhysicalUnits = "trace.physicalunits"

	// PropertyTracePoint is fired for point lifecycle changes: Old/New carry
	// the point per the PointState convention of FirePointChanged.
	PropertyTracePoint = "trace.tracepoint"

	// Extent properties are fired when point mutation moves a bound of the
	// trace's tracked extent; Old/New carry the float64 bound values.
	PropertyMinX = "trace.minx"
	PropertyMaxX = "trace.maxx"
	PropertyMinY = "trace.miny"
	PropertyMaxY = "trace.maxy"

	PropertyPainters          = "trace.painters"
	PropertyPointHighlighters = "trace.pointhighlighters"
	PropertyErrorBarPolicy    = "trace.errorbarpolicy"
)

// PointState classifies a point lifecycle notification.
type PointState int

const (
	// PointAdded: the point was inserted (event Old == nil, New == point).
	PointAdded PointState = iota + 1
	// PointRemoved: the point was removed (event Old == point, New == nil).
	PointRemoved
	// PointChanged: the point's coordinates changed (Old == New == point).
	PointChanged
)

// PropertyChangeEvent describes one observable state change of a trace.
type PropertyChangeEvent struct {
	// Source is the trace the change originated from.
	Source Trace
	// Property is one of the Property* names above.
	Property string
	// Old and New carry the before/after values; either may be nil.
	Old interface{}
	New interface{}
}

// PropertyChangeListener receives trace state changes. Listeners are
// registered and removed by identity, so register the same value you will
// later pass to RemovePropertyChangeListener.
type PropertyChangeListener interface {
	PropertyChange(ev PropertyChangeEvent)
}
