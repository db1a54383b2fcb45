// Package chart: the Trace contract and its collaborator interfaces.
//
// This file declares the sentinel errors, the hosting-side interfaces
// (Painter, PointPainter, ErrorBarPolicy, PointProvider, Renderer) and the
// Trace interface every implementation and decorator must satisfy.

package chart

import (
	"errors"
	"image/color"
)

// Sentinel errors for trace construction and configuration.
var (
	// ErrNilTrace indicates a nil delegate was handed to a decorator constructor.
	ErrNilTrace = errors.New("chart: trace must not be nil")

	// ErrNilPoint indicates a nil point was handed to an insertion path.
	ErrNilPoint = errors.New("chart: point must not be nil")

	// ErrInvalidRange indicates a range with a NaN endpoint or Min > Max.
	ErrInvalidRange = errors.New("chart: invalid range")
)

// Painter renders a whole trace. Implemented by the hosting chart.
type Painter interface {
	// PaintTrace draws every point of the trace in order.
	PaintTrace(t Trace)
}

// PointPainter highlights single points of a trace. Implemented by the
// hosting chart.
type PointPainter interface {
	// PaintPoint draws one point.
	PaintPoint(p *Point)
}

// ErrorBarPolicy computes and renders error bars for the points of a trace.
// Implemented by the hosting chart.
type ErrorBarPolicy interface {
	// ShowsPositiveXErrors reports whether positive x error bars are rendered.
	ShowsPositiveXErrors() bool
	// ShowsNegativeXErrors reports whether negative x error bars are rendered.
	ShowsNegativeXErrors() bool
	// ShowsPositiveYErrors reports whether positive y error bars are rendered.
	ShowsPositiveYErrors() bool
	// ShowsNegativeYErrors reports whether negative y error bars are rendered.
	ShowsNegativeYErrors() bool
	// Paint draws the error bars of one point.
	Paint(p *Point)
}

// PointProvider constructs the points a trace stores. Renderers supply a
// provider so that all traces of a chart create compatible points.
type PointProvider interface {
	NewPoint(x, y float64) *Point
}

// PointProviderFunc adapts a function to the PointProvider interface.
type PointProviderFunc func(x, y float64) *Point

// NewPoint calls f.
func (f PointProviderFunc) NewPoint(x, y float64) *Point { return f(x, y) }

// DefaultPointProvider builds plain points. Used by traces that are not
// (yet) attached to a renderer.
var DefaultPointProvider PointProvider = PointProviderFunc(Pt)

// Renderer is the owning chart of a trace. Implemented by the hosting
// application; traces only hold the association and obtain points from it.
type Renderer interface {
	// PointProvider returns the point factory all traces of this renderer use.
	PointProvider() PointProvider
}

// Trace is an ordered, mutable collection of 2D points with styling,
// metadata and rendering collaborators: the full capability set a trace
// implementation or decorator must expose to substitute transparently
// wherever the hosting chart expects one.
type Trace interface {
	// AddPoint constructs a point for (x, y) and inserts it. The bool result
	// reports whether the implementation accepted the point.
	AddPoint(x, y float64) (bool, error)
	// AddTracePoint inserts an existing point.
	AddTracePoint(p *Point) (bool, error)
	// RemovePoint removes the point (by identity) and reports success.
	RemovePoint(p *Point) bool
	// RemoveAllPoints discards every point of the trace.
	RemoveAllPoints()

	// Color returns the trace color.
	Color() color.Color
	// SetColor replaces the trace color.
	SetColor(c color.Color)
	// Stroke returns the line style.
	Stroke() Stroke
	// SetStroke replaces the line style.
	SetStroke(s Stroke)
	// Visible reports whether the trace is rendered.
	Visible() bool
	// SetVisible toggles rendering of the trace.
	SetVisible(visible bool)
	// ZIndex returns the stacking order of the trace on its chart.
	ZIndex() int
	// SetZIndex replaces the stacking order.
	SetZIndex(z int)

	// Name returns the trace name.
	Name() string
	// SetName replaces the trace name.
	SetName(name string)
	// Label returns the display label: the name, plus physical units when set.
	Label() string
	// PhysicalUnits returns the combined unit string of both axes.
	PhysicalUnits() string
	// PhysicalUnitsX returns the x axis unit.
	PhysicalUnitsX() string
	// PhysicalUnitsY returns the y axis unit.
	PhysicalUnitsY() string
	// SetPhysicalUnits replaces both axis units.
	SetPhysicalUnits(xUnit, yUnit string)

	// MinX returns the smallest x coordinate, 0 for an empty trace.
	MinX() float64
	// MaxX returns the largest x coordinate, 0 for an empty trace.
	MaxX() float64
	// MinY returns the smallest y coordinate, 0 for an empty trace.
	MinY() float64
	// MaxY returns the largest y coordinate, 0 for an empty trace.
	MaxY() float64
	// Size returns the number of stored points.
	Size() int
	// MaxSize returns the capacity bound of the trace.
	MaxSize() int
	// Empty reports whether the trace holds no points.
	Empty() bool

	// NearestPointEuclid returns the stored point closest to (x, y) by
	// euclidean distance.
	NearestPointEuclid(x, y float64) DistancePoint
	// NearestPointManhattan returns the stored point closest to (x, y) by
	// manhattan distance.
	NearestPointManhattan(x, y float64) DistancePoint

	// AddPainter registers a painter; false if it is already registered.
	AddPainter(p Painter) bool
	// RemovePainter unregisters a painter and reports success.
	RemovePainter(p Painter) bool
	// ContainsPainter reports whether the painter is registered.
	ContainsPainter(p Painter) bool
	// Painters returns a snapshot of the registered painters.
	Painters() []Painter
	// SetPainter replaces all painters with p and returns the previous set.
	SetPainter(p Painter) []Painter

	// AddPointHighlighter registers a highlighter; false if already registered.
	AddPointHighlighter(h PointPainter) bool
	// RemovePointHighlighter unregisters a highlighter and reports success.
	RemovePointHighlighter(h PointPainter) bool
	// PointHighlighters returns a snapshot of the registered highlighters.
	PointHighlighters() []PointPainter
	// SetPointHighlighter replaces all highlighters with h and returns the
	// previous set.
	SetPointHighlighter(h PointPainter) []PointPainter
	// RemoveAllPointHighlighters unregisters and returns all highlighters.
	RemoveAllPointHighlighters() []PointPainter

	// AddErrorBarPolicy registers a policy; false if already registered.
	AddErrorBarPolicy(p ErrorBarPolicy) bool
	// RemoveErrorBarPolicy unregisters a policy and reports success.
	RemoveErrorBarPolicy(p ErrorBarPolicy) bool
	// SetErrorBarPolicy replaces all policies with p and returns the previous set.
	SetErrorBarPolicy(p ErrorBarPolicy) []ErrorBarPolicy
	// ErrorBarPolicies returns a snapshot of the registered policies.
	ErrorBarPolicies() []ErrorBarPolicy
	// HasErrorBars reports whether any error-bar policy is registered.
	HasErrorBars() bool
	// ShowsErrorBars reports whether error bars are visible in any direction.
	ShowsErrorBars() bool
	// ShowsPositiveXErrorBars reports positive x error bar visibility.
	ShowsPositiveXErrorBars() bool
	// ShowsNegativeXErrorBars reports negative x error bar visibility.
	ShowsNegativeXErrorBars() bool
	// ShowsPositiveYErrorBars reports positive y error bar visibility.
	ShowsPositiveYErrorBars() bool
	// ShowsNegativeYErrorBars reports negative y error bar visibility.
	ShowsNegativeYErrorBars() bool

	// AddPropertyChangeListener registers l for the given property name
	// (PropertyAll for every property).
	AddPropertyChangeListener(property string, l PropertyChangeListener)
	// RemovePropertyChangeListener unregisters l from every property.
	RemovePropertyChangeListener(l PropertyChangeListener)
	// RemovePropertyChangeListenerFor unregisters l from one property.
	RemovePropertyChangeListenerFor(property string, l PropertyChangeListener)
	// PropertyChangeListeners returns a snapshot of the listeners registered
	// for the given property name.
	PropertyChangeListeners(property string) []PropertyChangeListener
	// PropertyChange dispatches an incoming event to this trace; traces act
	// as listeners so they can relay changes of collaborating traces.
	PropertyChange(ev PropertyChangeEvent)
	// FirePointChanged publishes a point lifecycle change as a
	// PropertyTracePoint event.
	FirePointChanged(p *Point, state PointState)

	// AddComputingTrace attaches a trace whose points are derived from this one.
	AddComputingTrace(t Trace)
	// RemoveComputingTrace detaches a computing trace and reports success.
	RemoveComputingTrace(t Trace) bool

	// Renderer returns the owning chart, nil while unattached.
	Renderer() Renderer
	// SetRenderer associates the trace with its owning chart.
	SetRenderer(r Renderer)

	// Compare orders traces by name, then z-index.
	Compare(other Trace) int
	// Points returns a snapshot of the stored points in insertion order.
	Points() []*Point

	String() string
}
