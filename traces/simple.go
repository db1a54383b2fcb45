// Package traces: the reference in-memory chart.Trace implementation.
//
// Simple stores points in insertion order behind a sync.RWMutex, tracks the
// x/y extents incrementally on insertion and recomputes them on removal.
// Property-change events are always fired after locks are released, so
// listeners may call back into the trace.

package traces

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/plotkit/chart2d/chart"
)

// SimpleOption configures a Simple trace at construction time.
type SimpleOption func(s *Simple)

// WithName sets the trace name.
func WithName(name string) SimpleOption {
	return func(s *Simple) { s.name = name }
}

// WithColor sets the trace color.
func WithColor(c color.Color) SimpleOption {
	return func(s *Simple) { s.color = c }
}

// WithStroke sets the line style.
func WithStroke(st chart.Stroke) SimpleOption {
	return func(s *Simple) { s.stroke = st }
}

// WithZIndex sets the stacking order.
func WithZIndex(z int) SimpleOption {
	return func(s *Simple) { s.zIndex = z }
}

// WithPhysicalUnits sets the axis units.
func WithPhysicalUnits(xUnit, yUnit string) SimpleOption {
	return func(s *Simple) { s.xUnit, s.yUnit = xUnit, yUnit }
}

// WithMaxSize caps the trace at n points. Once full, inserting evicts the
// oldest point first (ring behavior). n <= 0 leaves the trace unbounded.
func WithMaxSize(n int) SimpleOption {
	return func(s *Simple) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// WithPointProvider sets the factory used by AddPoint while the trace is
// not attached to a renderer.
func WithPointProvider(p chart.PointProvider) SimpleOption {
	return func(s *Simple) {
		if p != nil {
			s.provider = p
		}
	}
}

// Simple is the reference in-memory trace. It accepts every point handed to
// it; validation belongs to decorators such as BoundsChecker.
//
// All methods are safe for concurrent use. mu guards every mutable field;
// events fire after mu is released.
type Simple struct {
	mu sync.RWMutex

	name   string
	xUnit  string
	yUnit  string
	color  color.Color
	stroke chart.Stroke

	visible bool
	zIndex  int

	maxSize  int // 0 = unbounded
	provider chart.PointProvider
	renderer chart.Renderer

	points                 []*chart.Point
	minX, maxX, minY, maxY float64

	painters     []chart.Painter
	highlighters []chart.PointPainter
	policies     []chart.ErrorBarPolicy

	listeners map[string][]chart.PropertyChangeListener
	computing []chart.Trace
}

// compile-time contract check
var _ chart.Trace = (*Simple)(nil)

// NewSimple creates an empty trace: visible, black, default stroke,
// unbounded unless WithMaxSize is given.
func NewSimple(opts ...SimpleOption) *Simple {
	s := &Simple{
		color:     color.Black,
		stroke:    chart.DefaultStroke,
		visible:   true,
		provider:  chart.DefaultPointProvider,
		listeners: make(map[string][]chart.PropertyChangeListener),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddPoint constructs a point for (x, y) through the renderer's point
// provider (or the trace's own while unattached) and inserts it.
// Complexity: O(1) amortized.
func (s *Simple) AddPoint(x, y float64) (bool, error) {
	s.mu.RLock()
	provider := s.provider
	if s.renderer != nil {
		if rp := s.renderer.PointProvider(); rp != nil {
			provider = rp
		}
	}
	s.mu.RUnlock()

	return s.AddTracePoint(provider.NewPoint(x, y))
}

// AddTracePoint appends p, evicting the oldest point first when the trace
// is at its cap. Simple accepts every non-nil point.
// Complexity: O(1) amortized.
func (s *Simple) AddTracePoint(p *chart.Point) (bool, error) {
	if p == nil {
		return false, chart.ErrNilPoint
	}

	var evicted *chart.Point
	s.mu.Lock()
	before := s.extentsLocked()
	if s.maxSize > 0 && len(s.points) >= s.maxSize {
		evicted = s.points[0]
		s.points = s.points[1:]
	}
	s.points = append(s.points, p)
	if len(s.points) == 1 {
		s.minX, s.maxX = p.X, p.X
		s.minY, s.maxY = p.Y, p.Y
	} else {
		s.minX = math.Min(s.minX, p.X)
		s.maxX = math.Max(s.maxX, p.X)
		s.minY = math.Min(s.minY, p.Y)
		s.maxY = math.Max(s.maxY, p.Y)
	}
	if evicted != nil {
		// Extents may have belonged to the evicted point.
		s.recomputeExtentsLocked()
	}
	after := s.extentsLocked()
	s.mu.Unlock()

	if evicted != nil {
		s.FirePointChanged(evicted, chart.PointRemoved)
	}
	s.FirePointChanged(p, chart.PointAdded)
	s.fireExtentChanges(before, after)

	return true, nil
}

// RemovePoint removes p by identity and reports whether it was stored.
// Complexity: O(n).
func (s *Simple) RemovePoint(p *chart.Point) bool {
	if p == nil {
		return false
	}

	found := false
	s.mu.Lock()
	before := s.extentsLocked()
	for i, q := range s.points {
		if q == p {
			s.points = append(s.points[:i], s.points[i+1:]...)
			found = true

			break
		}
	}
	if found {
		s.recomputeExtentsLocked()
	}
	after := s.extentsLocked()
	s.mu.Unlock()

	if found {
		s.FirePointChanged(p, chart.PointRemoved)
		s.fireExtentChanges(before, after)
	}

	return found
}

// RemoveAllPoints discards every point, firing PointRemoved for each.
func (s *Simple) RemoveAllPoints() {
	s.mu.Lock()
	before := s.extentsLocked()
	removed := s.points
	s.points = nil
	s.minX, s.maxX, s.minY, s.maxY = 0, 0, 0, 0
	after := s.extentsLocked()
	s.mu.Unlock()

	for _, p := range removed {
		s.FirePointChanged(p, chart.PointRemoved)
	}
	s.fireExtentChanges(before, after)
}

// extents is a snapshot of the four tracked extent bounds.
type extents struct {
	minX, maxX, minY, maxY float64
}

// extentsLocked snapshots the tracked bounds. Caller holds mu.
func (s *Simple) extentsLocked() extents {
	return extents{minX: s.minX, maxX: s.maxX, minY: s.minY, maxY: s.maxY}
}

// fireExtentChanges fires one event per extent bound that moved between the
// two snapshots. Called after mu is released, like every other event.
func (s *Simple) fireExtentChanges(before, after extents) {
	if before.minX != after.minX {
		s.fire(chart.PropertyMinX, before.minX, after.minX)
	}
	if before.maxX != after.maxX {
		s.fire(chart.PropertyMaxX, before.maxX, after.maxX)
	}
	if before.minY != after.minY {
		s.fire(chart.PropertyMinY, before.minY, after.minY)
	}
	if before.maxY != after.maxY {
		s.fire(chart.PropertyMaxY, before.maxY, after.maxY)
	}
}

// recomputeExtentsLocked rescans all points. Caller holds mu.
func (s *Simple) recomputeExtentsLocked() {
	if len(s.points) == 0 {
		s.minX, s.maxX, s.minY, s.maxY = 0, 0, 0, 0

		return
	}
	s.minX, s.maxX = s.points[0].X, s.points[0].X
	s.minY, s.maxY = s.points[0].Y, s.points[0].Y
	for _, p := range s.points[1:] {
		s.minX = math.Min(s.minX, p.X)
		s.maxX = math.Max(s.maxX, p.X)
		s.minY = math.Min(s.minY, p.Y)
		s.maxY = math.Max(s.maxY, p.Y)
	}
}

// Color returns the trace color.
func (s *Simple) Color() color.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.color
}

// SetColor replaces the trace color and fires PropertyColor.
func (s *Simple) SetColor(c color.Color) {
	s.mu.Lock()
	old := s.color
	s.color = c
	s.mu.Unlock()

	s.fire(chart.PropertyColor, old, c)
}

// Stroke returns the line style.
func (s *Simple) Stroke() chart.Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stroke
}

// SetStroke replaces the line style and fires PropertyStroke.
func (s *Simple) SetStroke(st chart.Stroke) {
	s.mu.Lock()
	old := s.stroke
	s.stroke = st
	s.mu.Unlock()

	s.fire(chart.PropertyStroke, old, st)
}

// Visible reports whether the trace is rendered.
func (s *Simple) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.visible
}

// SetVisible toggles rendering and fires PropertyVisible on change.
func (s *Simple) SetVisible(visible bool) {
	s.mu.Lock()
	old := s.visible
	s.visible = visible
	s.mu.Unlock()

	if old != visible {
		s.fire(chart.PropertyVisible, old, visible)
	}
}

// ZIndex returns the stacking order.
func (s *Simple) ZIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.zIndex
}

// SetZIndex replaces the stacking order and fires PropertyZIndex.
func (s *Simple) SetZIndex(z int) {
	s.mu.Lock()
	old := s.zIndex
	s.zIndex = z
	s.mu.Unlock()

	s.fire(chart.PropertyZIndex, old, z)
}

// Name returns the trace name.
func (s *Simple) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.name
}

// SetName replaces the trace name and fires PropertyName, plus
// PropertyLabel when the label composition changed with it.
func (s *Simple) SetName(name string) {
	s.mu.Lock()
	old := s.name
	oldLabel := s.labelLocked()
	s.name = name
	newLabel := s.labelLocked()
	s.mu.Unlock()

	s.fire(chart.PropertyName, old, name)
	if oldLabel != newLabel {
		s.fire(chart.PropertyLabel, oldLabel, newLabel)
	}
}

// Label returns the name followed by the physical units, when set.
func (s *Simple) Label() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.labelLocked()
}

func (s *Simple) labelLocked() string {
	return strings.TrimSpace(s.name + " " + s.physicalUnitsLocked())
}

// PhysicalUnits returns "[x: <xUnit>, y: <yUnit>]", or "" when no unit is set.
func (s *Simple) PhysicalUnits() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.physicalUnitsLocked()
}

func (s *Simple) physicalUnitsLocked() string {
	if s.xUnit == "" && s.yUnit == "" {
		return ""
	}

	return fmt.Sprintf("[x: %s, y: %s]", s.xUnit, s.yUnit)
}

// PhysicalUnitsX returns the x axis unit.
func (s *Simple) PhysicalUnitsX() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.xUnit
}

// PhysicalUnitsY returns the y axis unit.
func (s *Simple) PhysicalUnitsY() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.yUnit
}

// SetPhysicalUnits replaces both axis units and fires
// PropertyPhysicalUnits, plus PropertyLabel when the label composition
// changed with them.
func (s *Simple) SetPhysicalUnits(xUnit, yUnit string) {
	s.mu.Lock()
	old := s.physicalUnitsLocked()
	oldLabel := s.labelLocked()
	s.xUnit, s.yUnit = xUnit, yUnit
	now := s.physicalUnitsLocked()
	newLabel := s.labelLocked()
	s.mu.Unlock()

	if old != now {
		s.fire(chart.PropertyPhysicalUnits, old, now)
	}
	if oldLabel != newLabel {
		s.fire(chart.PropertyLabel, oldLabel, newLabel)
	}
}

// MinX returns the smallest x coordinate, 0 for an empty trace.
func (s *Simple) MinX() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.minX
}

// MaxX returns the largest x coordinate, 0 for an empty trace.
func (s *Simple) MaxX() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.maxX
}

// MinY returns the smallest y coordinate, 0 for an empty trace.
func (s *Simple) MinY() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.minY
}

// MaxY returns the largest y coordinate, 0 for an empty trace.
func (s *Simple) MaxY() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.maxY
}

// Size returns the number of stored points. Complexity: O(1).
func (s *Simple) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.points)
}

// MaxSize returns the configured cap, or math.MaxInt when unbounded.
func (s *Simple) MaxSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.maxSize == 0 {
		return math.MaxInt
	}

	return s.maxSize
}

// Empty reports whether the trace holds no points.
func (s *Simple) Empty() bool {
	return s.Size() == 0
}

// NearestPointEuclid returns the stored point closest to (x, y) by euclidean
// distance. Point is nil and Distance +Inf for an empty trace.
// Complexity: O(n).
func (s *Simple) NearestPointEuclid(x, y float64) chart.DistancePoint {
	return s.nearest(x, y, (*chart.Point).Distance)
}

// NearestPointManhattan returns the stored point closest to (x, y) by
// manhattan distance. Point is nil and Distance +Inf for an empty trace.
// Complexity: O(n).
func (s *Simple) NearestPointManhattan(x, y float64) chart.DistancePoint {
	return s.nearest(x, y, (*chart.Point).ManhattanDistance)
}

func (s *Simple) nearest(x, y float64, dist func(*chart.Point, float64, float64) float64) chart.DistancePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := chart.DistancePoint{Distance: math.Inf(1)}
	for _, p := range s.points {
		if d := dist(p, x, y); d < best.Distance {
			best = chart.DistancePoint{Point: p, Distance: d}
		}
	}

	return best
}

// AddPainter registers a painter; false if it is already registered.
func (s *Simple) AddPainter(p chart.Painter) bool {
	s.mu.Lock()
	for _, q := range s.painters {
		if q == p {
			s.mu.Unlock()

			return false
		}
	}
	s.painters = append(s.painters, p)
	s.mu.Unlock()

	s.fire(chart.PropertyPainters, nil, p)

	return true
}

// RemovePainter unregisters a painter and reports success.
func (s *Simple) RemovePainter(p chart.Painter) bool {
	found := false
	s.mu.Lock()
	for i, q := range s.painters {
		if q == p {
			s.painters = append(s.painters[:i], s.painters[i+1:]...)
			found = true

			break
		}
	}
	s.mu.Unlock()

	if found {
		s.fire(chart.PropertyPainters, p, nil)
	}

	return found
}

// ContainsPainter reports whether the painter is registered.
func (s *Simple) ContainsPainter(p chart.Painter) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.painters {
		if q == p {
			return true
		}
	}

	return false
}

// Painters returns a snapshot of the registered painters.
func (s *Simple) Painters() []chart.Painter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]chart.Painter, len(s.painters))
	copy(out, s.painters)

	return out
}

// SetPainter replaces all painters with p and returns the previous set.
func (s *Simple) SetPainter(p chart.Painter) []chart.Painter {
	s.mu.Lock()
	old := s.painters
	s.painters = []chart.Painter{p}
	s.mu.Unlock()

	s.fire(chart.PropertyPainters, old, p)

	return old
}

// AddPointHighlighter registers a highlighter; false if already registered.
func (s *Simple) AddPointHighlighter(h chart.PointPainter) bool {
	s.mu.Lock()
	for _, q := range s.highlighters {
		if q == h {
			s.mu.Unlock()

			return false
		}
	}
	s.highlighters = append(s.highlighters, h)
	s.mu.Unlock()

	s.fire(chart.PropertyPointHighlighters, nil, h)

	return true
}

// RemovePointHighlighter unregisters a highlighter and reports success.
func (s *Simple) RemovePointHighlighter(h chart.PointPainter) bool {
	found := false
	s.mu.Lock()
	for i, q := range s.highlighters {
		if q == h {
			s.highlighters = append(s.highlighters[:i], s.highlighters[i+1:]...)
			found = true

			break
		}
	}
	s.mu.Unlock()

	if found {
		s.fire(chart.PropertyPointHighlighters, h, nil)
	}

	return found
}

// PointHighlighters returns a snapshot of the registered highlighters.
func (s *Simple) PointHighlighters() []chart.PointPainter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]chart.PointPainter, len(s.highlighters))
	copy(out, s.highlighters)

	return out
}

// SetPointHighlighter replaces all highlighters with h and returns the
// previous set.
func (s *Simple) SetPointHighlighter(h chart.PointPainter) []chart.PointPainter {
	s.mu.Lock()
	old := s.highlighters
	s.highlighters = []chart.PointPainter{h}
	s.mu.Unlock()

	s.fire(chart.PropertyPointHighlighters, old, h)

	return old
}

// RemoveAllPointHighlighters unregisters and returns all highlighters.
func (s *Simple) RemoveAllPointHighlighters() []chart.PointPainter {
	s.mu.Lock()
	old := s.highlighters
	s.highlighters = nil
	s.mu.Unlock()

	if len(old) > 0 {
		s.fire(chart.PropertyPointHighlighters, old, nil)
	}

	return old
}

// AddErrorBarPolicy registers a policy; false if already registered.
func (s *Simple) AddErrorBarPolicy(p chart.ErrorBarPolicy) bool {
	s.mu.Lock()
	for _, q := range s.policies {
		if q == p {
			s.mu.Unlock()

			return false
		}
	}
	s.policies = append(s.policies, p)
	s.mu.Unlock()

	s.fire(chart.PropertyErrorBarPolicy, nil, p)

	return true
}

// RemoveErrorBarPolicy unregisters a policy and reports success.
func (s *Simple) RemoveErrorBarPolicy(p chart.ErrorBarPolicy) bool {
	found := false
	s.mu.Lock()
	for i, q := range s.policies {
		if q == p {
			s.policies = append(s.policies[:i], s.policies[i+1:]...)
			found = true

			break
		}
	}
	s.mu.Unlock()

	if found {
		s.fire(chart.PropertyErrorBarPolicy, p, nil)
	}

	return found
}

// SetErrorBarPolicy replaces all policies with p and returns the previous set.
func (s *Simple) SetErrorBarPolicy(p chart.ErrorBarPolicy) []chart.ErrorBarPolicy {
	s.mu.Lock()
	old := s.policies
	s.policies = []chart.ErrorBarPolicy{p}
	s.mu.Unlock()

	s.fire(chart.PropertyErrorBarPolicy, old, p)

	return old
}

// ErrorBarPolicies returns a snapshot of the registered policies.
func (s *Simple) ErrorBarPolicies() []chart.ErrorBarPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]chart.ErrorBarPolicy, len(s.policies))
	copy(out, s.policies)

	return out
}

// HasErrorBars reports whether any error-bar policy is registered.
func (s *Simple) HasErrorBars() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.policies) > 0
}

// ShowsErrorBars reports whether error bars are visible in any direction.
func (s *Simple) ShowsErrorBars() bool {
	return s.ShowsPositiveXErrorBars() || s.ShowsNegativeXErrorBars() ||
		s.ShowsPositiveYErrorBars() || s.ShowsNegativeYErrorBars()
}

// ShowsPositiveXErrorBars reports positive x error bar visibility.
func (s *Simple) ShowsPositiveXErrorBars() bool {
	return s.showsErrorBars(chart.ErrorBarPolicy.ShowsPositiveXErrors)
}

// ShowsNegativeXErrorBars reports negative x error bar visibility.
func (s *Simple) ShowsNegativeXErrorBars() bool {
	return s.showsErrorBars(chart.ErrorBarPolicy.ShowsNegativeXErrors)
}

// ShowsPositiveYErrorBars reports positive y error bar visibility.
func (s *Simple) ShowsPositiveYErrorBars() bool {
	return s.showsErrorBars(chart.ErrorBarPolicy.ShowsPositiveYErrors)
}

// ShowsNegativeYErrorBars reports negative y error bar visibility.
func (s *Simple) ShowsNegativeYErrorBars() bool {
	return s.showsErrorBars(chart.ErrorBarPolicy.ShowsNegativeYErrors)
}

func (s *Simple) showsErrorBars(shows func(chart.ErrorBarPolicy) bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.policies {
		if shows(p) {
			return true
		}
	}

	return false
}

// AddPropertyChangeListener registers l for the given property name
// (chart.PropertyAll for every property). Duplicate registrations are no-ops.
func (s *Simple) AddPropertyChangeListener(property string, l chart.PropertyChangeListener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.listeners[property] {
		if q == l {
			return
		}
	}
	s.listeners[property] = append(s.listeners[property], l)
}

// RemovePropertyChangeListener unregisters l from every property.
func (s *Simple) RemovePropertyChangeListener(l chart.PropertyChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for property := range s.listeners {
		s.removeListenerLocked(property, l)
	}
}

// RemovePropertyChangeListenerFor unregisters l from one property.
func (s *Simple) RemovePropertyChangeListenerFor(property string, l chart.PropertyChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeListenerLocked(property, l)
}

func (s *Simple) removeListenerLocked(property string, l chart.PropertyChangeListener) {
	ls := s.listeners[property]
	for i, q := range ls {
		if q == l {
			s.listeners[property] = append(ls[:i], ls[i+1:]...)

			return
		}
	}
}

// PropertyChangeListeners returns a snapshot of the listeners registered for
// the given property name (not including PropertyAll subscribers).
func (s *Simple) PropertyChangeListeners(property string) []chart.PropertyChangeListener {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]chart.PropertyChangeListener, len(s.listeners[property]))
	copy(out, s.listeners[property])

	return out
}

// PropertyChange relays an incoming event to this trace's own listeners.
// Traces act as listeners of their points and of collaborating traces.
func (s *Simple) PropertyChange(ev chart.PropertyChangeEvent) {
	s.dispatch(ev)
}

// FirePointChanged publishes a point lifecycle change as a
// PropertyTracePoint event, following the PointState old/new convention.
func (s *Simple) FirePointChanged(p *chart.Point, state chart.PointState) {
	var old, now interface{}
	switch state {
	case chart.PointAdded:
		now = p
	case chart.PointRemoved:
		old = p
	case chart.PointChanged:
		old, now = p, p
	}
	s.fire(chart.PropertyTracePoint, old, now)
}

// fire builds an event sourced at this trace and dispatches it.
func (s *Simple) fire(property string, old, now interface{}) {
	s.dispatch(chart.PropertyChangeEvent{Source: s, Property: property, Old: old, New: now})
}

// dispatch delivers ev to the listeners of ev.Property and to PropertyAll
// subscribers. Listener slices are snapshotted under the read lock and the
// callbacks run without it.
func (s *Simple) dispatch(ev chart.PropertyChangeEvent) {
	s.mu.RLock()
	targets := make([]chart.PropertyChangeListener, 0,
		len(s.listeners[ev.Property])+len(s.listeners[chart.PropertyAll]))
	targets = append(targets, s.listeners[ev.Property]...)
	if ev.Property != chart.PropertyAll {
		targets = append(targets, s.listeners[chart.PropertyAll]...)
	}
	s.mu.RUnlock()

	for _, l := range targets {
		l.PropertyChange(ev)
	}
}

// AddComputingTrace attaches a trace whose points are derived from this one.
// The computing trace is subscribed to point lifecycle events.
func (s *Simple) AddComputingTrace(t chart.Trace) {
	if t == nil {
		return
	}
	s.mu.Lock()
	s.computing = append(s.computing, t)
	s.mu.Unlock()

	s.AddPropertyChangeListener(chart.PropertyTracePoint, t)
}

// RemoveComputingTrace detaches a computing trace and reports success.
func (s *Simple) RemoveComputingTrace(t chart.Trace) bool {
	found := false
	s.mu.Lock()
	for i, q := range s.computing {
		if q == t {
			s.computing = append(s.computing[:i], s.computing[i+1:]...)
			found = true

			break
		}
	}
	s.mu.Unlock()

	if found {
		s.RemovePropertyChangeListenerFor(chart.PropertyTracePoint, t)
	}

	return found
}

// Renderer returns the owning chart, nil while unattached.
func (s *Simple) Renderer() chart.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.renderer
}

// SetRenderer associates the trace with its owning chart.
func (s *Simple) SetRenderer(r chart.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer = r
}

// Compare orders traces by name, then z-index.
func (s *Simple) Compare(other chart.Trace) int {
	if c := strings.Compare(s.Name(), other.Name()); c != 0 {
		return c
	}

	return cmp.Compare(s.ZIndex(), other.ZIndex())
}

// Points returns a snapshot of the stored points in insertion order.
func (s *Simple) Points() []*chart.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*chart.Point, len(s.points))
	copy(out, s.points)

	return out
}

// String returns the label, or a placeholder for unnamed traces.
func (s *Simple) String() string {
	if label := s.Label(); label != "" {
		return label
	}

	return fmt.Sprintf("trace(%d points)", s.Size())
}
