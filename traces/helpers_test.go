package traces_test

import (
	"sync"

	"github.com/plotkit/chart2d/chart"
)

// recorder collects every event it receives.
type recorder struct {
	mu     sync.Mutex
	events []chart.PropertyChangeEvent
}

func (r *recorder) PropertyChange(ev chart.PropertyChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) snapshot() []chart.PropertyChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]chart.PropertyChangeEvent, len(r.events))
	copy(out, r.events)

	return out
}

// stubPainter is an identity-distinct chart.Painter.
type stubPainter struct{ painted int }

func (p *stubPainter) PaintTrace(chart.Trace) { p.painted++ }

// stubHighlighter is an identity-distinct chart.PointPainter. The field
// keeps the struct non-zero-sized so distinct allocations compare unequal.
type stubHighlighter struct{ painted int }

func (h *stubHighlighter) PaintPoint(*chart.Point) { h.painted++ }

// stubPolicy is a chart.ErrorBarPolicy with configurable visibility.
type stubPolicy struct {
	posX, negX, posY, negY bool
}

func (p *stubPolicy) ShowsPositiveXErrors() bool { return p.posX }
func (p *stubPolicy) ShowsNegativeXErrors() bool { return p.negX }
func (p *stubPolicy) ShowsPositiveYErrors() bool { return p.posY }
func (p *stubPolicy) ShowsNegativeYErrors() bool { return p.negY }
func (p *stubPolicy) Paint(*chart.Point)         {}

// stubRenderer hands out a provider that tags points so tests can verify
// which factory built them.
type stubRenderer struct {
	provider chart.PointProvider
}

func (r *stubRenderer) PointProvider() chart.PointProvider { return r.provider }
