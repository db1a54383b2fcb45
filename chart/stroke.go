package chart

// Join defines the connection between two segments of a stroked trace line.
type Join int

const (
	// A straight line connecting the segments.
	BevelJoin Join = iota
	// The segments are extended to their natural intersection point.
	MiterJoin
	// An arc between the segments.
	RoundJoin
)

// Cap defines the shape drawn at the ends of a stroked trace line.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap with dimensions equal to half the stroke width.
	SquareCap
	// Rounded cap with radius equal to half the stroke width.
	RoundCap
)

// Stroke describes the visual style of a trace line. It is a plain value
// carried by the trace for its painters; this package never draws it.
type Stroke struct {
	// Width of the stroke.
	Width float64
	// Style for connecting segments of the stroke.
	Join Join
	// Limit for miter joins.
	MiterLimit float64
	// Style for capping both ends of the line.
	LineCap Cap
	// Lengths of dashes in alternating on/off order.
	DashPattern []float64
	// Offset of the first dash.
	DashOffset float64
}

// DefaultStroke is the style a trace starts with.
var DefaultStroke = Stroke{
	Width:      1.0,
	Join:       MiterJoin,
	MiterLimit: 4.0,
	LineCap:    ButtCap,
}
