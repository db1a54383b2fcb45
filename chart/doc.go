// Package chart defines the trace abstraction of chart2d: the Trace
// interface, the Point and Range value types, stroke styling, the
// property-change event model, and the collaborator interfaces a hosting
// chart implements (Painter, PointPainter, ErrorBarPolicy, Renderer).
//
// Nothing in this package renders. A Trace is purely the data side of a
// plotted series; rendering, axis scaling and legend display live in the
// hosting application and reach a trace only through this contract.
//
// Getters return snapshots: value copies for Range and Stroke, fresh slices
// for collections. Callers must not assume a returned value tracks later
// mutation of the trace.
//
// Errors:
//
//	ErrNilTrace     - nil delegate handed to a decorator constructor.
//	ErrNilPoint     - nil point handed to an insertion path.
//	ErrInvalidRange - range with a NaN endpoint or Min > Max.
package chart
