package chart

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Range is a closed interval [Min, Max] over float64.
//
// The zero value is the degenerate interval [0, 0]. Use Unbounded for a
// range that accepts every finite value.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// NewRange returns the closed interval spanning a and b, normalizing
// endpoint order so that Min <= Max.
func NewRange(a, b float64) Range {
	if a > b {
		a, b = b, a
	}

	return Range{Min: a, Max: b}
}

// Unbounded returns the explicit unconstrained range (-Inf, +Inf endpoints).
// Containment over infinite endpoints accepts every finite float64 without
// relying on MaxFloat64 magnitude constants.
func Unbounded() Range {
	return Range{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Contains reports whether Min <= v <= Max. NaN is never contained.
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Valid reports whether the range is a usable interval: no NaN endpoint
// and Min <= Max. Range setters reject invalid ranges with ErrInvalidRange.
func (r Range) Valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) && r.Min <= r.Max
}

// IsUnbounded reports whether the range is the unconstrained sentinel.
func (r Range) IsUnbounded() bool {
	return math.IsInf(r.Min, -1) && math.IsInf(r.Max, 1)
}

// Extent returns Max - Min.
func (r Range) Extent() float64 {
	return r.Max - r.Min
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// MarshalYAML encodes the range as a {min, max} mapping.
func (r Range) MarshalYAML() (interface{}, error) {
	type plain Range

	return plain(r), nil
}

// UnmarshalYAML decodes a {min, max} mapping and rejects intervals that
// would never be accepted by a range setter.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	type plain Range
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	if !Range(p).Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRange, Range(p))
	}
	*r = Range(p)

	return nil
}
