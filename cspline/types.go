package cspline

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/smoothplot/smoothplot"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Default parameters for curve fitting. All of them may be overridden per
// curve through the builder.
const (
	// DefaultTension damps the cardinal tangent vector's magnitude.
	DefaultTension = 0.35
	// DefaultThreshold is the slope-ratio limit beyond which the cardinal
	// tangent is replaced by a flattened (horizontal) tangent.
	DefaultThreshold = 3.0
	// DefaultStep is the sampling step for flattening a segment.
	DefaultStep = 0.01
)

// Fraction of the chord toward the only neighbour at which the single
// control point of a terminal joint is placed.
const endpointFraction = 0.3

var (
	// ErrNilCurve indicates a nil curve pointer.
	ErrNilCurve = errors.New("curve must not be nil")
	// ErrTooFewJoints indicates joint count is insufficient for fitting.
	ErrTooFewJoints = errors.New("curve has too few joints")
)

// Curve is the concrete type for building and fitting smooth curves.
// To construct a curve, start with NullCurve(), which creates an empty
// curve, and then extend it.
type Curve struct {
	joints    []smoothplot.Pair // joint i, the curve passes through each
	tension   float64           // cardinal tension, uniform over the curve
	threshold float64           // slope-ratio limit for the overshoot guard
	Controls  *Controls         // control points to be calculated
}

// Controls collects calculated spline control points.
type Controls struct {
	prec  []smoothplot.Pair // control point i-, to be calculated
	postc []smoothplot.Pair // control point i+, to be calculated
}
