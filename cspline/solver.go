package cspline

import (
	"fmt"
	"math"

	"github.com/smoothplot/smoothplot"
)

// ControlsAt derives the pair of control points attached to the interior
// joint targ, sitting between its neighbours v0 (preceding) and v1
// (following).
//
// The outgoing candidate is the cardinal control targ + (v1-v0)·tension/3;
// the incoming candidate is its point reflection through targ. Each
// neighbour is then checked for overshoot: when the slope ratio
// |Δy|/|Δx| toward a neighbour exceeds the threshold, the control point on
// that side is flattened to the joint's y (placed at the neighbour's x) and
// the opposite control recomputed by reflection. The v0 check runs first;
// a triggering v1 check supersedes it. A vertical chord gives an infinite
// ratio and always trips the guard; a zero-length chord gives a NaN ratio
// and never does.
//
// ControlsAt is total: it never fails for finite coordinates.
func ControlsAt(v0, v1, targ smoothplot.Pair, tension, threshold float64) (pre, post smoothplot.Pair) {
	d := (v1 - v0) * smoothplot.P(tension/3, 0)
	post = targ + d
	pre = smoothplot.Reflect(post, targ)
	r0 := math.Abs(v0.Y()-targ.Y()) / math.Abs(v0.X()-targ.X())
	if r0 > threshold {
		tracer().Debugf("slope ratio %.4g toward v0 exceeds %g, squaring tangent", r0, threshold)
		pre = smoothplot.P(v0.X(), targ.Y())
		post = smoothplot.Reflect(pre, targ)
	}
	r1 := math.Abs(v1.Y()-targ.Y()) / math.Abs(v1.X()-targ.X())
	if r1 > threshold {
		tracer().Debugf("slope ratio %.4g toward v1 exceeds %g, squaring tangent", r1, threshold)
		post = smoothplot.P(v1.X(), targ.Y())
		pre = smoothplot.Reflect(post, targ)
	}
	return pre, post
}

// FindCurveControls finds the spline control points for a given skeleton
// curve. This is the central API function of this package.
//
// Clients may provide a container for the spline control points. If none
// is provided, i.e. controls == nil, this function will allocate one.
//
// Terminal joints get a single control point on their inner side, placed
// by linear interpolation toward the only neighbour. Interior joints get
// a pair of control points from ControlsAt. The curve's coordinates are
// never validated numerically: degenerate joints (duplicates, NaN) degrade
// into degenerate geometry rather than raising an error. Only structural
// misuse is rejected: a nil curve or fewer than 2 joints.
//
// FindCurveControls will trace the calculated final curve using log-level
// INFO.
func FindCurveControls(curve *Curve, controls *Controls) (*Controls, error) {
	if curve == nil {
		return nil, ErrNilCurve
	}
	n := curve.N()
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 joints, got %d", ErrTooFewJoints, n)
	}
	if controls == nil {
		controls = &Controls{}
	}
	controls.SetPostControl(0, smoothplot.Lerp(curve.Z(0), curve.Z(1), endpointFraction))
	controls.SetPreControl(n-1, smoothplot.Lerp(curve.Z(n-1), curve.Z(n-2), endpointFraction))
	for i := 1; i < n-1; i++ {
		pre, post := ControlsAt(curve.Z(i-1), curve.Z(i+1), curve.Z(i), curve.tension, curve.threshold)
		controls.SetPreControl(i, pre)
		controls.SetPostControl(i, post)
	}
	tracer().Infof(AsString(curve, controls))
	return controls, nil
}

// MustFindCurveControls is a compatibility helper which panics on
// structural errors.
func MustFindCurveControls(curve *Curve, controls *Controls) *Controls {
	c, err := FindCurveControls(curve, controls)
	if err != nil {
		panic(err)
	}
	return c
}

// Polyline fits the curve and flattens it into one connected polyline:
// control points are calculated into curve.Controls, then every segment
// between adjacent joints is sampled with the given step and the samples
// concatenated in order. The polyline passes through every joint exactly.
func Polyline(curve *Curve, step float64) ([]smoothplot.Pair, error) {
	controls, err := FindCurveControls(curve, curve.Controls)
	if err != nil {
		return nil, err
	}
	var pts []smoothplot.Pair
	for i := 0; i < curve.N()-1; i++ {
		seg := SampleSegment(curve.Z(i), controls.PostControl(i),
			controls.PreControl(i+1), curve.Z(i+1), step)
		pts = append(pts, seg...)
	}
	return pts, nil
}
