package cspline

import (
	"github.com/smoothplot/smoothplot"
)

func newSkeletonCurve(joints []smoothplot.Pair) *Curve {
	curve := &Curve{}
	curve.joints = make([]smoothplot.Pair, len(joints), len(joints)*2)
	copy(curve.joints, joints)
	curve.tension = DefaultTension
	curve.threshold = DefaultThreshold
	curve.Controls = &Controls{}
	return curve
}

// NullCurve creates an empty curve, to be extended by subsequent builder
// calls. The following example builds an open curve through three joints.
//
//	var curve *Curve
//	curve = NullCurve().Joint(P(0,0)).Joint(P(10,10)).Joint(P(20,0)).End()
//
// Calling End() returns a curve. Its control point container
// (curve.Controls) is empty and to be filled by calculating the spline
// control points.
func NullCurve() *Curve {
	return newSkeletonCurve(nil)
}

// End finishes an open curve. Part of builder functionality.
func (curve *Curve) End() *Curve {
	return curve
}

// Joint adds a joint to a curve. The fitted spline will pass through it
// exactly. Part of builder functionality.
func (curve *Curve) Joint(p smoothplot.Pair) *Curve {
	curve.joints = append(curve.joints, p)
	return curve
}

// Tension overrides the cardinal tension for the whole curve.
// Part of builder functionality.
func (curve *Curve) Tension(t float64) *Curve {
	curve.tension = t
	return curve
}

// Threshold overrides the slope-ratio threshold for the whole curve.
// Part of builder functionality.
func (curve *Curve) Threshold(r float64) *Curve {
	curve.threshold = r
	return curve
}

// N returns the length of this curve (joint count).
func (curve *Curve) N() int {
	return len(curve.joints)
}

// Z returns the joint at position (i mod N).
func (curve *Curve) Z(i int) smoothplot.Pair {
	if i < 0 || i >= curve.N() {
		i = i % curve.N()
	}
	z := curve.joints[i]
	return z
}
