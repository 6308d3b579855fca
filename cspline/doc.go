// Package cspline fits a smooth piecewise cubic Bézier curve through an
// ordered sequence of joints, as used for plotting percentile or quartile
// series.
/*

The interpolation scheme is a cardinal/square hybrid: at every interior
joint the tangent is the cardinal-spline tangent (the chord between the two
neighbours, damped by a tension factor), mirrored by point reflection into
a pair of control points. Whenever a neighbour sits far away in y but close
in x, a cardinal tangent would overshoot the joint badly; in that case the
tangent is flattened to horizontal ("square" tangent). The slope-ratio
threshold decides which of the two regimes applies, separately for each
neighbour:

	ratio = |neighbour.y - joint.y| / |neighbour.x - joint.x|

The checks run in a fixed order: first toward the preceding neighbour,
then toward the following one; when both trip, the second one wins. This
ordering is part of the contract. A vertical chord yields an infinite
ratio, forcing the square regime; coincident joints yield a NaN ratio,
which keeps the cardinal candidate. Neither case is an error: the fitting
functions are total over finite coordinates.

The first and last joint of the sequence have only one neighbour and get a
single control point, placed 30% of the way toward that neighbour.

Usage

Clients build a skeleton curve with a builder, have the control points
calculated, and flatten the result into a polyline:

	curve := cspline.NullCurve().Joint(smoothplot.P(0, 0)).
		Joint(smoothplot.P(10, 10)).
		Joint(smoothplot.P(20, 0)).End()
	pts, err := cspline.Polyline(curve, cspline.DefaultStep)

The polyline passes through every joint exactly. Tangent continuity across
a joint holds only when neither slope-ratio check fires; the overshoot
guard deliberately trades smoothness for boundedness.
*/
package cspline
