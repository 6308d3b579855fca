package cspline

import (
	"math"

	"github.com/smoothplot/smoothplot"
)

// SampleSegment evaluates one cubic Bézier segment from a to b with
// control points c1 and c2 into a dense polyline. Evaluation uses the
// closed-form cubic Bernstein polynomial
//
//	B(t) = (1-t)³a + 3t(1-t)²c1 + 3t²(1-t)c2 + t³b
//
// at round(1/step)+1 parameter values. The loop runs over a fixed sample
// count instead of accumulating t, and the terminal sample is forced to
// t=1, so the first sample equals a and the last equals b exactly.
// A step outside (0,1] falls back to DefaultStep.
func SampleSegment(a, c1, c2, b smoothplot.Pair, step float64) []smoothplot.Pair {
	if step <= 0 || step > 1 {
		step = DefaultStep
	}
	n := int(math.Round(1 / step))
	pts := make([]smoothplot.Pair, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) * step
		if i == n {
			t = 1
		}
		pts = append(pts, bernstein(a, c1, c2, b, t))
	}
	return pts
}

func bernstein(a, c1, c2, b smoothplot.Pair, t float64) smoothplot.Pair {
	u := 1 - t
	w0 := smoothplot.P(u*u*u, 0)
	w1 := smoothplot.P(3*t*u*u, 0)
	w2 := smoothplot.P(3*t*t*u, 0)
	w3 := smoothplot.P(t*t*t, 0)
	return w0*a + w1*c1 + w2*c2 + w3*b
}
