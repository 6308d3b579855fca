package cspline

import (
	"math/cmplx"

	"github.com/smoothplot/smoothplot"
)

// SetPreControl stores the incoming control point of joint i.
func (ctrls *Controls) SetPreControl(i int, c smoothplot.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, smoothplot.Pair(cmplx.NaN()))
	ctrls.prec[i] = c
}

// SetPostControl stores the outgoing control point of joint i.
func (ctrls *Controls) SetPostControl(i int, c smoothplot.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, smoothplot.Pair(cmplx.NaN()))
	ctrls.postc[i] = c
}

// PreControl returns the incoming control point of joint i, NaN if unset.
func (ctrls *Controls) PreControl(i int) smoothplot.Pair {
	return getC(ctrls.prec, i, smoothplot.Pair(cmplx.NaN()))
}

// PostControl returns the outgoing control point of joint i, NaN if unset.
func (ctrls *Controls) PostControl(i int) smoothplot.Pair {
	return getC(ctrls.postc, i, smoothplot.Pair(cmplx.NaN()))
}
