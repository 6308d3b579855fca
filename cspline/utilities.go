package cspline

import (
	"fmt"
	"math/cmplx"

	"github.com/smoothplot/smoothplot"
)

// AsString returns a MetaPost-like textual representation of a curve,
// including its control points if a non-nil container is given. Control
// points not yet calculated print as "(<unknown>)".
func AsString(curve *Curve, contr *Controls) string {
	var s string
	for i := 0; i < curve.N(); i++ {
		pt := curve.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && i < curve.N()-1 {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return s
}

// Extend an array/slice of pairs to make room for index i.
// Will do nothing if the array is already large enough.
func extendC(arr []smoothplot.Pair, i int, deflt smoothplot.Pair) []smoothplot.Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]smoothplot.Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []smoothplot.Pair, i int, deflt smoothplot.Pair) smoothplot.Pair {
	if i >= len(arr) {
		return deflt
	}
	return arr[i]
}

func ptstring(p smoothplot.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
