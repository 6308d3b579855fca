package chart

import (
	"github.com/akavel/polyclip-go"
	"github.com/smoothplot/smoothplot"
)

// areaCommands shades the area under the sampled curve: the polyline is
// closed down to the baseline and the resulting polygon intersected with
// the frame rectangle, so overshooting segments never paint outside the
// chart. Clipping may split the area into several contours; each becomes
// its own polygon command.
func areaCommands(pts []smoothplot.Pair, frame RectCmd, baseline float64) []Cmd {
	if len(pts) < 2 {
		return nil
	}
	contour := make(polyclip.Contour, 0, len(pts)+2)
	for _, p := range pts {
		contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	contour.Add(polyclip.Point{X: pts[len(pts)-1].X(), Y: baseline})
	contour.Add(polyclip.Point{X: pts[0].X(), Y: baseline})
	subject := polyclip.Polygon{contour}

	clip := polyclip.Polygon{{
		{X: frame.X, Y: frame.Y},
		{X: frame.X + frame.W, Y: frame.Y},
		{X: frame.X + frame.W, Y: frame.Y + frame.H},
		{X: frame.X, Y: frame.Y + frame.H},
	}}

	area := subject.Construct(polyclip.INTERSECTION, clip)
	var cmds []Cmd
	for _, c := range area {
		ring := make([]smoothplot.Pair, len(c))
		for i, pt := range c {
			ring[i] = smoothplot.P(pt.X, pt.Y)
		}
		cmds = append(cmds, PolygonCmd{Points: EncodePoints(ring)})
	}
	return cmds
}
