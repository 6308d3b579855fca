package chart

import (
	"fmt"
	"strings"

	"github.com/smoothplot/smoothplot"
)

// Surface is the rendering collaborator consuming draw commands. The
// chart itself never draws; it hands an ordered list of commands to a
// surface (an SVG writer, a terminal canvas, a test recorder, ...).
type Surface interface {
	Rect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	Text(x, y float64, s string)
	Polyline(points string)
	Polygon(points string)
}

// Cmd is a single immutable draw command.
type Cmd interface {
	draw(s Surface)
}

// RectCmd draws an axis-aligned rectangle outline (the chart frame).
type RectCmd struct {
	X, Y, W, H float64
}

// LineCmd draws a straight line (reference lines / gridlines).
type LineCmd struct {
	X1, Y1, X2, Y2 float64
}

// TextCmd places a text label with its anchor at (X,Y).
type TextCmd struct {
	X, Y float64
	S    string
}

// PolylineCmd draws one connected path through the encoded points.
type PolylineCmd struct {
	Points string
}

// PolygonCmd fills one closed polygon through the encoded points.
type PolygonCmd struct {
	Points string
}

func (c RectCmd) draw(s Surface)     { s.Rect(c.X, c.Y, c.W, c.H) }
func (c LineCmd) draw(s Surface)     { s.Line(c.X1, c.Y1, c.X2, c.Y2) }
func (c TextCmd) draw(s Surface)     { s.Text(c.X, c.Y, c.S) }
func (c PolylineCmd) draw(s Surface) { s.Polyline(c.Points) }
func (c PolygonCmd) draw(s Surface)  { s.Polygon(c.Points) }

// EncodePoints serializes canvas-space points into the wire format handed
// to the surface: whitespace-separated "x.xx,y.yy" pairs, 2 decimal digits.
func EncodePoints(pts []smoothplot.Pair) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.2f,%.2f", p.X(), p.Y())
	}
	return sb.String()
}
