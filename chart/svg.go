package chart

import (
	"fmt"
	"io"
)

// SVG is a Surface writing an SVG document to an io.Writer. It is the
// reference surface implementation; errors from the writer are collected
// and reported by Close.
type SVG struct {
	w   io.Writer
	err error
}

// NewSVG opens an SVG document of the given size. Callers must Close it
// after rendering.
func NewSVG(w io.Writer, width, height float64) *SVG {
	s := &SVG{w: w}
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	return s
}

func (s *SVG) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// Rect draws a rectangle outline.
func (s *SVG) Rect(x, y, w, h float64) {
	s.printf(`<rect x="%g" y="%g" width="%g" height="%g" fill="none" stroke="black"/>`+"\n", x, y, w, h)
}

// Line draws a straight line.
func (s *SVG) Line(x1, y1, x2, y2 float64) {
	s.printf(`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="lightgray"/>`+"\n", x1, y1, x2, y2)
}

// Text places a label.
func (s *SVG) Text(x, y float64, text string) {
	s.printf(`<text x="%g" y="%g" font-size="8">%s</text>`+"\n", x, y, text)
}

// Polyline draws one connected path through pre-encoded points.
func (s *SVG) Polyline(points string) {
	s.printf(`<polyline points="%s" fill="none" stroke="black"/>`+"\n", points)
}

// Polygon fills one closed polygon through pre-encoded points.
func (s *SVG) Polygon(points string) {
	s.printf(`<polygon points="%s" fill="gainsboro" stroke="none"/>`+"\n", points)
}

// Close terminates the document and returns the first write error, if any.
func (s *SVG) Close() error {
	s.printf("</svg>\n")
	return s.err
}
