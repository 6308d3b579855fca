package chart

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/smoothplot/smoothplot"
	"github.com/stretchr/testify/assert"
)

// recorder is a Surface capturing the draw calls in order.
type recorder struct {
	calls []string
}

func (r *recorder) Rect(x, y, w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("rect %g %g %g %g", x, y, w, h))
}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %g %g %g %g", x1, y1, x2, y2))
}

func (r *recorder) Text(x, y float64, s string) {
	r.calls = append(r.calls, fmt.Sprintf("text %g %g %s", x, y, s))
}

func (r *recorder) Polyline(points string) {
	r.calls = append(r.calls, "polyline "+points)
}

func (r *recorder) Polygon(points string) {
	r.calls = append(r.calls, "polygon "+points)
}

func TestMapper(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := NewMapper(10, 110)
	q := m.Map(smoothplot.P(0, 0))
	if q != smoothplot.P(10, 110) {
		t.Fatalf("expected origin to map to (10,110), got %v", q)
	}
	if got := EncodePoints([]smoothplot.Pair{q}); got != "10.00,110.00" {
		t.Fatalf("unexpected serialization: %q", got)
	}
	q = m.Map(smoothplot.P(30, 25))
	if q != smoothplot.P(40, 85) {
		t.Fatalf("expected (30,25) to map to (40,85), got %v", q)
	}
}

func TestEncodePoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []smoothplot.Pair{smoothplot.P(10, 110), smoothplot.P(12.3456, 7)}
	if got, want := EncodePoints(pts), "10.00,110.00 12.35,7.00"; got != want {
		t.Fatalf("unexpected serialization:\n got: %s\nwant: %s", got, want)
	}
	if EncodePoints(nil) != "" {
		t.Fatal("expected empty serialization for no points")
	}
}

func TestCommandsOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(DefaultConfig(), 0.1, 0.9, 0.4)
	c.AddReference("Q3", 0.75).AddReference("Q1", 0.25).AddReference("median", 0.5)
	cmds, err := c.Commands()
	assert.NoError(t, err)
	// frame, 3 reference lines with labels, curve polyline
	assert.Len(t, cmds, 1+3*2+1)
	if _, ok := cmds[0].(RectCmd); !ok {
		t.Fatalf("expected frame rect first, got %T", cmds[0])
	}
	if _, ok := cmds[len(cmds)-1].(PolylineCmd); !ok {
		t.Fatalf("expected curve polyline last, got %T", cmds[len(cmds)-1])
	}
	// reference lines in ascending value order
	labels := []string{}
	for _, cmd := range cmds {
		if txt, ok := cmd.(TextCmd); ok {
			labels = append(labels, txt.S)
		}
	}
	assert.Equal(t, []string{"Q1", "median", "Q3"}, labels)
	q1 := cmds[1].(LineCmd)
	assert.InDelta(t, 85.0, q1.Y1, 1e-9) // 110 - 0.25*100
	assert.Equal(t, q1.Y1, q1.Y2)
}

func TestCommandsFrameGeometry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(DefaultConfig(), 0, 0.5, 1, 0.5)
	cmds, err := c.Commands()
	assert.NoError(t, err)
	frame := cmds[0].(RectCmd)
	// 4 values, xstep 30, pad 10 on both sides
	assert.Equal(t, RectCmd{X: 0, Y: 0, W: 3*30 + 20, H: 120}, frame)
}

func TestCommandsTooFewValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := New(DefaultConfig(), 0.5).Commands()
	if !errors.Is(err, ErrTooFewValues) {
		t.Fatalf("expected ErrTooFewValues, got %v", err)
	}
}

func TestCurvePassesThroughMappedValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(DefaultConfig(), 0, 0.5)
	cmds, err := c.Commands()
	assert.NoError(t, err)
	poly := cmds[len(cmds)-1].(PolylineCmd)
	// value 0 at x=0 maps to (10,110); value 0.5 at x=30 maps to (40,60)
	if !strings.HasPrefix(poly.Points, "10.00,110.00 ") {
		t.Fatalf("polyline does not start at first mapped joint: %.40q...", poly.Points)
	}
	if !strings.HasSuffix(poly.Points, " 40.00,60.00") {
		t.Fatalf("polyline does not end at last mapped joint: ...%q", poly.Points[len(poly.Points)-16:])
	}
}

func TestRenderNilSurface(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(DefaultConfig(), 0.1, 0.2)
	if err := c.Render(nil); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("expected ErrNoSurface, got %v", err)
	}
}

func TestRenderWalksCommands(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(DefaultConfig(), 0.1, 0.9, 0.4)
	c.AddReference("median", 0.5)
	rec := &recorder{}
	assert.NoError(t, c.Render(rec))
	assert.Len(t, rec.calls, 4)
	assert.True(t, strings.HasPrefix(rec.calls[0], "rect "), "first call: %s", rec.calls[0])
	assert.True(t, strings.HasPrefix(rec.calls[1], "line "), "second call: %s", rec.calls[1])
	assert.True(t, strings.HasPrefix(rec.calls[2], "text "), "third call: %s", rec.calls[2])
	assert.True(t, strings.HasPrefix(rec.calls[3], "polyline "), "fourth call: %s", rec.calls[3])
}

func TestRenderRecomputesFreshGeometry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(DefaultConfig(), 0.1, 0.9, 0.4)
	first, err := c.Commands()
	assert.NoError(t, err)
	second, err := c.Commands()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSVGSurface(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(DefaultConfig(), 0.25, 0.5, 0.75)
	c.AddReference("median", 0.5)
	var buf bytes.Buffer
	svg := NewSVG(&buf, c.cfg.width(3), c.cfg.ViewportHeight)
	assert.NoError(t, c.Render(svg))
	assert.NoError(t, svg.Close())
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "), "missing svg header")
	assert.Contains(t, out, "<rect ")
	assert.Contains(t, out, "<line ")
	assert.Contains(t, out, ">median</text>")
	assert.Contains(t, out, `<polyline points="10.00,`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"), "missing svg trailer")
}
