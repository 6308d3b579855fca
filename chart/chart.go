// Package chart assembles a smooth percentile/quartile curve chart as an
// ordered list of immutable draw commands: a frame, horizontal reference
// lines with labels, an optional area fill, and the curve polyline itself.
// Geometry computation is fully decoupled from any rendering side effect;
// a Surface implementation consumes the commands.
package chart

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
	"github.com/smoothplot/smoothplot"
	"github.com/smoothplot/smoothplot/cspline"
)

// tracer writes to trace with key 'chart'
func tracer() tracing.Trace {
	return tracing.Select("chart")
}

var (
	// ErrNoSurface indicates a missing rendering surface.
	ErrNoSurface = errors.New("no rendering surface")
	// ErrTooFewValues indicates the series is too short to plot a curve.
	ErrTooFewValues = errors.New("chart needs at least 2 values")
)

// Config holds the chart's geometry and fitting parameters.
type Config struct {
	Pad            float64 // inner padding, one margin on every side
	ViewportHeight float64 // total canvas height
	XStep          float64 // horizontal distance between consecutive values
	Step           float64 // sample step per curve segment
	Tension        float64 // cardinal tension, see package cspline
	Threshold      float64 // slope-ratio threshold, see package cspline
	Fill           bool    // shade the area under the curve
}

// DefaultConfig returns the standard chart geometry: a 120 units high
// viewport with a padding of 10.
func DefaultConfig() Config {
	return Config{
		Pad:            10,
		ViewportHeight: 120,
		XStep:          30,
		Step:           cspline.DefaultStep,
		Tension:        cspline.DefaultTension,
		Threshold:      cspline.DefaultThreshold,
	}
}

// canvasHeight is the y-coordinate of the domain baseline in canvas space:
// viewport height minus one margin.
func (cfg Config) canvasHeight() float64 {
	return cfg.ViewportHeight - cfg.Pad
}

// width of the canvas for a series of n values.
func (cfg Config) width(n int) float64 {
	return float64(n-1)*cfg.XStep + 2*cfg.Pad
}

// Mapper converts a domain point into canvas space: padding plus vertical
// flip, x' = x + pad, y' = height - y.
type Mapper struct {
	at smoothplot.AT
}

// NewMapper builds a mapper for the given padding and canvas height.
func NewMapper(pad, height float64) Mapper {
	at := smoothplot.Scaling(1, -1).Combine(smoothplot.Translation(smoothplot.P(pad, height)))
	return Mapper{at: at}
}

// Map transforms one domain point. Pure, no failure modes.
func (m Mapper) Map(p smoothplot.Pair) smoothplot.Pair {
	return m.at.Transform(p)
}

// Chart plots an ordered series of values, each conventionally in [0,1]
// and scaled by 100 before mapping, as a smooth curve with horizontal
// reference lines. All geometry is computed fresh per Commands call;
// nothing is cached.
type Chart struct {
	values []float64
	refs   *treemap.Map // reference value -> label, emitted in ascending order
	cfg    Config
}

// New creates a chart over a value series.
func New(cfg Config, values ...float64) *Chart {
	return &Chart{
		values: values,
		refs:   treemap.NewWith(utils.Float64Comparator),
		cfg:    cfg,
	}
}

// AddReference registers a labelled horizontal reference line at a domain
// value (same convention as the series values). Re-adding a value
// replaces its label.
func (c *Chart) AddReference(label string, value float64) *Chart {
	c.refs.Put(value, label)
	return c
}

// Commands computes the chart geometry and returns the ordered draw
// command list: frame first, then reference lines with labels in
// ascending value order, then the optional area fill, and the curve
// polyline last.
func (c *Chart) Commands() ([]Cmd, error) {
	n := len(c.values)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewValues, n)
	}
	cfg := c.cfg
	mapper := NewMapper(cfg.Pad, cfg.canvasHeight())
	w := cfg.width(n)
	frame := RectCmd{X: 0, Y: 0, W: w, H: cfg.ViewportHeight}
	cmds := []Cmd{frame}

	it := c.refs.Iterator()
	for it.Next() {
		v := it.Key().(float64)
		label := it.Value().(string)
		y := mapper.Map(smoothplot.P(0, v*100)).Y()
		cmds = append(cmds,
			LineCmd{X1: cfg.Pad, Y1: y, X2: w - cfg.Pad, Y2: y},
			TextCmd{X: cfg.Pad, Y: y - 2, S: label})
	}

	curve := cspline.NullCurve().Tension(cfg.Tension).Threshold(cfg.Threshold)
	for i, v := range c.values {
		curve = curve.Joint(mapper.Map(smoothplot.P(float64(i)*cfg.XStep, v*100)))
	}
	curve = curve.End()
	pts, err := cspline.Polyline(curve, cfg.Step)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("curve flattened into %d points", len(pts))

	if cfg.Fill {
		cmds = append(cmds, areaCommands(pts, frame, cfg.canvasHeight())...)
	}
	cmds = append(cmds, PolylineCmd{Points: EncodePoints(pts)})
	return cmds, nil
}

// Render computes the command list and walks it into a surface.
// It fails with ErrNoSurface before any geometry is computed when no
// render target exists.
func (c *Chart) Render(s Surface) error {
	if s == nil {
		return ErrNoSurface
	}
	cmds, err := c.Commands()
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		cmd.draw(s)
	}
	return nil
}
