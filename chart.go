package chart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	svg "github.com/ajstarks/svgo"
	"github.com/vdobler/facet/chart/data"
)

// ----------------------------------------------------------------------------
// State

// State is the lifecycle state of a Chart.
type State int

const (
	// StateLoading is the state until records arrived.
	StateLoading State = iota
	// StateReady charts have valid scales and can be drawn.
	StateReady
	// StateError charts failed to load or to build their scales.
	StateError
)

func (s State) String() string {
	return []string{"loading", "ready", "error"}[int(s)]
}

// ----------------------------------------------------------------------------
// Dim

// Dim configures the scale and axis of one direction of a chart.
type Dim struct {
	Title     string
	ScaleType ScaleType

	// Value reads linear and time values, Category the band categories.
	Value    data.Accessor
	Category data.CategoryAccessor

	// Nice rounds the domain to about Ticks ticks.
	Nice  bool
	Ticks int

	// Padding is the band padding.
	Padding     float64
	IncludeZero bool
	Round       bool
	TimeFmt     string

	// LabelOffset is the distance of the axis title from the axis.
	LabelOffset float64
	// Rotate rotates the tick labels.
	Rotate float64
}

// scale builds the scale of d over records mapping to rng.
func (d Dim) scale(records []data.Record, rng Interval) (*Scale, error) {
	var s *Scale
	switch d.ScaleType {
	case Band:
		if d.Category == nil {
			return nil, fmt.Errorf("scale %q: band scale without category accessor", d.Title)
		}
		s = BandScale(records, d.Category, rng, d.Padding)
	case Time:
		if d.Value == nil {
			return nil, fmt.Errorf("scale %q: no accessor", d.Title)
		}
		s = TimeScale(records, d.Value, rng)
		s.TimeFmt = d.TimeFmt
	default:
		if d.Value == nil {
			return nil, fmt.Errorf("scale %q: no accessor", d.Title)
		}
		s = LinearScale(records, d.Value, rng)
	}
	s.Title = d.Title
	if err := s.Valid(); err != nil {
		return nil, err
	}
	if d.IncludeZero {
		s.Include(0)
	}
	if d.Nice {
		s.Nice(d.Ticks)
	}
	s.Rounded = d.Round
	return s, nil
}

// ----------------------------------------------------------------------------
// Chart

// ColorFunc builds the color scale of a chart from its records. It may
// return a usable scale together with an *UnknownCategoryError.
type ColorFunc func(records []data.Record) (*ColorScale, error)

// Chart composes scales, axes and geoms into one SVG chart.
//
// A chart starts in StateLoading. Loading records and building the scales
// moves it to StateReady, any failure to StateError. Only ready charts are
// drawn, the other states render a placeholder with a message.
type Chart struct {
	Name  string
	Title string

	Sizing Sizing
	Resize ResizePolicy

	X, Y  Dim
	Color ColorFunc
	Geoms []Geom
	Style Style

	Logger *slog.Logger

	mu      sync.Mutex
	state   State
	err     error
	records []data.Record
	vp      Viewport
	dims    Dimensions
	xs, ys  *Scale
	cs      *ColorScale
	xAxis   *Axis
	yAxis   *Axis
	dropped []error

	mount  int
	cancel context.CancelFunc
	done   chan struct{}
}

func (c *Chart) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Load loads the records of c from src and builds the scales for the
// viewport vp. It returns the error which put c into StateError. A pending
// Mount is unmounted first; a load overtaken by a later Load or Mount is
// discarded.
func (c *Chart) Load(ctx context.Context, src data.Source, vp Viewport) error {
	c.Unmount()

	c.mu.Lock()
	c.mount++
	mount := c.mount
	c.state, c.err, c.vp = StateLoading, nil, vp
	c.mu.Unlock()

	records, err := src.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if mount != c.mount {
		c.logger().Debug("discarding stale load", "chart", c.Name)
		return nil
	}
	if err != nil {
		c.records = nil
		c.fail(err)
		return err
	}
	return c.setRecords(records)
}

// Mount starts loading the records of c from src in the background. The
// load is canceled by Unmount or by canceling ctx. A previous mount is
// unmounted first.
func (c *Chart) Mount(ctx context.Context, src data.Source, vp Viewport) {
	c.Unmount()

	c.mu.Lock()
	defer c.mu.Unlock()
	ctx, cancel := context.WithCancel(ctx)
	c.mount++
	mount, done := c.mount, make(chan struct{})
	c.state, c.err, c.vp = StateLoading, nil, vp
	c.cancel, c.done = cancel, done

	go func() {
		defer close(done)
		records, err := src.Load(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		if mount != c.mount {
			c.logger().Debug("discarding stale load", "chart", c.Name)
			return
		}
		if err != nil {
			c.records = nil
			c.fail(err)
			return
		}
		c.setRecords(records)
	}()
}

// Wait blocks until the load started by Mount finished.
func (c *Chart) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Unmount cancels a running load and waits for it. Its result is
// discarded.
func (c *Chart) Unmount() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mount++
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// SetRecords replaces the records of c and rebuilds its scales.
func (c *Chart) SetRecords(records []data.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setRecords(records)
}

func (c *Chart) setRecords(records []data.Record) error {
	c.records = records
	if err := c.layout(); err != nil {
		c.fail(err)
		return err
	}
	c.state, c.err = StateReady, nil
	return nil
}

func (c *Chart) fail(err error) {
	c.state, c.err = StateError, err
	c.logger().Error("chart failed", "chart", c.Name, "err", err)
}

// layout computes dimensions and builds all scales. Nothing of c changes
// if this fails.
func (c *Chart) layout() error {
	dims := c.Sizing.Dimensions(c.vp)
	if err := dims.Validate(); err != nil {
		return err
	}
	xs, err := c.X.scale(c.records, dims.XRange())
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	ys, err := c.Y.scale(c.records, dims.YRange())
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}
	var cs *ColorScale
	if c.Color != nil {
		cs, err = c.Color(c.records)
		var uce *UnknownCategoryError
		switch {
		case errors.As(err, &uce) && cs != nil:
			c.logger().Warn("using fallback color", "chart", c.Name, "err", err)
		case err != nil:
			return fmt.Errorf("color: %w", err)
		}
	}

	c.dims, c.xs, c.ys, c.cs = dims, xs, ys, cs
	if c.xAxis == nil {
		c.xAxis = &Axis{Orientation: OrientBottom}
		c.yAxis = &Axis{Orientation: OrientLeft}
	}
	c.xAxis.Scale, c.xAxis.Ticks, c.xAxis.Label = xs, c.X.Ticks, c.X.Title
	c.xAxis.LabelOffset, c.xAxis.Rotate = c.X.LabelOffset, c.X.Rotate
	c.yAxis.Scale, c.yAxis.Ticks, c.yAxis.Label = ys, c.Y.Ticks, c.Y.Title
	c.yAxis.LabelOffset, c.yAxis.Rotate = c.Y.LabelOffset, c.Y.Rotate
	return nil
}

// SetViewport changes the viewport of c. Only Reactive charts recompute
// their dimensions and scales; the returned bool reports whether they did.
// A chart whose records loaded but whose layout failed, e.g. on a viewport
// too small for its margins, becomes ready again once the layout succeeds.
func (c *Chart) SetViewport(vp Viewport) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Resize != Reactive || vp == c.vp {
		return false, nil
	}
	c.vp = vp
	switch {
	case c.state == StateReady:
		d := c.Sizing.Dimensions(vp)
		if d.XRange().Equal(c.xs.Range) && d.YRange().Equal(c.ys.Range) {
			return false, nil
		}
	case c.state == StateError && c.records != nil:
	default:
		return false, nil
	}
	if err := c.layout(); err != nil {
		c.fail(err)
		return false, err
	}
	c.state, c.err = StateReady, nil
	return true, nil
}

// State returns the current state of c.
func (c *Chart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err is the error which put c into StateError.
func (c *Chart) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Dimensions returns the size of c.
func (c *Chart) Dimensions() Dimensions {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateReady {
		return c.dims
	}
	return c.Sizing.Dimensions(c.vp)
}

// Scales returns the x and y scale of a ready chart.
func (c *Chart) Scales() (x, y *Scale) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.xs, c.ys
}

// Axes returns the axes of a ready chart.
func (c *Chart) Axes() (x, y *Axis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.xAxis, c.yAxis
}

// Dropped returns the errors of the records skipped in the last Render.
func (c *Chart) Dropped() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]error(nil), c.dropped...)
}

// ----------------------------------------------------------------------------
// Rendering

// Render writes c as SVG to w.
func (c *Chart) Render(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	style := c.Style

	switch c.state {
	case StateReady:
		c.draw(canvas, style)
	case StateError:
		c.placeholder(canvas, style, "Error: "+c.err.Error())
	default:
		c.placeholder(canvas, style, "Loading")
	}
	return ew.err
}

func (c *Chart) draw(canvas *svg.SVG, style Style) {
	d := c.dims
	bw, bh := d.BoundedWidth(), d.BoundedHeight()

	canvas.Start(px(d.Width), px(d.Height), fmt.Sprintf(`class="chart chart-%s"`, c.Name))
	if c.Title != "" {
		canvas.Title(c.Title)
	}
	if style.Background != nil {
		canvas.Rect(0, 0, px(d.Width), px(d.Height), FillCSS(style.Background))
	}
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", px(d.Margin.Left), px(d.Margin.Top)))
	if style.Panel.Background != nil {
		canvas.Rect(0, 0, px(bw), px(bh), FillCSS(style.Panel.Background))
	}

	canvas.Gtransform(fmt.Sprintf("translate(0,%d)", px(bh)))
	if err := c.xAxis.Render(canvas, bw, style); err != nil {
		c.logger().Error("x axis", "chart", c.Name, "err", err)
	}
	canvas.Gend()
	if err := c.yAxis.Render(canvas, bh, style); err != nil {
		c.logger().Error("y axis", "chart", c.Name, "err", err)
	}

	panel := &Panel{
		Records: c.records,
		Dims:    d,
		X:       c.xs,
		Y:       c.ys,
		XDim:    c.X,
		YDim:    c.Y,
		Color:   c.cs,
		Canvas:  canvas,
		Style:   style,
	}
	canvas.Group(`class="marks"`)
	for _, g := range c.Geoms {
		g.Draw(panel)
	}
	canvas.Gend()

	canvas.Gend()
	canvas.End()

	c.dropped = panel.Dropped()
	if len(c.dropped) > 0 {
		c.logger().Info("skipped records", "chart", c.Name, "dropped", len(c.dropped),
			"err", c.dropped[0])
	}
}

func (c *Chart) placeholder(canvas *svg.SVG, style Style, msg string) {
	d := c.Sizing.Dimensions(c.vp)
	canvas.Start(px(d.Width), px(d.Height), fmt.Sprintf(`class="chart chart-%s chart-%s"`, c.Name, c.state))
	if style.Background != nil {
		canvas.Rect(0, 0, px(d.Width), px(d.Height), FillCSS(style.Background))
	}
	canvas.Text(px(d.Width/2), px(d.Height/2), msg, TextCSS(style.Message, style.FontFamily))
	canvas.End()
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
