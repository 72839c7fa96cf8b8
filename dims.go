package chart

import "fmt"

// Margin is the space reserved around the drawing area for axes and labels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Horizontal is the sum of the left and right margin.
func (m Margin) Horizontal() float64 { return m.Left + m.Right }

// Vertical is the sum of the top and bottom margin.
func (m Margin) Vertical() float64 { return m.Top + m.Bottom }

// Dimensions is the pixel size of a chart including its margins.
type Dimensions struct {
	Width, Height float64
	Margin        Margin
}

// BoundedWidth is the width of the drawing area inside the margins.
func (d Dimensions) BoundedWidth() float64 { return d.Width - d.Margin.Horizontal() }

// BoundedHeight is the height of the drawing area inside the margins.
func (d Dimensions) BoundedHeight() float64 { return d.Height - d.Margin.Vertical() }

// Validate reports ErrDegenerateDimensions if the margins leave no
// drawing area.
func (d Dimensions) Validate() error {
	if d.BoundedWidth() <= 0 || d.BoundedHeight() <= 0 {
		return fmt.Errorf("%gx%g with margin %+v: %w", d.Width, d.Height, d.Margin, ErrDegenerateDimensions)
	}
	return nil
}

// XRange is the pixel range of a horizontal scale.
func (d Dimensions) XRange() Interval { return Interval{0, d.BoundedWidth()} }

// YRange is the pixel range of a vertical scale. It is inverted so that
// larger values are drawn higher.
func (d Dimensions) YRange() Interval { return Interval{d.BoundedHeight(), 0} }

// Viewport is the size of the area the chart is displayed in.
type Viewport struct {
	Width, Height float64
}

// DefaultDimensions is the size used when the viewport is unknown.
var DefaultDimensions = Dimensions{Width: 300, Height: 300}

// Sizing derives the chart dimensions from the viewport.
type Sizing struct {
	// Fraction of the viewport used by the chart.
	Fraction float64

	// Square charts use Fraction of the smaller viewport side for both
	// width and height.
	Square bool

	// Height, if positive, fixes the height of non-square charts.
	Height float64

	Margin Margin
}

// Dimensions computes the chart size for vp. A zero or negative viewport
// yields DefaultDimensions with the margins of s.
func (s Sizing) Dimensions(vp Viewport) Dimensions {
	if vp.Width <= 0 || vp.Height <= 0 {
		d := DefaultDimensions
		d.Margin = s.Margin
		return d
	}
	f := s.Fraction
	if f <= 0 || f > 1 {
		f = 1
	}
	if s.Square {
		side := f * min(vp.Width, vp.Height)
		return Dimensions{Width: side, Height: side, Margin: s.Margin}
	}
	d := Dimensions{Width: f * vp.Width, Height: f * vp.Height, Margin: s.Margin}
	if s.Height > 0 {
		d.Height = s.Height
	}
	return d
}

// Sizings of the three chart kinds.
var (
	LineSizing = Sizing{
		Fraction: 0.9,
		Height:   400,
		Margin:   Margin{Top: 15, Right: 15, Bottom: 40, Left: 60},
	}
	BarSizing = Sizing{
		Fraction: 0.9,
		Height:   420,
		Margin:   Margin{Top: 15, Right: 15, Bottom: 60, Left: 50},
	}
	ScatterSizing = Sizing{
		Fraction: 0.8,
		Square:   true,
		Margin:   Margin{Top: 10, Right: 10, Bottom: 50, Left: 60},
	}
)

// ResizePolicy selects whether a chart follows viewport changes.
type ResizePolicy int

const (
	// FixedSize keeps the dimensions computed at load time.
	FixedSize ResizePolicy = iota
	// Reactive recomputes dimensions and scales on every resize.
	Reactive
)

func (p ResizePolicy) String() string {
	if p == Reactive {
		return "reactive"
	}
	return "fixed"
}

// ParseResizePolicy parses "fixed" or "reactive".
func ParseResizePolicy(s string) (ResizePolicy, error) {
	switch s {
	case "", "fixed":
		return FixedSize, nil
	case "reactive":
		return Reactive, nil
	}
	return FixedSize, fmt.Errorf("unknown resize policy %q", s)
}
