package chart

import (
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Orientation

// Orientation is the side of the drawing area an axis is attached to.
type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

// Vertical reports whether the axis runs from top to bottom.
func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

// Reverse reports whether ticks point into positive x or negative y
// direction, i.e. the axis sits on the right or on top.
func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

func (o Orientation) String() string {
	switch o {
	case OrientTop:
		return "top"
	case OrientRight:
		return "right"
	case OrientBottom:
		return "bottom"
	case OrientLeft:
		return "left"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ----------------------------------------------------------------------------
// Axis

// Tick is a laid out tick mark: its pixel position along the axis and
// its label.
type Tick struct {
	Pos   float64
	Label string
}

// Axis draws a Scale as a domain line with tick marks and labels.
//
// The tick layout depends only on the scale, the tick count and the
// orientation and is computed again only if one of these changed. A Scale
// must not be modified after it has been handed to an Axis; build a new
// one instead.
type Axis struct {
	Orientation
	Scale *Scale

	// Ticks is the requested number of ticks, 0 means DefaultTickCount.
	Ticks int

	// TickSize and TickPadding override the style if positive.
	TickSize, TickPadding float64

	// Label is the axis title drawn LabelOffset pixel away from the
	// domain line.
	Label       string
	LabelOffset float64

	// Rotate rotates tick labels by this many degrees.
	Rotate float64

	memo struct {
		scale  *Scale
		ticks  int
		orient Orientation
		marks  []Tick
	}
	redraws int
}

// Layout returns the tick marks of a.
func (a *Axis) Layout() ([]Tick, error) {
	if a.Scale == nil {
		return nil, fmt.Errorf("%s axis: no scale", a.Orientation)
	}
	m := &a.memo
	if m.scale == a.Scale && m.ticks == a.Ticks && m.orient == a.Orientation && m.marks != nil {
		return m.marks, nil
	}

	ticks := a.Scale.Ticks(a.Ticks)
	marks := make([]Tick, 0, len(ticks))
	for _, t := range ticks {
		if t.IsMinor() {
			continue
		}
		pos, err := a.Scale.TickPosition(t)
		if err != nil {
			return nil, fmt.Errorf("%s axis: %w", a.Orientation, err)
		}
		marks = append(marks, Tick{Pos: pos, Label: t.Label})
	}
	m.scale, m.ticks, m.orient, m.marks = a.Scale, a.Ticks, a.Orientation, marks
	a.redraws++
	return marks, nil
}

// Redraws is the number of times the tick layout was computed.
func (a *Axis) Redraws() int { return a.redraws }

// Render draws a as a <g> group onto canvas. The axis starts at the
// current origin and is length pixel long; the caller translates the
// canvas to the edge of the drawing area.
func (a *Axis) Render(canvas *svg.SVG, length float64, style Style) error {
	marks, err := a.Layout()
	if err != nil {
		return err
	}

	size, pad := float64(style.Axis.Tick.Length), float64(style.Axis.Tick.Padding)
	if a.TickSize > 0 {
		size = a.TickSize
	}
	if a.TickPadding > 0 {
		pad = a.TickPadding
	}
	fontSize := float64(style.Axis.Tick.Label.Font.Size)
	lineCSS := LineCSS(style.Axis.Line)
	tickCSS := LineCSS(style.Axis.Tick.LineStyle)
	labelStyle := style.Axis.Tick.Label

	canvas.Group(fmt.Sprintf(`class="axis axis-%s"`, a.Orientation))
	if a.Vertical() {
		canvas.Line(0, 0, 0, px(length), lineCSS)
	} else {
		canvas.Line(0, 0, px(length), 0, lineCSS)
	}

	// Sign of the direction ticks point to.
	dir := 1.0
	if a.Orientation == OrientLeft || a.Orientation == OrientTop {
		dir = -1
	}
	for _, m := range marks {
		var x1, y1, x2, y2, lx, ly float64
		attrs := []string{}
		if a.Vertical() {
			x1, y1, x2, y2 = 0, m.Pos, dir*size, m.Pos
			lx, ly = dir*(size+pad), m.Pos+fontSize/3
			if dir < 0 {
				labelStyle.XAlign = draw.XRight
			} else {
				labelStyle.XAlign = draw.XLeft
			}
		} else {
			x1, y1, x2, y2 = m.Pos, 0, m.Pos, dir*size
			lx, ly = m.Pos, dir*(size+pad)
			if dir > 0 {
				ly += fontSize
			}
			if a.Rotate != 0 {
				labelStyle.XAlign = draw.XRight
			}
		}
		canvas.Line(px(x1), px(y1), px(x2), px(y2), tickCSS)
		if a.Rotate != 0 {
			attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g %d %d)"`, a.Rotate, px(lx), px(ly)))
		}
		attrs = append(attrs, TextCSS(labelStyle, style.FontFamily))
		canvas.Text(px(lx), px(ly), m.Label, attrs...)
	}

	if a.Label != "" {
		titleCSS := TextCSS(style.Axis.Title, style.FontFamily)
		switch {
		case a.Vertical():
			x, y := -length/2, dir*a.LabelOffset
			canvas.Text(px(x), px(y), a.Label, `transform="rotate(-90)"`, titleCSS)
		default:
			canvas.Text(px(length/2), px(dir*a.LabelOffset), a.Label, titleCSS)
		}
	}
	canvas.Gend()
	return nil
}

// px rounds to the integer pixel grid of the SVG writer.
func px(v float64) int {
	return int(math.Round(v))
}
