package geom

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vdobler/facet/chart"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Line

// Curve selects how a Line connects its points.
type Curve int

const (
	// Linear connects the points with straight lines.
	Linear Curve = iota
	// MonotoneX connects the points with cubic Bézier segments which
	// preserve monotonicity in y for points ordered by x.
	MonotoneX
)

// Line draws one path through all records ordered by x.
type Line struct {
	Curve Curve

	// Style replaces the panel's line style if it has a color.
	Style draw.LineStyle
}

// Draw implements chart.Geom.Draw.
func (l Line) Draw(panel *chart.Panel) {
	style := l.Style
	if style.Color == nil {
		style = panel.Style.Line
	}

	points := make([]vg.Point, 0, len(panel.Records))
	for i := range panel.Records {
		pt, err := panel.MapXY(i)
		if err != nil {
			panel.Drop(err)
			continue
		}
		points = append(points, pt)
	}
	if len(points) == 0 {
		return
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].X < points[j].X })

	panel.Canvas.Path(l.path(points), chart.LineCSS(style))
}

// path returns the SVG path data through points.
func (l Line) path(points []vg.Point) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "M%s", coord(points[0]))
	if l.Curve == Linear || len(points) < 3 {
		for _, p := range points[1:] {
			fmt.Fprintf(&sb, "L%s", coord(p))
		}
		return sb.String()
	}
	for _, s := range monotoneX(points) {
		fmt.Fprintf(&sb, "C%s,%s,%s", coord(s.c1), coord(s.c2), coord(s.to))
	}
	return sb.String()
}

func coord(p vg.Point) string {
	return fmt.Sprintf("%s,%s", trim(float64(p.X)), trim(float64(p.Y)))
}

// trim formats v with at most two decimals.
func trim(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// ----------------------------------------------------------------------------
// Monotone cubic interpolation

// segment is a cubic Bézier segment from the previous point to to.
type segment struct {
	c1, c2, to vg.Point
}

// monotoneX computes the Bézier segments of the monotone cubic
// interpolation (Steffen's method) through at least three points sorted
// by x.
func monotoneX(points []vg.Point) []segment {
	n := len(points)
	tangents := make([]float64, n)
	for i := 1; i < n-1; i++ {
		tangents[i] = slope3(points[i-1], points[i], points[i+1])
	}
	tangents[0] = slope2(points[0], points[1], tangents[1])
	tangents[n-1] = slope2(points[n-2], points[n-1], tangents[n-2])

	segs := make([]segment, 0, n-1)
	for i := 0; i < n-1; i++ {
		p0, p1 := points[i], points[i+1]
		dx := (p1.X - p0.X) / 3
		segs = append(segs, segment{
			c1: vg.Point{X: p0.X + dx, Y: p0.Y + dx*vg.Length(tangents[i])},
			c2: vg.Point{X: p1.X - dx, Y: p1.Y - dx*vg.Length(tangents[i+1])},
			to: p1,
		})
	}
	return segs
}

// slope3 is the tangent at p1 from its neighbours p0 and p2.
func slope3(p0, p1, p2 vg.Point) float64 {
	h0, h1 := float64(p1.X-p0.X), float64(p2.X-p1.X)
	s0 := float64(p1.Y-p0.Y) / h0
	s1 := float64(p2.Y-p1.Y) / h1
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 is the tangent at an end point of the segment p0 p1 given the
// tangent t at the other end.
func slope2(p0, p1 vg.Point, t float64) float64 {
	h := float64(p1.X - p0.X)
	if h == 0 {
		return t
	}
	return (3*float64(p1.Y-p0.Y)/h - t) / 2
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
