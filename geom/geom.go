// Package geom provides the marks drawn for the records of a chart.
//
// Each geom draws all records of the chart's panel: Point draws one circle
// per record, Bar one rectangle per category and Line a single path through
// all records. Positions come from the panel's x and y scale; records whose
// position (or color) cannot be determined are skipped and reported to the
// panel through Drop.
//
// The different geoms have singular names like Point or Bar even if
// they draw several points or bars to match the naming in ggplot2.
package geom

import (
	"image/color"
	"math"
	"strconv"

	"github.com/vdobler/facet/chart"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Point

// Point draws a circle for every record.
type Point struct {
	// Radius and Fill replace the panel style if set. The fill of
	// colored charts comes from the chart's color scale.
	Radius vg.Length
	Fill   color.Color

	// Focusable points can be reached with the keyboard.
	Focusable bool
}

// Draw implements chart.Geom.Draw.
func (p Point) Draw(panel *chart.Panel) {
	radius := p.Radius
	if radius == 0 {
		radius = panel.Style.Point.Radius
	}
	base := p.Fill
	if base == nil {
		base = panel.Style.Point.Fill
	}

	for i := range panel.Records {
		center, err := panel.MapXY(i)
		if err != nil {
			panel.Drop(err)
			continue
		}
		col, err := panel.Fill(i, base)
		if err != nil {
			panel.Drop(err)
			continue
		}
		attrs := []string{chart.FillCSS(col)}
		if p.Focusable {
			attrs = append(attrs, `tabindex="0"`)
		}
		panel.Canvas.Circle(px(center.X), px(center.Y), px(radius), attrs...)
	}
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws rectangles standing on y=0 (or on the bottom of the y scale
// if 0 is not part of its domain). The x scale must be a band scale.
type Bar struct {
	// Fill and Gap replace the panel style if set. Gap is the
	// horizontal space left between neighbouring bars.
	Fill color.Color
	Gap  vg.Length

	// Labels draws the value above each bar, formatted with Format
	// or as a plain decimal number.
	Labels bool
	Format func(v float64) string
}

// Draw implements chart.Geom.Draw.
func (b Bar) Draw(panel *chart.Panel) {
	fill := b.Fill
	if fill == nil {
		fill = panel.Style.Bar.Fill
	}
	gap := b.Gap
	if gap == 0 {
		gap = panel.Style.Bar.Gap
	}
	format := b.Format
	if format == nil {
		format = func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	}

	base, err := baseline(panel.Y)
	if err != nil {
		panel.Drop(err)
		return
	}
	bandwidth := vg.Length(panel.X.Bandwidth())
	labelCSS := chart.TextCSS(panel.Style.Bar.Label, panel.Style.FontFamily)

	for i, rec := range panel.Records {
		x, err := panel.MapX(i)
		if err != nil {
			panel.Drop(err)
			continue
		}
		y, err := panel.MapY(i)
		if err != nil {
			panel.Drop(err)
			continue
		}
		col, err := panel.Fill(i, fill)
		if err != nil {
			panel.Drop(err)
			continue
		}

		rect := CanonicRectangle(vg.Rectangle{
			Min: vg.Point{X: vg.Length(x) + gap/2, Y: vg.Length(y)},
			Max: vg.Point{X: vg.Length(x) + bandwidth - gap/2, Y: vg.Length(base)},
		})
		size := rect.Size()
		if bandwidth <= gap {
			size.X = 0
		}
		panel.Canvas.Rect(px(rect.Min.X), px(rect.Min.Y), px(size.X), px(size.Y), chart.FillCSS(col))

		if b.Labels {
			v, _ := panel.YDim.Value(rec)
			panel.Canvas.Text(px(vg.Length(x)+bandwidth/2), px(rect.Min.Y-5), format(v), labelCSS)
		}
	}
}

// baseline is the pixel row bars stand on.
func baseline(s *chart.Scale) (float64, error) {
	zero := math.Max(s.Min, math.Min(s.Max, 0))
	return s.Map(zero)
}
