package chart

import (
	"image/color"

	svg "github.com/ajstarks/svgo"
	"github.com/vdobler/facet/chart/data"
	"gonum.org/v1/plot/vg"
)

// Geom is a mark drawn for the records of a chart, e.g. points or bars.
type Geom interface {
	Draw(p *Panel)
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is the drawing area of a chart inside its margins. Its origin is
// the top left corner of the drawing area.
type Panel struct {
	Records []data.Record
	Dims    Dimensions

	X, Y       *Scale
	XDim, YDim Dim
	Color      *ColorScale // nil if the chart is not colored

	Canvas *svg.SVG
	Style  Style

	dropped []error
}

// MapX maps the x value of record i to a pixel column.
func (p *Panel) MapX(i int) (float64, error) {
	return project(p.X, p.XDim, p.Records[i], i)
}

// MapY maps the y value of record i to a pixel row.
func (p *Panel) MapY(i int) (float64, error) {
	return project(p.Y, p.YDim, p.Records[i], i)
}

// MapXY maps record i to a point on the canvas.
func (p *Panel) MapXY(i int) (vg.Point, error) {
	x, err := p.MapX(i)
	if err != nil {
		return vg.Point{}, err
	}
	y, err := p.MapY(i)
	if err != nil {
		return vg.Point{}, err
	}
	return vg.Point{X: vg.Length(x), Y: vg.Length(y)}, nil
}

// Fill returns the color of record i or def if the chart is not colored.
func (p *Panel) Fill(i int, def color.Color) (color.Color, error) {
	if p.Color == nil {
		return def, nil
	}
	return p.Color.Record(p.Records[i], i)
}

// Drop records that a record was skipped because of err.
func (p *Panel) Drop(err error) {
	p.dropped = append(p.dropped, err)
}

// Dropped returns the errors of all skipped records.
func (p *Panel) Dropped() []error {
	return p.dropped
}

func project(s *Scale, d Dim, r data.Record, i int) (float64, error) {
	if s.ScaleType == Band {
		return s.ProjectCategory(r, d.Category, i)
	}
	return s.Project(r, d.Value, i)
}
