package geom

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// px rounds l to the integer pixel grid of the SVG writer.
func px(l vg.Length) int {
	return int(math.Round(float64(l)))
}
