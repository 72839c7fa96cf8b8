// Scale Transformations
//
// A transformation maps the domain interval of a scale onto its pixel
// range. Both intervals may be inverted, e.g. a vertical pixel range runs
// from the bottom of the drawing area up to 0.
package chart

// A Transformation maps x from the interval from to the interval to.
type Transformation struct {
	Name  string
	Trans func(from, to Interval, x float64) float64
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
}
