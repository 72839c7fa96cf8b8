package chart_test

import (
	"context"
	"fmt"
	"os"

	"github.com/vdobler/facet/chart"
	"github.com/vdobler/facet/chart/data"
	"github.com/vdobler/facet/chart/geom"
)

func ExampleChart() {
	records := []data.Record{
		{"x": 1.0, "y": 3.0},
		{"x": 2.0, "y": 5.5},
		{"x": 3.0},
		{"x": 4.0, "y": 4.2},
	}

	c := &chart.Chart{
		Name:   "scatter",
		Title:  "Scaling",
		Sizing: chart.ScatterSizing,
		X:      chart.Dim{Title: "X-Axis", Value: data.Number("x"), Nice: true},
		Y:      chart.Dim{Title: "Y-Axis", Value: data.Number("y"), Nice: true},
		Geoms:  []chart.Geom{geom.Point{}, geom.Line{Curve: geom.MonotoneX}},
		Style:  chart.DefaultStyle(12),
	}
	if err := c.Load(context.Background(), data.Static(records), chart.Viewport{Width: 600, Height: 480}); err != nil {
		fmt.Println(err)
		return
	}
	c.Render(os.Stdout)
}

func ExampleScale_Nice() {
	records := []data.Record{{"v": 0.3}, {"v": 9.7}}
	s := chart.LinearScale(records, data.Number("v"), chart.Interval{Min: 0, Max: 100})
	s.Nice(10)
	fmt.Println(s.Min, s.Max)
	// Output: 0 10
}
