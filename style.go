package chart

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Chart is drawn.
type Style struct {
	Background color.Color
	FontFamily string

	Title       draw.TextStyle
	TitleHeight vg.Length

	// Message is the text of the loading and error placeholders.
	Message draw.TextStyle

	Panel struct {
		Background color.Color
	}

	Axis struct {
		Title draw.TextStyle
		Line  draw.LineStyle
		Tick  struct {
			draw.LineStyle
			Length  vg.Length
			Padding vg.Length
			Label   draw.TextStyle
		}
	}

	Line draw.LineStyle

	Bar struct {
		Fill  color.Color
		Gap   vg.Length
		Label draw.TextStyle
	}

	Point struct {
		Fill   color.Color
		Radius vg.Length
	}
}

// DefaultStyle returns the Style of the demo charts.
// The baseFontSize is the font size for axis titles, the title is a bit
// bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	s := Style{}
	s.Background = color.White
	s.FontFamily = "sans-serif"

	s.Title.Color = color.Black
	s.Title.Font = vg.Font{Size: scale(baseFontSize, 1.2)}
	s.Title.XAlign = draw.XCenter
	s.TitleHeight = scale(baseFontSize, 2)

	s.Message.Color = color.Gray16{0x5555}
	s.Message.Font = vg.Font{Size: baseFontSize}
	s.Message.XAlign = draw.XCenter

	s.Axis.Title.Color = color.Black
	s.Axis.Title.Font = vg.Font{Size: baseFontSize}
	s.Axis.Title.XAlign = draw.XCenter

	s.Axis.Line.Color = color.Black
	s.Axis.Line.Width = vg.Length(1)

	s.Axis.Tick.Color = color.Black
	s.Axis.Tick.Width = vg.Length(1)
	s.Axis.Tick.Length = vg.Length(6)
	s.Axis.Tick.Padding = vg.Length(3)
	s.Axis.Tick.Label.Color = color.Black
	s.Axis.Tick.Label.Font = vg.Font{Size: scale(baseFontSize, 10.0/16)}
	s.Axis.Tick.Label.XAlign = draw.XCenter

	s.Line.Color = color.RGBA{0xff, 0x79, 0x00, 0xff}
	s.Line.Width = vg.Length(1.5)

	s.Bar.Fill = color.RGBA{0x64, 0x95, 0xed, 0xff} // cornflowerblue
	s.Bar.Gap = vg.Length(4)
	s.Bar.Label.Color = color.Gray16{0x6666}
	s.Bar.Label.Font = vg.Font{Size: scale(baseFontSize, 0.75)}
	s.Bar.Label.XAlign = draw.XCenter

	s.Point.Fill = color.RGBA{0x50, 0x7d, 0x2a, 0xff}
	s.Point.Radius = vg.Length(5)

	return s
}

// LineChartStyle is DefaultStyle with the lavender panel of the line chart.
func LineChartStyle(baseFontSize vg.Length) Style {
	s := DefaultStyle(baseFontSize)
	s.Panel.Background = color.RGBA{0xe6, 0xe6, 0xfa, 0xff}
	return s
}

// ----------------------------------------------------------------------------
// CSS

// TextCSS returns the SVG style attribute of ts in font family.
func TextCSS(ts draw.TextStyle, family string) string {
	anchor := "middle"
	switch {
	case ts.XAlign >= draw.XLeft:
		anchor = "start"
	case ts.XAlign <= draw.XRight:
		anchor = "end"
	}
	parts := []string{
		"fill:" + HexColor(ts.Color),
		fmt.Sprintf("font-size:%gpx", float64(ts.Font.Size)),
		"text-anchor:" + anchor,
	}
	if family != "" {
		parts = append(parts, "font-family:"+family)
	}
	return strings.Join(parts, ";")
}

// LineCSS returns the SVG style attribute of ls without fill.
func LineCSS(ls draw.LineStyle) string {
	if ls.Color == nil || ls.Width <= 0 {
		return "stroke:none;fill:none"
	}
	css := fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none", HexColor(ls.Color), float64(ls.Width))
	if len(ls.Dashes) > 0 {
		dashes := make([]string, len(ls.Dashes))
		for i, d := range ls.Dashes {
			dashes[i] = fmt.Sprintf("%g", float64(d))
		}
		css += ";stroke-dasharray:" + strings.Join(dashes, ",")
	}
	return css
}

// FillCSS returns the SVG style attribute filling with c.
func FillCSS(c color.Color) string {
	if c == nil {
		return "fill:none"
	}
	return "fill:" + HexColor(c)
}
