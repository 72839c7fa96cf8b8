package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/vdobler/facet/chart/data"
)

// ----------------------------------------------------------------------------
// Color Tables

// ColorSpec selects the numeric Field a color scale reads and the colors
// of its smallest (Low) and largest (High) value as hex strings.
type ColorSpec struct {
	Field     string
	Low, High string
}

// ColorTable maps category names to color specs.
type ColorTable map[string]ColorSpec

// FallbackColor is used for unknown names: everything is white.
var FallbackColor = ColorSpec{Low: "#ffffff", High: "#ffffff"}

// PaintColors colors the paintings by how much of one paint they use.
var PaintColors = ColorTable{
	"Alizarin Crimson": {"Alizarin_Crimson", "#e32636", "#f7c2c7"},
	"Black Gesso":      {"Black_Gesso", "#000000", "#e5e5e5"},
	"Bright Red":       {"Bright_Red", "#ff1414", "#ffc5c5"},
	"Burnt Umber":      {"Burnt_Umber", "#8A3324", "#e7d6d3"},
	"Cadmium Yellow":   {"Cadmium_Yellow", "#fff714", "#fffcb1"},
	"Dark Sienna":      {"Dark_Sienna", "#3c1414", "#b23b3b"},
	"Indian Red":       {"Indian_Red", "#cd5c5c", "#f6e3e3"},
	"Indian Yellow":    {"Indian_Yellow", "#E3A857", "#f6e4cc"},
	"Liquid Black":     {"Liquid_Black", "#000000", "#e5e5e5"},
	"Liquid Clear":     {"Liquid_Clear", "ffffff", "ffffff"},
	"Midnight Black":   {"Midnight_Black", "#000000", "#e5e5e5"},
	"Phthalo Blue":     {"Phthalo_Blue", "#000F89", "#cccfe7"},
	"Phthalo Green":    {"Phthalo_Green", "#030906", "#ebf8f1"},
	"Prussian Blue":    {"Prussian_Blue", "#003153", "#008ef0"},
	"Sap Green":        {"Sap_Green", "#a7bd91", "#0A3410"},
	"Titanium White":   {"Titanium_White", "#ffffff", "#858585"},
	"Van Dyke Brown":   {"Van_Dyke_Brown", "#a52a2a", "#f6e9e9"},
	"Yellow Ochre":     {"Yellow_Ochre", "#CB9D06", "#FDEFC4"},
}

// Lookup returns the spec of name or an *UnknownCategoryError.
func (t ColorTable) Lookup(name string) (ColorSpec, error) {
	spec, ok := t[name]
	if !ok {
		return ColorSpec{}, &UnknownCategoryError{Name: name}
	}
	return spec, nil
}

// Names returns the names in t in alphabetical order.
func (t ColorTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scale builds the color scale of name over records. The returned scale
// is always usable: for an unknown name it is the FallbackColor scale and
// the *UnknownCategoryError is returned alongside.
func (t ColorTable) Scale(name string, records []data.Record) (*ColorScale, error) {
	spec, lookupErr := t.Lookup(name)
	if lookupErr != nil {
		spec = FallbackColor
	}
	cs, err := NewColorScale(records, data.Number(spec.Field), spec.Low, spec.High)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", name, err)
	}
	cs.Name = name
	return cs, lookupErr
}

// ----------------------------------------------------------------------------
// Color Scale

// ColorScale maps the values of a numeric field linearly onto the colors
// between Low and High.
type ColorScale struct {
	Name      string
	Domain    Interval
	Low, High color.RGBA

	acc      data.Accessor
	gradient palette.RGBGradient
}

// NewColorScale builds a color scale over the defined values of acc
// interpolating between the hex colors low and high.
func NewColorScale(records []data.Record, acc data.Accessor, low, high string) (*ColorScale, error) {
	lo, err := ParseHex(low)
	if err != nil {
		return nil, err
	}
	hi, err := ParseHex(high)
	if err != nil {
		return nil, err
	}
	cs := &ColorScale{
		Domain: unsetInterval(),
		Low:    lo,
		High:   hi,
		acc:    acc,
		// RGBGradient yields its first color on the whole first segment,
		// the duplicated low color makes the second segment the ramp.
		gradient: palette.RGBGradient{Colors: []color.RGBA{lo, lo, hi}},
	}
	if min, max, n := data.Extent(records, acc); n > 0 {
		cs.Domain = Interval{min, max}
	}
	return cs, nil
}

// Map returns the color of value v. Values outside the domain get the
// color of the nearer end. A constant scale maps everything to Low.
func (cs *ColorScale) Map(v float64) (color.Color, error) {
	if cs.Low == cs.High {
		return cs.Low, nil
	}
	if math.IsNaN(v) || math.IsNaN(cs.Domain.Min) {
		return cs.Low, &MissingValueError{Scale: cs.Name, Record: -1}
	}
	t := 0.0
	if cs.Domain.Max > cs.Domain.Min {
		t = (v - cs.Domain.Min) / (cs.Domain.Max - cs.Domain.Min)
	}
	switch {
	case t <= 0:
		return cs.Low, nil
	case t >= 1:
		return cs.High, nil
	}
	return cs.gradient.Map(0.5 + t/2), nil
}

// Hex is Map formatted as #rrggbb.
func (cs *ColorScale) Hex(v float64) (string, error) {
	c, err := cs.Map(v)
	return HexColor(c), err
}

// Record returns the color of record r, the i'th of the data.
func (cs *ColorScale) Record(r data.Record, i int) (color.Color, error) {
	if cs.Low == cs.High {
		return cs.Low, nil
	}
	v, ok := cs.acc(r)
	if !ok {
		return cs.Low, &MissingValueError{Scale: cs.Name, Record: i}
	}
	c, err := cs.Map(v)
	if mv, ok := err.(*MissingValueError); ok {
		mv.Record = i
	}
	return c, err
}

// ParseHex parses #rgb or #rrggbb; the # is optional.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// HexColor formats c as #rrggbb ignoring alpha.
func HexColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
