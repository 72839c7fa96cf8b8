package chart

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/facet/chart/data"
)

var parseHexTests = []struct {
	in   string
	want color.RGBA
	ok   bool
}{
	{"#e32636", color.RGBA{0xe3, 0x26, 0x36, 0xff}, true},
	{"ffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}, true},
	{"#0A3410", color.RGBA{0x0a, 0x34, 0x10, 0xff}, true},
	{"#fa0", color.RGBA{0xff, 0xaa, 0x00, 0xff}, true},
	{"#12345", color.RGBA{}, false},
	{"#zzzzzz", color.RGBA{}, false},
}

func TestParseHex(t *testing.T) {
	for _, tc := range parseHexTests {
		got, err := ParseHex(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestPaintColorsCoverPaintFields(t *testing.T) {
	fields := map[string]bool{}
	for _, spec := range PaintColors {
		fields[spec.Field] = true
		_, err := ParseHex(spec.Low)
		assert.NoError(t, err)
		_, err = ParseHex(spec.High)
		assert.NoError(t, err)
	}
	for _, f := range data.PaintFields {
		assert.True(t, fields[f], "no color for %s", f)
	}
	assert.Len(t, PaintColors.Names(), len(data.PaintFields))
}

func TestColorScaleEnds(t *testing.T) {
	records := values("Bright_Red", 0.0, 1.0, nil)
	cs, err := PaintColors.Scale("Bright Red", records)
	require.NoError(t, err)
	assert.Equal(t, Interval{0, 1}, cs.Domain)

	low, err := cs.Hex(0)
	require.NoError(t, err)
	assert.Equal(t, "#ff1414", low)

	high, err := cs.Hex(1)
	require.NoError(t, err)
	assert.Equal(t, "#ffc5c5", high)

	// Out of domain values clamp.
	clamped, _ := cs.Hex(7)
	assert.Equal(t, "#ffc5c5", clamped)

	mid, err := cs.Map(0.5)
	require.NoError(t, err)
	r, g, _, _ := mid.RGBA()
	assert.Equal(t, uint32(0xff), r>>8)
	assert.Greater(t, g>>8, uint32(0x14))
	assert.Less(t, g>>8, uint32(0xc5))

	_, err = cs.Record(records[2], 2)
	var mv *MissingValueError
	require.ErrorAs(t, err, &mv)
	assert.Equal(t, 2, mv.Record)
}

func TestUnknownColorFallsBackToWhite(t *testing.T) {
	records := values("Bright_Red", 0.0, 1.0)
	cs, err := PaintColors.Scale("Ultramarine", records)
	require.NotNil(t, cs)
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	for _, v := range []float64{-1, 0, 0.5, 1, 100} {
		got, err := cs.Hex(v)
		require.NoError(t, err)
		assert.Equal(t, "#ffffff", got)
	}
	c, err := cs.Record(records[0], 0)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", HexColor(c))
}

func TestColorScaleWithoutData(t *testing.T) {
	cs, err := NewColorScale(nil, data.Number("x"), "#000", "#fff")
	require.NoError(t, err)
	_, err = cs.Map(1)
	assert.True(t, errors.Is(err, ErrMissingValue))

	_, err = NewColorScale(nil, data.Number("x"), "black", "#fff")
	assert.Error(t, err)
}
