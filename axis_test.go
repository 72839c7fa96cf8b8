package chart

import (
	"bytes"
	"strings"
	"testing"

	svg "github.com/ajstarks/svgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/facet/chart/data"
)

func TestAxisLayoutIsMemoized(t *testing.T) {
	records := values("y", 0.0, 10.0)
	s := LinearScale(records, data.Number("y"), Interval{0, 500})
	a := &Axis{Orientation: OrientBottom, Scale: s, Ticks: 5}

	first, err := a.Layout()
	require.NoError(t, err)
	require.NotEmpty(t, first)
	_, err = a.Layout()
	require.NoError(t, err)
	assert.Equal(t, 1, a.Redraws(), "unchanged inputs")

	a.Ticks = 2
	_, err = a.Layout()
	require.NoError(t, err)
	assert.Equal(t, 2, a.Redraws(), "tick count changed")

	a.Scale = LinearScale(records, data.Number("y"), Interval{0, 250})
	_, err = a.Layout()
	require.NoError(t, err)
	assert.Equal(t, 3, a.Redraws(), "scale changed")

	a.Orientation = OrientTop
	_, err = a.Layout()
	require.NoError(t, err)
	assert.Equal(t, 4, a.Redraws(), "orientation changed")
}

func TestAxisLayoutPositions(t *testing.T) {
	s := LinearScale(values("y", 0.0, 10.0), data.Number("y"), Interval{400, 0})
	a := &Axis{Orientation: OrientLeft, Scale: s, Ticks: 3}
	marks, err := a.Layout()
	require.NoError(t, err)
	for _, m := range marks {
		assert.GreaterOrEqual(t, m.Pos, 0.0)
		assert.LessOrEqual(t, m.Pos, 400.0)
	}
	assert.Equal(t, "0", marks[0].Label)
	assert.InDelta(t, 400, marks[0].Pos, 1e-9)
}

func TestAxisWithoutScale(t *testing.T) {
	a := &Axis{Orientation: OrientBottom}
	_, err := a.Layout()
	assert.Error(t, err)
}

func TestAxisRender(t *testing.T) {
	style := DefaultStyle(16)
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(500, 400)

	x := BandScale(values("c", "Japan", "Brazil"), data.Category("c"), Interval{0, 400}, 0.1)
	bottom := &Axis{Orientation: OrientBottom, Scale: x, Label: "Country", LabelOffset: 40, Rotate: -30}
	require.NoError(t, bottom.Render(canvas, 400, style))

	y := LinearScale(values("y", 0.0, 10.0), data.Number("y"), Interval{300, 0})
	left := &Axis{Orientation: OrientLeft, Scale: y, Label: "Dogs", LabelOffset: 40}
	require.NoError(t, left.Render(canvas, 300, style))
	canvas.End()

	out := buf.String()
	assert.Contains(t, out, `class="axis axis-bottom"`)
	assert.Contains(t, out, `class="axis axis-left"`)
	assert.Contains(t, out, ">Japan</text>")
	assert.Contains(t, out, ">Brazil</text>")
	assert.Contains(t, out, ">Country</text>")
	assert.Contains(t, out, `transform="rotate(-90)"`)
	assert.Contains(t, out, `transform="rotate(-30`)
	assert.Equal(t, 2, strings.Count(out, "<g "))
}
