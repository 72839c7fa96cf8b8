package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizingTests = []struct {
	name   string
	sizing Sizing
	vp     Viewport
	w, h   float64
}{
	{"line", LineSizing, Viewport{1000, 800}, 900, 400},
	{"bar", BarSizing, Viewport{500, 300}, 450, 420},
	{"scatter-wide", ScatterSizing, Viewport{1000, 600}, 480, 480},
	{"scatter-tall", ScatterSizing, Viewport{400, 900}, 320, 320},
	{"unknown-viewport", LineSizing, Viewport{}, 300, 300},
	{"negative-viewport", ScatterSizing, Viewport{-1, 200}, 300, 300},
	{"fraction-only", Sizing{Fraction: 0.5}, Viewport{800, 600}, 400, 300},
}

func TestSizingDimensions(t *testing.T) {
	for _, tc := range sizingTests {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.sizing.Dimensions(tc.vp)
			assert.InDelta(t, tc.w, d.Width, 1e-9)
			assert.InDelta(t, tc.h, d.Height, 1e-9)
			assert.Equal(t, tc.sizing.Margin, d.Margin)
		})
	}
}

func TestBoundedArea(t *testing.T) {
	d := LineSizing.Dimensions(Viewport{1000, 800})
	assert.InDelta(t, 900-75, d.BoundedWidth(), 1e-9)
	assert.InDelta(t, 400-55, d.BoundedHeight(), 1e-9)
	require.NoError(t, d.Validate())

	assert.Equal(t, Interval{0, d.BoundedWidth()}, d.XRange())
	assert.Equal(t, Interval{d.BoundedHeight(), 0}, d.YRange())
}

func TestDegenerateDimensions(t *testing.T) {
	d := Dimensions{Width: 50, Height: 300, Margin: Margin{Left: 40, Right: 20}}
	err := d.Validate()
	assert.True(t, errors.Is(err, ErrDegenerateDimensions))
}

func TestParseResizePolicy(t *testing.T) {
	for in, want := range map[string]ResizePolicy{"": FixedSize, "fixed": FixedSize, "reactive": Reactive} {
		got, err := ParseResizePolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseResizePolicy("elastic")
	assert.Error(t, err)
}
