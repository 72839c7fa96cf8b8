package chart

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/facet/chart/data"
)

// dots is a minimal geom drawing one circle per record.
type dots struct{}

func (dots) Draw(p *Panel) {
	for i := range p.Records {
		pt, err := p.MapXY(i)
		if err != nil {
			p.Drop(err)
			continue
		}
		p.Canvas.Circle(px(float64(pt.X)), px(float64(pt.Y)), 2)
	}
}

func testChart() *Chart {
	return &Chart{
		Name:   "test",
		Title:  "Test",
		Sizing: LineSizing,
		X:      Dim{Title: "x", Value: data.Number("x"), Nice: true, Ticks: 5},
		Y:      Dim{Title: "y", Value: data.Number("y"), Nice: true, Ticks: 5},
		Geoms:  []Geom{dots{}},
		Style:  DefaultStyle(16),
	}
}

var testRecords = []data.Record{
	{"x": 1.0, "y": 5.0},
	{"x": 2.0, "y": 10.0},
	{"x": 3.0},
	{"x": 4.0, "y": 7.0},
}

func render(t *testing.T, c *Chart) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	return buf.String()
}

func TestChartLoadingPlaceholder(t *testing.T) {
	c := testChart()
	assert.Equal(t, StateLoading, c.State())
	out := render(t, c)
	assert.Contains(t, out, ">Loading</text>")
	assert.Contains(t, out, "chart-loading")
}

func TestChartLoad(t *testing.T) {
	c := testChart()
	err := c.Load(context.Background(), data.Static(testRecords), Viewport{1000, 800})
	require.NoError(t, err)
	assert.Equal(t, StateReady, c.State())
	assert.NoError(t, c.Err())

	d := c.Dimensions()
	assert.Equal(t, 900.0, d.Width)
	assert.Equal(t, 400.0, d.Height)

	out := render(t, c)
	assert.Contains(t, out, `<svg width="900" height="400"`)
	assert.Contains(t, out, "<title>Test</title>")
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Contains(t, out, `class="axis axis-bottom"`)
	assert.Contains(t, out, `class="axis axis-left"`)

	dropped := c.Dropped()
	require.Len(t, dropped, 1)
	var mv *MissingValueError
	require.ErrorAs(t, dropped[0], &mv)
	assert.Equal(t, 2, mv.Record)
}

func TestChartProjectionIsPure(t *testing.T) {
	c := testChart()
	require.NoError(t, c.Load(context.Background(), data.Static(testRecords), Viewport{1000, 800}))
	first, second := render(t, c), render(t, c)
	assert.Equal(t, first, second)

	x, _ := c.Axes()
	assert.Equal(t, 1, x.Redraws(), "axis layout reused")
}

func TestChartFetchFailure(t *testing.T) {
	c := testChart()
	src := data.SourceFunc(func(ctx context.Context) ([]data.Record, error) {
		return nil, &data.FetchError{Source: "weather.json", Err: errors.New("boom")}
	})
	err := c.Load(context.Background(), src, Viewport{1000, 800})
	var fe *data.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, StateError, c.State())

	out := render(t, c)
	assert.Contains(t, out, "Error: fetch weather.json: boom")
	assert.NotContains(t, out, "<circle")
}

func TestChartWithoutValues(t *testing.T) {
	c := testChart()
	err := c.SetRecords([]data.Record{{"x": 1.0}, {"x": 2.0}})
	assert.True(t, errors.Is(err, ErrMissingValue))
	assert.Equal(t, StateError, c.State())
}

func TestChartDegenerateDimensions(t *testing.T) {
	c := testChart()
	c.Sizing = Sizing{Fraction: 1, Margin: Margin{Left: 200, Right: 200}}
	err := c.Load(context.Background(), data.Static(testRecords), Viewport{300, 300})
	assert.True(t, errors.Is(err, ErrDegenerateDimensions))
	assert.Equal(t, StateError, c.State())
}

func TestChartReactiveRecoversFromSmallViewport(t *testing.T) {
	c := testChart()
	c.Resize = Reactive
	c.Sizing = Sizing{Fraction: 1, Margin: Margin{Left: 200, Right: 200}}
	err := c.Load(context.Background(), data.Static(testRecords), Viewport{300, 300})
	require.ErrorIs(t, err, ErrDegenerateDimensions)
	require.Equal(t, StateError, c.State())

	changed, err := c.SetViewport(Viewport{1200, 800})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, StateReady, c.State())
	assert.NoError(t, c.Err())
	assert.Equal(t, 3, strings.Count(render(t, c), "<circle"))

	// Shrinking again fails the layout once more.
	_, err = c.SetViewport(Viewport{300, 300})
	assert.ErrorIs(t, err, ErrDegenerateDimensions)
	assert.Equal(t, StateError, c.State())
}

func TestChartFetchFailureIsNotRelaidOut(t *testing.T) {
	c := testChart()
	c.Resize = Reactive
	require.NoError(t, c.Load(context.Background(), data.Static(testRecords), Viewport{1000, 800}))

	failing := data.SourceFunc(func(ctx context.Context) ([]data.Record, error) {
		return nil, &data.FetchError{Source: "weather.json", Err: errors.New("boom")}
	})
	require.Error(t, c.Load(context.Background(), failing, Viewport{1000, 800}))

	changed, err := c.SetViewport(Viewport{1200, 800})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, StateError, c.State())
}

func TestChartLoadReplacesPendingMount(t *testing.T) {
	c := testChart()
	started := make(chan struct{})
	slow := data.SourceFunc(func(ctx context.Context) ([]data.Record, error) {
		close(started)
		<-ctx.Done()
		return []data.Record{{"x": 1.0, "y": 1.0}, {"x": 2.0, "y": 2.0}}, nil
	})
	c.Mount(context.Background(), slow, Viewport{1000, 800})
	<-started

	require.NoError(t, c.Load(context.Background(), data.Static(testRecords), Viewport{600, 800}))
	c.Wait()
	assert.Equal(t, StateReady, c.State())
	assert.Equal(t, 540.0, c.Dimensions().Width)
	assert.Equal(t, 3, strings.Count(render(t, c), "<circle"))
}

func TestChartMount(t *testing.T) {
	c := testChart()
	c.Mount(context.Background(), data.Static(testRecords), Viewport{1000, 800})
	c.Wait()
	assert.Equal(t, StateReady, c.State())
	c.Unmount()
	assert.Equal(t, StateReady, c.State())
}

func TestChartUnmountDiscardsLoad(t *testing.T) {
	c := testChart()
	started := make(chan struct{})
	src := data.SourceFunc(func(ctx context.Context) ([]data.Record, error) {
		close(started)
		<-ctx.Done()
		return testRecords, nil
	})
	c.Mount(context.Background(), src, Viewport{1000, 800})
	<-started
	c.Unmount()

	assert.Equal(t, StateLoading, c.State(), "late result discarded")
	c.Wait()
}

func TestChartResizePolicy(t *testing.T) {
	c := testChart()
	require.NoError(t, c.Load(context.Background(), data.Static(testRecords), Viewport{1000, 800}))

	changed, err := c.SetViewport(Viewport{500, 800})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 900.0, c.Dimensions().Width)

	c.Resize = Reactive
	render(t, c)
	changed, err = c.SetViewport(Viewport{500, 800})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 450.0, c.Dimensions().Width)

	render(t, c)
	x, _ := c.Axes()
	assert.Equal(t, 2, x.Redraws())

	// Line charts have a fixed height: a taller viewport keeps the layout.
	changed, err = c.SetViewport(Viewport{500, 1200})
	require.NoError(t, err)
	assert.False(t, changed)
	render(t, c)
	assert.Equal(t, 2, x.Redraws())
}

func TestChartUnknownColorFallsBack(t *testing.T) {
	c := testChart()
	c.Color = func(records []data.Record) (*ColorScale, error) {
		return PaintColors.Scale("Ultramarine", records)
	}
	require.NoError(t, c.SetRecords(testRecords))
	assert.Equal(t, StateReady, c.State())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestChartRenderWriteError(t *testing.T) {
	c := testChart()
	assert.EqualError(t, c.Render(failingWriter{}), "disk full")
}
