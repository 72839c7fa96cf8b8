// Package demo assembles the charts of the demo page from the bundled
// datasets and the public painting dataset.
package demo

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vdobler/facet/chart"
	"github.com/vdobler/facet/chart/data"
	"github.com/vdobler/facet/chart/geom"
	"github.com/vdobler/facet/chart/internal/config"
	"github.com/yuin/goldmark"
)

//go:embed datasets/*
var datasets embed.FS

const (
	weatherFile   = "datasets/berlin_weather.json"
	dogsFile      = "datasets/dog_ownership.json"
	paintingsFile = "datasets/bob_ross_paintings.csv"
)

// ErrUnknownChart is returned for chart names not in the catalog.
var ErrUnknownChart = errors.New("unknown chart")

// Options control how the charts of the catalog are built.
type Options struct {
	Viewport chart.Viewport
	Resize   chart.ResizePolicy

	// Colour is the paint coloring the painting-colours chart.
	Colour string

	// PaintingsURL is fetched unless Offline is set, in which case the
	// bundled sample of the painting dataset is used.
	PaintingsURL string
	Offline      bool
	Client       *http.Client
	FetchTimeout time.Duration

	Logger *slog.Logger
}

// OptionsFrom derives the options from a configuration.
func OptionsFrom(conf config.Config) Options {
	return Options{
		Viewport:     conf.ChartViewport(),
		Resize:       conf.ResizePolicy(),
		Colour:       conf.Colour,
		PaintingsURL: conf.PaintingsURL,
		FetchTimeout: conf.FetchTimeout(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Entry is one chart of the page together with its data source.
type Entry struct {
	Name        string
	Title       string
	Description template.HTML
	Chart       *chart.Chart
	Source      data.Source

	// Colours are the paints found in the loaded records. Only the
	// painting charts have colours.
	Colours []string
}

// Load loads the records of the chart for the viewport vp.
func (e *Entry) Load(ctx context.Context, vp chart.Viewport) error {
	return e.Chart.Load(ctx, e.Source, vp)
}

// Render writes the chart as SVG.
func (e *Entry) Render(w io.Writer) error {
	return e.Chart.Render(w)
}

// SVG returns the rendered chart without XML declaration for embedding
// into HTML.
func (e *Entry) SVG() (template.HTML, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return "", err
	}
	s := buf.String()
	if i := strings.Index(s, "<svg"); i > 0 {
		s = s[i:]
	}
	return template.HTML(s), nil
}

type builder struct {
	title       string
	description string
	build       func(e *Entry, o Options)
}

var catalog = map[string]builder{
	"weather-line": {
		title: "Simple line chart",
		description: "The highest daily temperature in **Berlin**.\n\n" +
			"Source: [open-meteo](https://open-meteo.com/)",
		build: buildWeather,
	},
	"dog-bar": {
		title:       "Simple bar chart",
		description: "Number of dogs per country in 2021, in *millions*.",
		build:       buildDogs,
	},
	"painting-scatter": {
		title: "Scatter plot",
		description: "Number of paints used per painting against the use of " +
			"*Sap Green*.\n\nSource: [Bob Ross paintings](https://github.com/jwilber/Bob_Ross_Paintings)",
		build: buildPaintingScatter,
	},
	"painting-colours": {
		title: "Colored scatter plot",
		description: "Number of paints used in every painting. The selected paint " +
			"colors the paintings which use it.",
		build: buildPaintingColours,
	},
}

// Names lists the charts of the catalog in page order.
func Names() []string {
	return []string{"weather-line", "dog-bar", "painting-scatter", "painting-colours"}
}

var markdown = goldmark.New()

// New builds the chart name. The chart is not loaded yet.
func New(name string, o Options) (*Entry, error) {
	b, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownChart, name)
	}
	var desc bytes.Buffer
	if err := markdown.Convert([]byte(b.description), &desc); err != nil {
		return nil, fmt.Errorf("description of %s: %w", name, err)
	}
	e := &Entry{
		Name:        name,
		Title:       b.title,
		Description: template.HTML(desc.String()),
	}
	b.build(e, o)
	e.Chart.Name = name
	e.Chart.Title = b.title
	e.Chart.Resize = o.Resize
	e.Chart.Logger = o.logger().With("chart", name)
	e.Source = withTimeout(e.Source, o.FetchTimeout)
	return e, nil
}

func buildWeather(e *Entry, o Options) {
	e.Source = data.FileSource{FS: datasets, Name: weatherFile, Parse: data.ParseWeather}
	e.Chart = &chart.Chart{
		Sizing: chart.LineSizing,
		X: chart.Dim{
			Title:       "Date",
			ScaleType:   chart.Time,
			Value:       data.Date(data.WeatherDate, data.WeatherDateLayout),
			Ticks:       10,
			LabelOffset: 35,
		},
		Y: chart.Dim{
			Title:       "The highest temperature",
			Value:       data.Number(data.WeatherTempMax),
			Nice:        true,
			Ticks:       10,
			LabelOffset: 40,
		},
		Geoms: []chart.Geom{geom.Line{Curve: geom.MonotoneX}},
		Style: chart.LineChartStyle(14),
	}
}

func buildDogs(e *Entry, o Options) {
	e.Source = data.FileSource{FS: datasets, Name: dogsFile, Parse: data.ParseDogOwnership}
	e.Chart = &chart.Chart{
		Sizing: chart.BarSizing,
		X: chart.Dim{
			Title:       "Countries",
			ScaleType:   chart.Band,
			Category:    data.Category(data.DogCountry),
			Padding:     0.1,
			Round:       true,
			LabelOffset: 55,
			Rotate:      -30,
		},
		Y: chart.Dim{
			Title:       "Dog ownership (million)",
			Value:       data.Scaled(data.Number(data.DogTotal), 1e-6),
			Nice:        true,
			Ticks:       15,
			IncludeZero: true,
			LabelOffset: 35,
		},
		Geoms: []chart.Geom{geom.Bar{
			Labels: true,
			Format: func(v float64) string { return fmt.Sprintf("%.1f", v) },
		}},
		Style: chart.DefaultStyle(12),
	}
}

func buildPaintingScatter(e *Entry, o Options) {
	e.Source = paintingSource(e, o)
	e.Chart = &chart.Chart{
		Sizing: chart.ScatterSizing,
		X: chart.Dim{
			Title:       "The total number of used colours",
			Value:       data.Number(data.PaintingNumColors),
			Nice:        true,
			Ticks:       10,
			LabelOffset: 35,
		},
		Y: chart.Dim{
			Title:       "Use of Sap Green",
			Value:       data.Number("Sap_Green"),
			Nice:        true,
			Ticks:       10,
			LabelOffset: 40,
		},
		Geoms: []chart.Geom{geom.Point{Focusable: true}},
		Style: chart.DefaultStyle(12),
	}
}

func buildPaintingColours(e *Entry, o Options) {
	colour := o.Colour
	e.Source = paintingSource(e, o)
	e.Chart = &chart.Chart{
		Sizing: chart.ScatterSizing,
		X: chart.Dim{
			Title:       "Painting",
			Value:       data.Number(data.PaintingNumber),
			Nice:        true,
			Ticks:       10,
			LabelOffset: 35,
		},
		Y: chart.Dim{
			Title:       "The total number of used colours",
			Value:       data.Number(data.PaintingNumColors),
			Nice:        true,
			Ticks:       10,
			LabelOffset: 40,
		},
		Color: func(records []data.Record) (*chart.ColorScale, error) {
			return chart.PaintColors.Scale(colour, records)
		},
		Geoms: []chart.Geom{geom.Point{Focusable: true}},
		Style: chart.DefaultStyle(12),
	}
}

// paintingSource loads the painting dataset and records the paints used
// in e.
func paintingSource(e *Entry, o Options) data.Source {
	var src data.Source = data.HTTPSource{URL: o.PaintingsURL, Client: o.Client, Parse: data.ParsePaintings}
	if o.Offline || o.PaintingsURL == "" {
		src = data.FileSource{FS: datasets, Name: paintingsFile, Parse: data.ParsePaintings}
	}
	return data.SourceFunc(func(ctx context.Context) ([]data.Record, error) {
		records, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		e.Colours = data.PaintingColors(records)
		return records, nil
	})
}

// withTimeout bounds every load of src by d. Zero means no bound.
func withTimeout(src data.Source, d time.Duration) data.Source {
	if d <= 0 {
		return src
	}
	return data.SourceFunc(func(ctx context.Context) ([]data.Record, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return src.Load(ctx)
	})
}
