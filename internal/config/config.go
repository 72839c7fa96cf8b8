// Package config holds the settings of the demo page and the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vdobler/facet/chart"
	"github.com/vdobler/facet/chart/data"
)

type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Config struct {
	Title    string   `json:"title"`
	Viewport Viewport `json:"viewport"`
	// "fixed" or "reactive"
	Resize string `json:"resize"`

	PaintingsURL        string `json:"paintings_url"`
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds"`

	// Charts lists the charts of the page by name. Empty means all.
	Charts []string `json:"charts"`
	// Colour is the paint initially selected for the colored scatter plot.
	Colour string `json:"colour"`
	// Concurrency limits the number of charts loading at the same time.
	Concurrency int `json:"concurrency"`
}

func Default() Config {
	return Config{
		Title:               "Working with charts",
		Viewport:            Viewport{Width: 1000, Height: 800},
		Resize:              chart.FixedSize.String(),
		PaintingsURL:        data.PaintingsURL,
		FetchTimeoutSeconds: 10,
		Colour:              "Bright Red",
		Concurrency:         4,
	}
}

// Load reads the JSON file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return conf, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf); err != nil {
		return conf, fmt.Errorf("reading config %s: %w", path, err)
	}
	return conf, conf.Validate()
}

// Validate checks the values which cannot be repaired by defaults.
func (c Config) Validate() error {
	if _, err := chart.ParseResizePolicy(c.Resize); err != nil {
		return err
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("invalid viewport %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

func (c Config) ChartViewport() chart.Viewport {
	return chart.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

// ResizePolicy returns the parsed resize policy; invalid values are fixed.
func (c Config) ResizePolicy() chart.ResizePolicy {
	p, err := chart.ParseResizePolicy(c.Resize)
	if err != nil {
		return chart.FixedSize
	}
	return p
}

// FetchTimeout is the time a single dataset may take to load. Zero means
// no limit.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
