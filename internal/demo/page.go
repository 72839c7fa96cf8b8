package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/vdobler/facet/chart"
	"github.com/vdobler/facet/chart/internal/config"
	"golang.org/x/sync/errgroup"
)

// Page is the list of charts shown together.
type Page struct {
	Title    string
	Entries  []*Entry
	Viewport chart.Viewport

	// Colour is the selected paint, Colours the paints to choose from.
	Colour  string
	Colours []string

	concurrency int
}

// NewPage builds the charts conf selects, all charts of the catalog if it
// selects none.
func NewPage(conf config.Config, o Options) (*Page, error) {
	names := conf.Charts
	if len(names) == 0 {
		names = Names()
	}
	p := &Page{
		Title:       conf.Title,
		Viewport:    o.Viewport,
		Colour:      o.Colour,
		concurrency: max(conf.Concurrency, 1),
	}
	for _, name := range names {
		e, err := New(name, o)
		if err != nil {
			return nil, err
		}
		p.Entries = append(p.Entries, e)
	}
	return p, nil
}

// Entry returns the chart name of p or nil.
func (p *Page) Entry(name string) *Entry {
	for _, e := range p.Entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Load loads all charts concurrently. A chart which fails to load shows
// its error and does not stop the others; the returned error joins the
// errors of all failed charts.
func (p *Page) Load(ctx context.Context) error {
	errs := make([]error, len(p.Entries))
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, e := range p.Entries {
		i, e := i, e
		g.Go(func() error {
			if err := e.Load(ctx, p.Viewport); err != nil {
				errs[i] = fmt.Errorf("%s: %w", e.Name, err)
			}
			return nil
		})
	}
	g.Wait()

	p.Colours = nil
	for _, e := range p.Entries {
		if len(e.Colours) > 0 {
			p.Colours = e.Colours
			break
		}
	}
	return errors.Join(errs...)
}
