package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vdobler/facet/chart"
	"github.com/vdobler/facet/chart/internal/config"
	"github.com/vdobler/facet/chart/internal/demo"
)

// Controller builds and loads fresh charts for every request.
type Controller struct {
	conf config.Config
	opts demo.Options
}

func NewController(conf config.Config, opts demo.Options) *Controller {
	return &Controller{conf: conf, opts: opts}
}

// options applies the query parameters width, height and colour.
func (ctl *Controller) options(c echo.Context) (demo.Options, error) {
	o := ctl.opts
	vp := o.Viewport
	err := echo.QueryParamsBinder(c).
		Float64("width", &vp.Width).
		Float64("height", &vp.Height).
		String("colour", &o.Colour).
		BindError()
	if err != nil {
		return o, badRequest("invalid query parameter")
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return o, badRequest("invalid viewport %gx%g", vp.Width, vp.Height)
	}
	o.Viewport = vp
	return o, nil
}

// GetPage renders the page with all configured charts.
func (ctl *Controller) GetPage(c echo.Context) error {
	o, err := ctl.options(c)
	if err != nil {
		return err
	}
	page, err := demo.NewPage(ctl.conf, o)
	if err != nil {
		return err
	}
	if err := page.Load(c.Request().Context()); err != nil {
		c.Logger().Warn(err)
	}
	return c.Render(http.StatusOK, "page", page)
}

// GetChart renders a single chart as SVG. Charts which could not be loaded
// are still rendered, showing their error.
func (ctl *Controller) GetChart(c echo.Context) error {
	o, err := ctl.options(c)
	if err != nil {
		return err
	}
	name := c.Param("name")
	entry, err := demo.New(name, o)
	if errors.Is(err, demo.ErrUnknownChart) {
		return notFound("no chart %q", name)
	} else if err != nil {
		return err
	}

	code := http.StatusOK
	if err := entry.Load(c.Request().Context(), o.Viewport); err != nil {
		le := loadError(name, err)
		c.Logger().Warn(le, ": ", err)
		code = le.Code
	}

	var buf bytes.Buffer
	if err := entry.Render(&buf); err != nil {
		return err
	}
	if entry.Chart.State() != chart.StateReady {
		c.Response().Header().Set("X-Chart-State", entry.Chart.State().String())
	}
	return c.Blob(code, "image/svg+xml", buf.Bytes())
}
