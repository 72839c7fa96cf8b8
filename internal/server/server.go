// Package server serves the demo page and the single charts over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/vdobler/facet/chart/internal/config"
	"github.com/vdobler/facet/chart/internal/demo"
)

// New returns the echo instance serving the page. Requests are logged to
// logger.
func New(conf config.Config, opts demo.Options, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		ed := errorData{Code: http.StatusInternalServerError, Message: "Something went wrong."}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			ed.Code = he.Code
			if he.Message != nil {
				ed.Message = fmt.Sprintf("%v", he.Message)
			}
		}

		var re *RequestError
		if errors.As(err, &re) {
			ed.Code, ed.Message = re.Code, re.Message
		}

		if !c.Response().Committed {
			if renderErr := c.Render(ed.Code, "error", ed); renderErr != nil {
				c.Logger().Error(renderErr)
			}
		}
	}
	e.HideBanner = true
	e.HidePort = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	if conf.FetchTimeoutSeconds != 0 {
		// Leave the charts time to render their error after a fetch timeout.
		e.Use(middleware.ContextTimeout(conf.FetchTimeout() + 5*time.Second))
	}
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogRemoteIP: true,
		LogLatency:  true,
		HandleError: true, // forwards error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.LogAttrs(context.Background(), slog.LevelInfo, "REQUEST",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
					slog.String("remote_ip", v.RemoteIP),
				)
			} else {
				logger.LogAttrs(context.Background(), slog.LevelError, "REQUEST_ERROR",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
					slog.String("remote_ip", v.RemoteIP),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
				)
			}
			return nil
		},
	}))

	e.Renderer = NewTemplateRenderer()

	opts.Logger = logger
	controller := NewController(conf, opts)
	e.GET("/", controller.GetPage)
	e.GET("/charts/:name", controller.GetChart).Name = "chart"

	return e
}

// Start serves e on addr until ctx is canceled.
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errc := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", addr)
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
