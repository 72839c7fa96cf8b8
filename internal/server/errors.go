package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vdobler/facet/chart/data"
)

// RequestError is an error whose message is shown to the client together
// with its status code.
type RequestError struct {
	Code    int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Code, e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }

func badRequest(format string, args ...any) *RequestError {
	return &RequestError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *RequestError {
	return &RequestError{Code: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// loadError classifies a chart which failed to load: a dataset that could
// not be fetched is a bad gateway, anything else an internal error.
func loadError(chart string, err error) *RequestError {
	code := http.StatusInternalServerError
	var fe *data.FetchError
	if errors.As(err, &fe) {
		code = http.StatusBadGateway
	}
	return &RequestError{Code: code, Message: fmt.Sprintf("chart %s failed to load", chart), Err: err}
}
