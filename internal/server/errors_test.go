package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vdobler/facet/chart"
	"github.com/vdobler/facet/chart/data"
)

func TestLoadError(t *testing.T) {
	fetch := &data.FetchError{Source: "paintings.csv", Err: errors.New("boom")}
	for _, tc := range []struct {
		name string
		err  error
		code int
	}{
		{"fetch", fetch, http.StatusBadGateway},
		{"wrapped fetch", fmt.Errorf("load: %w", fetch), http.StatusBadGateway},
		{"timeout", &data.FetchError{Source: "x", Err: context.DeadlineExceeded}, http.StatusBadGateway},
		{"layout", chart.ErrDegenerateDimensions, http.StatusInternalServerError},
		{"missing values", fmt.Errorf("y: %w", chart.ErrMissingValue), http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			re := loadError("dog-bar", tc.err)
			assert.Equal(t, tc.code, re.Code)
			assert.ErrorIs(t, re, tc.err)
			assert.Equal(t, fmt.Sprintf("Error %d: chart dog-bar failed to load", tc.code), re.Error())
		})
	}
}

func TestRequestErrors(t *testing.T) {
	assert.Equal(t, "Error 400: invalid viewport 0x5", badRequest("invalid viewport %gx%g", 0.0, 5.0).Error())
	nf := notFound("no chart %q", "pie")
	assert.Equal(t, http.StatusNotFound, nf.Code)
	assert.Nil(t, errors.Unwrap(nf))
}
