package data

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	fsys := fstest.MapFS{
		"dogs.json":   {Data: []byte(`[{"country": "Japan", "DogOwnershipTotalDogs2021": 8000000}]`)},
		"broken.json": {Data: []byte(`[{`)},
	}

	records, err := FileSource{FS: fsys, Name: "dogs.json", Parse: ParseDogOwnership}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	for _, name := range []string{"missing.json", "broken.json"} {
		t.Run(name, func(t *testing.T) {
			_, err := FileSource{FS: fsys, Name: name, Parse: ParseDogOwnership}.Load(context.Background())
			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, name, fe.Source)
		})
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/paintings.csv":
			fmt.Fprint(w, paintingCSV)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := HTTPSource{URL: srv.URL + "/paintings.csv", Client: srv.Client(), Parse: ParsePaintings}
	records, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)

	src.URL = srv.URL + "/missing.csv"
	_, err = src.Load(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), "404")
}

func TestHTTPSourceCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HTTPSource{URL: srv.URL, Client: srv.Client(), Parse: ParsePaintings}.Load(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
