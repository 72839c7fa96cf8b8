package data

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
)

// A Source produces the records of one dataset.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
}

// Parser turns the raw bytes of a dataset into records.
type Parser func(io.Reader) ([]Record, error)

// FetchError reports that a dataset could not be loaded or parsed.
type FetchError struct {
	Source string // file name or URL
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]Record, error)

func (f SourceFunc) Load(ctx context.Context) ([]Record, error) { return f(ctx) }

// Static returns a Source which always yields records.
func Static(records []Record) Source {
	return SourceFunc(func(context.Context) ([]Record, error) { return records, nil })
}

// FileSource reads a dataset from a file system, typically the embedded
// datasets.
type FileSource struct {
	FS    fs.FS
	Name  string
	Parse Parser
}

func (s FileSource) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: s.Name, Err: err}
	}
	f, err := s.FS.Open(s.Name)
	if err != nil {
		return nil, &FetchError{Source: s.Name, Err: err}
	}
	defer f.Close()

	records, err := s.Parse(f)
	if err != nil {
		return nil, &FetchError{Source: s.Name, Err: err}
	}
	return records, nil
}

// HTTPSource fetches a dataset with a GET request. The request is bound to
// the context passed to Load.
type HTTPSource struct {
	URL    string
	Client *http.Client // nil means http.DefaultClient
	Parse  Parser
}

func (s HTTPSource) Load(ctx context.Context) ([]Record, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &FetchError{Source: s.URL, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Source: s.URL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	records, err := s.Parse(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: s.URL, Err: err}
	}
	return records, nil
}
