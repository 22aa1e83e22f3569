package dataset

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
)

// Fetcher downloads a remote dataset
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// IsRemote reports whether source is an http(s) URL rather than a file path
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// URLLoader returns a LoadFunc downloading rawURL on every reload.
// The format comes from the extension of the URL path, query excluded.
func URLLoader(f Fetcher, rawURL string, opts Options) LoadFunc {
	return func(ctx context.Context) (*Table, error) {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse dataset url: %w", err)
		}

		body, err := f.Fetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("fetch dataset: %w", err)
		}

		t, err := Decode(bytes.NewReader(body), path.Base(u.Path), opts)
		if err != nil {
			return nil, err
		}
		t.source = rawURL
		return t, nil
	}
}

// SourceLoader picks URLLoader or FileLoader for source
func SourceLoader(f Fetcher, source string, opts Options) LoadFunc {
	if IsRemote(source) {
		return URLLoader(f, source, opts)
	}
	return FileLoader(source, opts)
}
