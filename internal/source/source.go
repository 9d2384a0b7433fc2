// Package source loads raw cultural-fact rows from tabular sources: local
// CSV files, remote CSV documents, or HTML tables. Failures degrade to an
// empty row set so the assistant can still answer ungrounded.
package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urithi-ke/urithi/internal/model"
)

// Source yields the raw fact rows for one corpus build
type Source interface {
	// Rows returns the raw rows in source order
	Rows(ctx context.Context) ([]model.RawFact, error)

	// Location describes where the rows come from, for logging
	Location() string
}

// Open returns a source for the given location: an http(s) URL fetches the
// document remotely, anything else is read as a local file. The format is
// chosen by extension / content type (.html/.htm parse as an HTML table,
// everything else as CSV).
func Open(location string, fetcher *Fetcher) (Source, error) {
	if location == "" {
		return nil, fmt.Errorf("corpus location is empty")
	}

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if fetcher == nil {
			return nil, fmt.Errorf("remote corpus %s requires a fetcher", location)
		}
		return &remoteSource{url: location, fetcher: fetcher}, nil
	}

	return &fileSource{path: location}, nil
}

// fileSource reads a corpus document from the local filesystem
type fileSource struct {
	path string
}

func (s *fileSource) Location() string { return s.path }

func (s *fileSource) Rows(ctx context.Context) ([]model.RawFact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return parseByFormat(data, s.path, "")
}

// remoteSource fetches a corpus document over HTTP
type remoteSource struct {
	url     string
	fetcher *Fetcher
}

func (s *remoteSource) Location() string { return s.url }

func (s *remoteSource) Rows(ctx context.Context) ([]model.RawFact, error) {
	data, contentType, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus: %w", err)
	}
	return parseByFormat(data, s.url, contentType)
}

// parseByFormat dispatches on file extension and content type
func parseByFormat(data []byte, location, contentType string) ([]model.RawFact, error) {
	lower := strings.ToLower(location)
	if strings.Contains(contentType, "text/html") ||
		strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		return ParseHTMLTable(strings.NewReader(string(data)))
	}
	return ParseCSV(strings.NewReader(string(data)))
}

// LoadRows resolves a source and reads its rows, degrading to an empty set
// on any failure. Callers treat an empty corpus as "no grounding available".
func LoadRows(ctx context.Context, location string, fetcher *Fetcher, verbose bool) []model.RawFact {
	src, err := Open(location, fetcher)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Warning: corpus unavailable: %v\n", err)
		}
		return []model.RawFact{}
	}

	rows, err := src.Rows(ctx)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "Warning: corpus load failed: %v\n", err)
		}
		return []model.RawFact{}
	}
	return rows
}
