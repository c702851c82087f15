// Package source fetches reference tables from files, HTTP or Postgres.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/udisondev/slotview/internal/table"
)

var (
	// ErrNotFound is returned when the table file or URL does not exist.
	ErrNotFound = errors.New("table not found")

	// ErrBadStatus is returned for non-2xx HTTP responses other than 404.
	ErrBadStatus = errors.New("unexpected HTTP status")

	// ErrTimeout is returned when a source exceeds its load timeout.
	ErrTimeout = errors.New("table load timed out")

	// ErrNoDatabase is returned when a postgres location is used without a database.
	ErrNoDatabase = errors.New("postgres source without database")
)

// PostgresPrefix marks a location stored in the reference_cells table.
const PostgresPrefix = "postgres:"

// Source delivers the rows of one reference table.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	Rows(ctx context.Context) ([]table.Row, error)
}

// RowQuerier reads stored table rows by table name.
type RowQuerier interface {
	Rows(ctx context.Context, tableName string) ([]table.Row, error)
}

// Open picks a Source for a configured location.
// Returns nil, nil for an empty location.
func Open(location string, q RowQuerier) (Source, error) {
	switch {
	case location == "":
		return nil, nil
	case strings.HasPrefix(location, PostgresPrefix):
		if q == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoDatabase, location)
		}
		return &QuerySource{Table: strings.TrimPrefix(location, PostgresPrefix), Querier: q}, nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return &HTTPSource{URL: location}, nil
	default:
		return &FileSource{Path: location}, nil
	}
}

// parseBody parses a table by its file extension: .json is a JSON export, anything else
// is semicolon-delimited text.
func parseBody(name string, data []byte) ([]table.Row, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return table.ParseJSON(data)
	}
	return table.Parse(bytes.NewReader(data))
}

// FileSource reads a table from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return s.Path }

func (s *FileSource) Rows(ctx context.Context) ([]table.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	rows, err := parseBody(s.Path, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return rows, nil
}

// HTTPSource fetches a table over HTTP. Client defaults to http.DefaultClient.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Name() string { return s.URL }

func (s *HTTPSource) Rows(ctx context.Context) ([]table.Row, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", s.URL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.URL)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrBadStatus, s.URL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", s.URL, err)
	}

	rows, err := parseBody(req.URL.Path, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.URL, err)
	}
	return rows, nil
}

// QuerySource reads a table imported into Postgres.
type QuerySource struct {
	Table   string
	Querier RowQuerier
}

func (s *QuerySource) Name() string { return PostgresPrefix + s.Table }

func (s *QuerySource) Rows(ctx context.Context) ([]table.Row, error) {
	rows, err := s.Querier.Rows(ctx, s.Table)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", s.Table, err)
	}
	return rows, nil
}
