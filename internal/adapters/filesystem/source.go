package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"promptbuilder/internal/debug"
	"promptbuilder/internal/ports"
)

// NoDataMessage is returned when none of the data files could be loaded
const NoDataMessage = "No data loaded"

// DataFile names a category and the JSON file holding its value
type DataFile struct {
	Name string
	File string // relative to the source directory unless absolute
}

// Source implements ports.TaxonomySource by combining one JSON file per
// category into a single mapping
type Source struct {
	dir   string
	files []DataFile
}

// Ensure Source implements TaxonomySource
var _ ports.TaxonomySource = (*Source)(nil)

// NewSource creates a source reading files from dir
func NewSource(dir string, files []DataFile) *Source {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[1:])
	}
	return &Source{dir: dir, files: files}
}

type loadResult struct {
	raw []byte
	err error
}

// Fetch reads every configured file concurrently. Missing or invalid files are
// logged and skipped; categories keep their configured order.
func (s *Source) Fetch(ctx context.Context) (*ports.FetchResponse, error) {
	results, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	loaded := 0
	for i, f := range s.files {
		r := results[i]
		if r.err != nil {
			log.Printf("promptbuilder: skipping category %s: %v", f.Name, r.err)
			continue
		}

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("encode category name %q: %w", f.Name, err)
		}
		if loaded > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(r.raw)
		loaded++
		debug.Log("loaded data category: %s", f.Name)
	}
	buf.WriteByte('}')

	if loaded == 0 {
		return &ports.FetchResponse{Success: false, Error: NoDataMessage}, nil
	}
	debug.Log("loaded %d data categories", loaded)
	return &ports.FetchResponse{Success: true, Data: buf.Bytes()}, nil
}

// loadAll reads the files using errgroup. Individual file errors are captured
// in the results; only cancellation fails the whole load.
func (s *Source) loadAll(ctx context.Context) ([]loadResult, error) {
	results := make([]loadResult, len(s.files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, f := range s.files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := s.readFile(f)
			results[i] = loadResult{raw: raw, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Source) readFile(f DataFile) ([]byte, error) {
	path := f.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON in %s", path)
	}
	return data, nil
}
