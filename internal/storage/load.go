// Package storage loads the resume document from its fixed data source:
// a JSON or YAML file, a read-only SQLite database, or the embedded sample.
package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kalambet/folio/internal/resume"
)

//go:embed sample/resume.json
var sampleResume []byte

// ErrUnsupportedFormat is returned for data files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported data format")

// Format identifies a serialized resume document.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates the resume at path. An empty path loads the
// embedded sample document.
func Load(path string) (*resume.Resume, error) {
	if path == "" {
		return Sample()
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	var r *resume.Resume
	if format == FormatSQLite {
		store, err := Open(path, true)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		r, err = store.LoadResume()
		if err != nil {
			return nil, err
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening resume data: %w", err)
		}
		defer f.Close()
		r, err = Decode(f, format)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Sample returns the embedded sample resume.
func Sample() (*resume.Resume, error) {
	r, err := Decode(bytes.NewReader(sampleResume), FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding sample resume: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Decode parses a JSON or YAML document. It does not validate.
func Decode(rd io.Reader, format Format) (*resume.Resume, error) {
	var r resume.Resume
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(rd)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&r); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(rd)
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &r, nil
}
