// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileSource loads one configuration file and contributes it as a single
// root-level entry. The format is chosen by file extension: .toml, .yaml,
// .yml, or .json.
//
// Files can be marked required or optional. A required file that does not
// exist fails the build; an optional one is silently skipped.
type FileSource struct {
	path     string
	required bool
}

// NewFileSource creates a file source for path. When required is true the
// build fails if the file does not exist.
func NewFileSource(path string, required bool) *FileSource {
	return &FileSource{path: path, required: required}
}

// Entries loads and parses the file. A missing optional file produces no
// entries and no error.
func (s *FileSource) Entries() ([]Entry, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if s.required {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, s.path)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file %q: %w", s.path, err)
	}

	data, err := parseFile(s.path, raw)
	if err != nil {
		return nil, err
	}

	value, err := FromAny(normalize(data))
	if err != nil {
		return nil, fmt.Errorf("error converting config file %q: %w", s.path, err)
	}

	return []Entry{RootEntry(value)}, nil
}

func parseFile(path string, raw []byte) (map[string]any, error) {
	data := make(map[string]any)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("error parsing config file %q: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("error parsing config file %q: %w", path, err)
		}
	case ".json":
		dec := json.NewDecoder(strings.NewReader(string(raw)))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("error parsing config file %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", path)
	}

	return data, nil
}

// normalize rewrites parser-specific leaf types into the small set FromAny
// accepts: json.Number becomes int64 or float64, go-toml local date/time
// types become time.Time or their canonical text.
func normalize(data any) any {
	switch val := data.(type) {
	case map[string]any:
		for key, item := range val {
			val[key] = normalize(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case toml.LocalDateTime:
		return val.AsTime(time.Local)
	case toml.LocalDate:
		return val.AsTime(time.Local)
	case toml.LocalTime:
		return val.String()
	default:
		return data
	}
}
