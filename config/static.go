// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sort"
	"strings"
)

// StaticSource contributes programmatic values keyed by dotted path. It is
// the usual way to register in-code defaults below file and environment
// sources, or to inject overrides in tests.
type StaticSource struct {
	values map[string]any
}

// NewStaticSource creates a static source from dotted paths to plain Go
// values, e.g. {"server.port": 8080, "server.host": "localhost"}.
func NewStaticSource(values map[string]any) *StaticSource {
	return &StaticSource{values: values}
}

// Entries converts the map to pathed entries in sorted key order.
func (s *StaticSource) Entries() ([]Entry, error) {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		value, err := FromAny(normalize(s.values[key]))
		if err != nil {
			return nil, fmt.Errorf("static value at %q: %w", key, err)
		}
		entries = append(entries, PathEntry(strings.Split(key, "."), value))
	}

	return entries, nil
}
