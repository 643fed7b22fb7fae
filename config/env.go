// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// EnvSource contributes entries from environment variables.
//
// Variables are mapped to tree paths by stripping the prefix and separator,
// splitting the remainder on the separator, and lowercasing the segments.
// With prefix "APP" and separator "__":
//
//	APP__DATABASE__HOST=localhost -> ["database", "host"] = "localhost"
//	APP__SERVER__PORT=8080        -> ["server", "port"]   = 8080
//
// Values are coerced to the most specific scalar: boolean for
// case-insensitive true/false, integer for an optional minus followed by
// digits, float when the text contains a decimal point and parses, string
// otherwise.
type EnvSource struct {
	prefix    string
	separator string
}

// NewEnvSource creates an environment variable source. prefix identifies the
// relevant variables (e.g. "MYAPP") and separator splits path segments
// (e.g. "__").
func NewEnvSource(prefix, separator string) *EnvSource {
	return &EnvSource{prefix: prefix, separator: separator}
}

// Entries scans the process environment. Entries are emitted in variable
// name order so repeated builds see the same merge order.
func (s *EnvSource) Entries() ([]Entry, error) {
	prefixWithSep := s.prefix + s.separator

	vars := os.Environ()
	sort.Strings(vars)

	var entries []Entry
	for _, kv := range vars {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}

		pathText, ok := strings.CutPrefix(key, prefixWithSep)
		if !ok || pathText == "" {
			continue
		}

		segments := strings.Split(pathText, s.separator)
		path := make([]string, len(segments))
		for i, seg := range segments {
			path[i] = strings.ToLower(seg)
		}

		entries = append(entries, PathEntry(path, coerceScalar(value)))
	}

	return entries, nil
}

// coerceScalar converts an environment variable's text to the most specific
// scalar value.
func coerceScalar(s string) *Value {
	if strings.EqualFold(s, "true") {
		return BoolValue(true)
	}
	if strings.EqualFold(s, "false") {
		return BoolValue(false)
	}

	if looksLikeInteger(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntegerValue(i)
		}
	}

	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return FloatValue(f)
		}
	}

	return StringValue(s)
}

// looksLikeInteger reports whether s is an optional minus followed by one or
// more ASCII digits. Guards the integer parse so strings like "1e3" stay
// strings.
func looksLikeInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
