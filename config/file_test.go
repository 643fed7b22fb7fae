// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// writeConfigFile writes contents under t.TempDir with the given file name
// and returns the full path.
func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// rootTable asserts that entries is a single root-level entry holding a
// table and returns its plain-Go form.
func rootTable(t *testing.T, entries []Entry) map[string]any {
	t.Helper()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Path)
	data, ok := entries[0].Value.Interface().(map[string]any)
	require.True(t, ok)
	return data
}

// ── formats ───────────────────────────────────────────────────────────────────

// TestFileSource_TOML verifies TOML parsing including nested tables, arrays
// and datetimes.
func TestFileSource_TOML(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `
released = 2024-01-02T03:04:05Z

[server]
host = "localhost"
port = 8080
tags = ["a", "b"]
`)

	entries, err := NewFileSource(path, true).Entries()
	require.NoError(t, err)

	data := rootTable(t, entries)
	assert.Equal(t, map[string]any{
		"released": time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		"server": map[string]any{
			"host": "localhost",
			"port": int64(8080),
			"tags": []any{"a", "b"},
		},
	}, data)
}

// TestFileSource_YAML verifies YAML parsing for both .yaml and .yml
// extensions.
func TestFileSource_YAML(t *testing.T) {
	contents := `
server:
  host: localhost
  port: 8080
debug: true
`
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := writeConfigFile(t, name, contents)

		entries, err := NewFileSource(path, true).Entries()
		require.NoError(t, err)

		data := rootTable(t, entries)
		assert.Equal(t, map[string]any{
			"server": map[string]any{"host": "localhost", "port": int64(8080)},
			"debug":  true,
		}, data)
	}
}

// TestFileSource_JSON verifies JSON parsing and that whole numbers land in
// the integer variant while fractional ones stay floats.
func TestFileSource_JSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
		"name": "demo",
		"port": 8080,
		"ratio": 0.5,
		"nested": {"ok": true}
	}`)

	entries, err := NewFileSource(path, true).Entries()
	require.NoError(t, err)

	data := rootTable(t, entries)
	assert.Equal(t, map[string]any{
		"name":   "demo",
		"port":   int64(8080),
		"ratio":  0.5,
		"nested": map[string]any{"ok": true},
	}, data)
}

// TestFileSource_DeterministicKeyOrder verifies that tables parsed from a
// file iterate in sorted key order regardless of declaration order.
func TestFileSource_DeterministicKeyOrder(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"zebra": 1, "alpha": 2, "mid": 3}`)

	entries, err := NewFileSource(path, true).Entries()
	require.NoError(t, err)

	tab, ok := entries[0].Value.AsTable()
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "mid", "zebra"}, tab.Keys())
}

// ── required/optional semantics ───────────────────────────────────────────────

// TestFileSource_RequiredMissing verifies that a required file that does not
// exist fails with ErrFileNotFound.
func TestFileSource_RequiredMissing(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "nope.toml"), true)

	_, err := source.Entries()
	assert.ErrorIs(t, err, ErrFileNotFound)
}

// TestFileSource_OptionalMissing verifies that a missing optional file is
// silently skipped.
func TestFileSource_OptionalMissing(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "nope.toml"), false)

	entries, err := source.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// ── failure modes ─────────────────────────────────────────────────────────────

// TestFileSource_ParseError verifies that malformed contents are reported
// with the file path.
func TestFileSource_ParseError(t *testing.T) {
	path := writeConfigFile(t, "bad.toml", "this is not toml ===")

	_, err := NewFileSource(path, true).Entries()
	require.Error(t, err)
	assert.ErrorContains(t, err, path)
}

// TestFileSource_UnsupportedExtension verifies the error for unknown file
// formats.
func TestFileSource_UnsupportedExtension(t *testing.T) {
	path := writeConfigFile(t, "config.ini", "key=value")

	_, err := NewFileSource(path, true).Entries()
	assert.ErrorContains(t, err, "unsupported config file format")
}
