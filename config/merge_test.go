// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── root-level merges ─────────────────────────────────────────────────────────

// TestMergeAtPath_RootDeepMerge verifies that merging an overlay table at
// the root preserves untouched keys and deep-merges nested tables.
func TestMergeAtPath_RootDeepMerge(t *testing.T) {
	root := mustValue(t, map[string]any{
		"existing": "keep",
		"nested":   map[string]any{"inner": int64(42)},
	})
	overlay := mustValue(t, map[string]any{
		"new":    "added",
		"nested": map[string]any{"another": true},
	})

	MergeAtPath(root, nil, overlay)

	assert.Equal(t, map[string]any{
		"existing": "keep",
		"new":      "added",
		"nested": map[string]any{
			"inner":   int64(42),
			"another": true,
		},
	}, root.Interface())
}

// TestMergeAtPath_RootScalarReplacesTree verifies the documented policy for
// a non-table value at the root: the entire tree is replaced.
func TestMergeAtPath_RootScalarReplacesTree(t *testing.T) {
	root := mustValue(t, map[string]any{"a": int64(1)})

	MergeAtPath(root, nil, StringValue("flat"))

	s, ok := root.AsString()
	require.True(t, ok)
	assert.Equal(t, "flat", s)
}

// TestMergeAtPath_RootArrayReplacesTree verifies the same policy for arrays.
func TestMergeAtPath_RootArrayReplacesTree(t *testing.T) {
	root := mustValue(t, map[string]any{"a": int64(1)})

	MergeAtPath(root, nil, mustValue(t, []any{int64(1), int64(2)}))

	assert.Equal(t, []any{int64(1), int64(2)}, root.Interface())
}

// TestMergeAtPath_PathedEntryAfterScalarRoot verifies that a pathed entry
// re-establishes a table at a root previously replaced by a scalar.
func TestMergeAtPath_PathedEntryAfterScalarRoot(t *testing.T) {
	root := mustValue(t, map[string]any{"a": int64(1)})
	MergeAtPath(root, nil, StringValue("flat"))

	MergeAtPath(root, []string{"b"}, IntegerValue(2))

	assert.Equal(t, map[string]any{"b": int64(2)}, root.Interface())
}

// ── pathed merges ─────────────────────────────────────────────────────────────

// TestMergeAtPath_CreatesIntermediates verifies that missing intermediate
// tables are created along the path.
func TestMergeAtPath_CreatesIntermediates(t *testing.T) {
	root := TableValue(NewTable())

	MergeAtPath(root, []string{"a", "b", "c"}, IntegerValue(123))

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": int64(123)},
		},
	}, root.Interface())
}

// TestMergeAtPath_ReplacesScalarLeaf verifies that a scalar merged at an
// existing scalar leaf replaces it.
func TestMergeAtPath_ReplacesScalarLeaf(t *testing.T) {
	root := mustValue(t, map[string]any{"key": "old"})

	MergeAtPath(root, []string{"key"}, StringValue("new"))

	assert.Equal(t, map[string]any{"key": "new"}, root.Interface())
}

// TestMergeAtPath_MergesTablesAtLeaf verifies that a table merged at a leaf
// whose existing value is also a table deep-merges rather than replaces.
func TestMergeAtPath_MergesTablesAtLeaf(t *testing.T) {
	root := mustValue(t, map[string]any{
		"config": map[string]any{"a": int64(1)},
	})

	MergeAtPath(root, []string{"config"}, mustValue(t, map[string]any{"b": int64(2)}))

	assert.Equal(t, map[string]any{
		"config": map[string]any{"a": int64(1), "b": int64(2)},
	}, root.Interface())
}

// TestMergeAtPath_ArraysReplaceWholesale verifies that arrays are never
// concatenated or merged element-wise.
func TestMergeAtPath_ArraysReplaceWholesale(t *testing.T) {
	root := mustValue(t, map[string]any{
		"list": []any{int64(1), int64(2), int64(3)},
	})

	MergeAtPath(root, []string{"list"}, mustValue(t, []any{int64(9)}))

	assert.Equal(t, map[string]any{"list": []any{int64(9)}}, root.Interface())
}

// TestMergeAtPath_PathWinsOverScalarIntermediate verifies that navigating
// through a previously merged scalar discards it in favor of a table: the
// caller explicitly targeted a nested location.
func TestMergeAtPath_PathWinsOverScalarIntermediate(t *testing.T) {
	root := mustValue(t, map[string]any{"server": "oops"})

	MergeAtPath(root, []string{"server", "host"}, StringValue("localhost"))

	assert.Equal(t, map[string]any{
		"server": map[string]any{"host": "localhost"},
	}, root.Interface())
}

// TestMergeAtPath_TableOverScalarLeaf verifies that a table replaces a
// scalar at the final segment (no deep merge possible).
func TestMergeAtPath_TableOverScalarLeaf(t *testing.T) {
	root := mustValue(t, map[string]any{"key": int64(1)})

	MergeAtPath(root, []string{"key"}, mustValue(t, map[string]any{"a": int64(2)}))

	assert.Equal(t, map[string]any{
		"key": map[string]any{"a": int64(2)},
	}, root.Interface())
}

// TestMergeAtPath_ScalarOverTableLeaf verifies the inverse: a scalar
// replaces an existing table at the final segment.
func TestMergeAtPath_ScalarOverTableLeaf(t *testing.T) {
	root := mustValue(t, map[string]any{
		"key": map[string]any{"a": int64(2)},
	})

	MergeAtPath(root, []string{"key"}, IntegerValue(7))

	assert.Equal(t, map[string]any{"key": int64(7)}, root.Interface())
}

// ── determinism ───────────────────────────────────────────────────────────────

// TestMergeAtPath_Idempotence verifies that applying the same entry sequence
// twice yields a structurally identical tree both times.
func TestMergeAtPath_Idempotence(t *testing.T) {
	entries := func() []Entry {
		return []Entry{
			RootEntry(mustValue(t, map[string]any{
				"server": map[string]any{"host": "localhost", "port": int64(8080)},
			})),
			PathEntry([]string{"server", "port"}, IntegerValue(9090)),
			PathEntry([]string{"debug"}, BoolValue(true)),
			RootEntry(mustValue(t, map[string]any{
				"server": map[string]any{"host": "example.com"},
			})),
		}
	}

	apply := func() *Value {
		root := TableValue(NewTable())
		for _, entry := range entries() {
			MergeAtPath(root, entry.Path, entry.Value)
		}
		return root
	}

	first := apply()
	second := apply()

	assert.Equal(t, first.Interface(), second.Interface())
	assert.Equal(t, map[string]any{
		"server": map[string]any{"host": "example.com", "port": int64(9090)},
		"debug":  true,
	}, first.Interface())
}

// TestMergeAtPath_OrderDecidesWinner verifies that entry order is the sole
// determinant of which value wins at a leaf.
func TestMergeAtPath_OrderDecidesWinner(t *testing.T) {
	root := TableValue(NewTable())
	MergeAtPath(root, []string{"winner"}, StringValue("first"))
	MergeAtPath(root, []string{"winner"}, StringValue("second"))

	assert.Equal(t, map[string]any{"winner": "second"}, root.Interface())
}
