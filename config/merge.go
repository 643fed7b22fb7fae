// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// MergeAtPath merges value into the tree rooted at root, mutating root in
// place. It is a total function: every combination of existing and incoming
// values has defined behavior and none of them fail.
//
// The contract, case by case:
//   - empty path, value is a table: deep-merge the value's keys into the
//     root table (nested tables merge recursively, everything else replaces;
//     arrays always replace wholesale, never concatenate).
//   - empty path, value is not a table: the entire root is replaced by the
//     scalar or array. Unusual, but a source that contributes a bare scalar
//     at the root explicitly asked for it, so the data is not dropped.
//   - non-empty path: navigate from the root one segment at a time, creating
//     empty tables for missing intermediate keys and replacing non-table
//     intermediates with empty tables (the caller targeted a nested location,
//     so the path wins over a previously merged scalar). At the final
//     segment, tables deep-merge and anything else replaces.
//
// Applying the same entry sequence twice yields a structurally identical
// tree; entry order is the only factor deciding which value wins at a leaf.
func MergeAtPath(root *Value, path []string, value *Value) {
	if len(path) == 0 {
		base, baseIsTable := root.AsTable()
		overlay, overlayIsTable := value.AsTable()
		if baseIsTable && overlayIsTable {
			deepMerge(base, overlay)
			return
		}
		// Scalar or array at the root: full replacement.
		*root = *value
		return
	}

	// A prior root replacement may have left a non-table at the root; a
	// pathed entry re-establishes a table there.
	tab, ok := root.AsTable()
	if !ok {
		*root = *TableValue(NewTable())
		tab, _ = root.AsTable()
	}

	mergeInto(tab, path, value)
}

func mergeInto(tab *Table, path []string, value *Value) {
	first, rest := path[0], path[1:]

	if len(rest) == 0 {
		if existing, ok := tab.Get(first); ok {
			base, baseIsTable := existing.AsTable()
			overlay, overlayIsTable := value.AsTable()
			if baseIsTable && overlayIsTable {
				deepMerge(base, overlay)
				return
			}
		}
		tab.Set(first, value)
		return
	}

	nested, ok := tab.Get(first)
	if !ok {
		nested = TableValue(NewTable())
		tab.Set(first, nested)
	} else if nested.Kind() != KindTable {
		nested = TableValue(NewTable())
		tab.Set(first, nested)
	}

	nestedTab, _ := nested.AsTable()
	mergeInto(nestedTab, rest, value)
}

// deepMerge merges overlay into base. For each overlay key: table-over-table
// merges recursively, any other pairing replaces.
func deepMerge(base, overlay *Table) {
	for _, key := range overlay.Keys() {
		incoming, _ := overlay.Get(key)

		if existing, ok := base.Get(key); ok {
			baseTab, baseIsTable := existing.AsTable()
			overlayTab, overlayIsTable := incoming.AsTable()
			if baseIsTable && overlayIsTable {
				deepMerge(baseTab, overlayTab)
				continue
			}
		}
		base.Set(key, incoming)
	}
}
