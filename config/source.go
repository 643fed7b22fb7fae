// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Entry is one configuration contribution: a value destined for a target
// location in the tree. All sources produce entries in this shape, which is
// what lets the builder merge files, environment variables, and custom
// sources through a single code path.
type Entry struct {
	// Path holds the segments of the target location. An empty path means a
	// root-level contribution (typically an entire table loaded from a
	// file); a non-empty path like ["database", "host"] targets a nested
	// location (typically a single scalar from one environment variable).
	Path []string

	// Value is the value to merge at the target path.
	Value *Value
}

// RootEntry builds a root-level entry.
func RootEntry(value *Value) Entry {
	return Entry{Value: value}
}

// PathEntry builds an entry targeting a nested location.
func PathEntry(path []string, value *Value) Entry {
	return Entry{Path: path, Value: value}
}

// Source produces configuration entries. Implement it to feed custom
// configuration data into the builder; entries are merged in the order they
// are returned, and sources are consulted in registration order, so later
// sources override earlier ones.
type Source interface {
	Entries() ([]Entry, error)
}
