// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sort"
	"time"
)

// Kind classifies the variant held by a Value.
type Kind uint8

const (
	// KindTable is a string-keyed mapping of nested values.
	KindTable Kind = iota
	// KindArray is an ordered sequence of values.
	KindArray
	// KindString is a text scalar; the only kind that may contain
	// ${path} references.
	KindString
	// KindInteger is a 64-bit signed integer scalar.
	KindInteger
	// KindFloat is a 64-bit floating-point scalar.
	KindFloat
	// KindBool is a boolean scalar.
	KindBool
	// KindDatetime is a timestamp scalar, carried through merging and
	// resolution unmodified.
	KindDatetime
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Value is the recursive data model every configuration source contributes
// to and every engine operates on. It is a closed tagged union: exactly one
// variant is populated, selected by Kind.
//
// Values are handled by pointer so that merging and reference resolution can
// mutate the tree in place. The tree is always finite and acyclic; reference
// "cycles" are a property of string contents, not of the structure.
type Value struct {
	kind Kind

	tab *Table
	arr []*Value
	str string
	i   int64
	f   float64
	b   bool
	t   time.Time
}

// Constructors.

// TableValue wraps an existing table. A nil table is replaced with an empty
// one so the variant invariant holds.
func TableValue(t *Table) *Value {
	if t == nil {
		t = NewTable()
	}
	return &Value{kind: KindTable, tab: t}
}

// ArrayValue builds an array value from the given elements.
func ArrayValue(items ...*Value) *Value {
	return &Value{kind: KindArray, arr: items}
}

// StringValue builds a string scalar.
func StringValue(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// IntegerValue builds an integer scalar.
func IntegerValue(i int64) *Value {
	return &Value{kind: KindInteger, i: i}
}

// FloatValue builds a float scalar.
func FloatValue(f float64) *Value {
	return &Value{kind: KindFloat, f: f}
}

// BoolValue builds a boolean scalar.
func BoolValue(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// DatetimeValue builds a datetime scalar.
func DatetimeValue(t time.Time) *Value {
	return &Value{kind: KindDatetime, t: t}
}

// Kind reports which variant the value holds.
func (v *Value) Kind() Kind {
	return v.kind
}

// Accessors. Each returns the variant payload and an ok flag that is false
// when the value holds a different kind.

func (v *Value) AsTable() (*Table, bool) {
	if v.kind == KindTable {
		return v.tab, true
	}
	return nil, false
}

func (v *Value) AsArray() ([]*Value, bool) {
	if v.kind == KindArray {
		return v.arr, true
	}
	return nil, false
}

func (v *Value) AsString() (string, bool) {
	if v.kind == KindString {
		return v.str, true
	}
	return "", false
}

func (v *Value) AsInteger() (int64, bool) {
	if v.kind == KindInteger {
		return v.i, true
	}
	return 0, false
}

func (v *Value) AsFloat() (float64, bool) {
	if v.kind == KindFloat {
		return v.f, true
	}
	return 0, false
}

func (v *Value) AsBool() (bool, bool) {
	if v.kind == KindBool {
		return v.b, true
	}
	return false, false
}

func (v *Value) AsDatetime() (time.Time, bool) {
	if v.kind == KindDatetime {
		return v.t, true
	}
	return time.Time{}, false
}

// Interface converts the value to plain Go data: *Table becomes
// map[string]any, arrays become []any, scalars become their native types.
// Used to hand the resolved tree to the decoding step.
func (v *Value) Interface() any {
	switch v.kind {
	case KindTable:
		m := make(map[string]any, v.tab.Len())
		for _, key := range v.tab.Keys() {
			item, _ := v.tab.Get(key)
			m[key] = item.Interface()
		}
		return m
	case KindArray:
		items := make([]any, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Interface()
		}
		return items
	case KindString:
		return v.str
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindDatetime:
		return v.t
	default:
		return nil
	}
}

// Table is a string-keyed mapping of values that remembers insertion order.
// Merge semantics never depend on the order, but deterministic iteration
// keeps output and diagnostics stable across runs.
type Table struct {
	keys  []string
	items map[string]*Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{items: make(map[string]*Value)}
}

// Get returns the value stored under key and whether it exists.
func (t *Table) Get(key string) (*Value, bool) {
	v, ok := t.items[key]
	return v, ok
}

// Set stores value under key, appending the key to the iteration order on
// first insertion. Overwriting an existing key keeps its original position.
func (t *Table) Set(key string, value *Value) {
	if _, ok := t.items[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.items[key] = value
}

// Len reports the number of keys in the table.
func (t *Table) Len() int {
	return len(t.items)
}

// Keys returns the table's keys in insertion order. The slice is a copy.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// FromAny converts plain Go data produced by a file parser into a Value.
// Maps convert with sorted keys: Go map iteration order is randomized, and
// sorting keeps the resulting table order deterministic.
func FromAny(data any) (*Value, error) {
	switch val := data.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		tab := NewTable()
		for _, key := range keys {
			item, err := FromAny(val[key])
			if err != nil {
				return nil, err
			}
			tab.Set(key, item)
		}
		return TableValue(tab), nil
	case []any:
		items := make([]*Value, len(val))
		for i, elem := range val {
			item, err := FromAny(elem)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return ArrayValue(items...), nil
	case string:
		return StringValue(val), nil
	case int:
		return IntegerValue(int64(val)), nil
	case int64:
		return IntegerValue(val), nil
	case uint64:
		return IntegerValue(int64(val)), nil
	case float64:
		return FloatValue(val), nil
	case bool:
		return BoolValue(val), nil
	case time.Time:
		return DatetimeValue(val), nil
	default:
		return nil, &UnsupportedValueError{Value: data}
	}
}
