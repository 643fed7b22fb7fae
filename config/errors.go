// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the resolution engine and the file source.
// All resolution errors are fatal to the configuration build: no value is
// silently left unresolved.
var (
	// ErrCircularReference indicates that resolution did not reach a fixed
	// point within the pass ceiling, which means a reference cycle (or a
	// chain too deep to distinguish from one).
	ErrCircularReference = errors.New("circular reference detected in configuration")

	// ErrUnclosedReference indicates a "${" with no matching "}" before the
	// end of the string.
	ErrUnclosedReference = errors.New(`unclosed reference (missing "}")`)

	// ErrFileNotFound indicates that a required configuration file does not
	// exist.
	ErrFileNotFound = errors.New("required config file not found")
)

// ReferenceNotFoundError reports a dotted reference path that does not lead
// to any value in the tree.
type ReferenceNotFoundError struct {
	// Path is the dotted path text as written inside ${...}.
	Path string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("referenced path not found: %s", e.Path)
}

// InvalidReferencePathError reports a reference body that is empty or
// contains an empty segment (e.g. "a..b").
type InvalidReferencePathError struct {
	// Ref is the raw reference body as written inside ${...}.
	Ref string
}

func (e *InvalidReferencePathError) Error() string {
	return fmt.Sprintf("invalid reference path: %q", e.Ref)
}

// NonScalarReferenceError reports a reference that resolves to a table or an
// array; only scalars may be interpolated into strings.
type NonScalarReferenceError struct {
	// Path is the dotted path text as written inside ${...}.
	Path string
}

func (e *NonScalarReferenceError) Error() string {
	return fmt.Sprintf("cannot reference non-scalar value: %s", e.Path)
}

// UnsupportedValueError reports parser output that has no corresponding
// Value variant.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported configuration value of type %T", e.Value)
}
