// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"strings"
	"time"
)

// maxResolvePasses bounds the fixed-point loop. A genuine reference cycle
// keeps every pass substituting something, so hitting the ceiling is
// reported as a circular reference. A legitimate chain deeper than the
// ceiling is indistinguishable from a cycle and reported the same way; a
// precise detector would track a visitation set per substitution chain, but
// the ceiling matches the established behavior of the format.
const maxResolvePasses = 100

// ResolveReferences rewrites every ${dotted.path} reference inside string
// scalars of the tree rooted at root, mutating strings in place.
//
// A reference's target may itself contain an unresolved reference and the
// tree has no traversal order matching dependency order, so full passes
// repeat until one makes zero substitutions (the fixed point). Lookups read
// the current tree state, so chains shorten as passes progress.
//
// Resolution is strict: the first error anywhere aborts immediately and no
// partially resolved tree is reported as success.
func ResolveReferences(root *Value) error {
	for range maxResolvePasses {
		substitutions, err := resolveValue(root, root)
		if err != nil {
			return err
		}
		if substitutions == 0 {
			return nil
		}
	}

	return ErrCircularReference
}

// resolveValue walks one value recursively and returns the number of
// substitutions performed beneath it.
func resolveValue(v *Value, root *Value) (int, error) {
	switch v.Kind() {
	case KindTable:
		tab, _ := v.AsTable()
		count := 0
		for _, key := range tab.Keys() {
			item, _ := tab.Get(key)
			n, err := resolveValue(item, root)
			if err != nil {
				return 0, err
			}
			count += n
		}
		return count, nil
	case KindArray:
		arr, _ := v.AsArray()
		count := 0
		for _, item := range arr {
			n, err := resolveValue(item, root)
			if err != nil {
				return 0, err
			}
			count += n
		}
		return count, nil
	case KindString:
		resolved, n, err := resolveString(v.str, root)
		if err != nil {
			return 0, err
		}
		v.str = resolved
		return n, nil
	default:
		// Non-string scalars cannot contain references.
		return 0, nil
	}
}

// resolveString performs a single left-to-right scan over s, splicing in
// referenced values and collapsing $$ escapes. Returns the rewritten string
// and the number of references substituted.
//
// Scan rules:
//   - "$$" emits one literal "$" (so "$${x}" renders as "${x}": only the two
//     dollars are consumed, the rest is copied verbatim);
//   - "${" opens a reference running to the next "}"; a missing "}" is an
//     unclosed-reference error;
//   - "$" followed by anything else, or ending the string, is literal;
//   - every other byte is copied verbatim.
func resolveString(s string, root *Value) (string, int, error) {
	if strings.IndexByte(s, '$') < 0 {
		return s, 0, nil
	}

	var out strings.Builder
	out.Grow(len(s))
	substitutions := 0

	for i := 0; i < len(s); {
		if s[i] != '$' {
			out.WriteByte(s[i])
			i++
			continue
		}

		if i+1 < len(s) && s[i+1] == '$' {
			out.WriteByte('$')
			i += 2
			continue
		}

		if i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return "", 0, ErrUnclosedReference
			}
			ref := s[i+2 : i+2+end]

			target, err := lookupPath(root, ref)
			if err != nil {
				return "", 0, err
			}
			text, err := valueToString(target, ref)
			if err != nil {
				return "", 0, err
			}

			out.WriteString(text)
			substitutions++
			i += 2 + end + 1
			continue
		}

		// Lone dollar, not an escape and not a reference opener.
		out.WriteByte('$')
		i++
	}

	return out.String(), substitutions, nil
}

// lookupPath walks a dotted reference path from the root of the tree.
func lookupPath(root *Value, ref string) (*Value, error) {
	parts := strings.Split(ref, ".")
	for _, part := range parts {
		if part == "" {
			return nil, &InvalidReferencePathError{Ref: ref}
		}
	}

	current := root
	for _, part := range parts {
		tab, ok := current.AsTable()
		if !ok {
			return nil, &ReferenceNotFoundError{Path: ref}
		}
		next, ok := tab.Get(part)
		if !ok {
			return nil, &ReferenceNotFoundError{Path: ref}
		}
		current = next
	}

	return current, nil
}

// valueToString renders a scalar in its canonical text form. Tables and
// arrays cannot be interpolated into strings.
func valueToString(v *Value, ref string) (string, error) {
	switch v.Kind() {
	case KindString:
		return v.str, nil
	case KindInteger:
		return strconv.FormatInt(v.i, 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64), nil
	case KindBool:
		return strconv.FormatBool(v.b), nil
	case KindDatetime:
		return v.t.Format(time.RFC3339Nano), nil
	default:
		return "", &NonScalarReferenceError{Path: ref}
	}
}
