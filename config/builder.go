// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-config-tree/logger"
)

// Builder assembles a configuration from an ordered list of sources.
//
// Sources are consulted in registration order and their entries merged into
// one tree; later sources override earlier ones. After merging, ${path}
// references are resolved, the tree is decoded into the target struct, and
// typed defaults (if any) fill the fields that remained zero.
type Builder struct {
	sources  []Source
	defaults any
	log      *logger.Logger
	err      error
}

// NewBuilder creates an empty builder that logs nothing.
func NewBuilder() *Builder {
	return &Builder{
		sources: make([]Source, 0, 4),
		log:     logger.Nop(),
	}
}

// WithFile registers a file source. Required files must exist at build time.
func (b *Builder) WithFile(path string, required bool) *Builder {
	return b.WithSource(NewFileSource(path, required))
}

// WithEnv registers an environment variable source with the given prefix and
// segment separator.
func (b *Builder) WithEnv(prefix, separator string) *Builder {
	return b.WithSource(NewEnvSource(prefix, separator))
}

// WithStatic registers programmatic values keyed by dotted path.
func (b *Builder) WithStatic(values map[string]any) *Builder {
	return b.WithSource(NewStaticSource(values))
}

// WithSource registers any custom source.
func (b *Builder) WithSource(source Source) *Builder {
	b.sources = append(b.sources, source)
	return b
}

// WithDefaults registers a typed defaults struct. After decoding, fields of
// the target that are still zero-valued are filled from defaults. The value
// must have the same type as the Build target points to.
func (b *Builder) WithDefaults(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithLogger makes the builder emit debug logs describing each merged
// source.
func (b *Builder) WithLogger(log *logger.Logger) *Builder {
	if log != nil {
		b.log = log
	}
	return b
}

// Build collects entries from every source in registration order, merges
// them into a single tree, resolves ${path} references, and decodes the
// result into target (a pointer to the configuration struct).
//
// Source failures accumulate: every failing source is reported, joined into
// one error.
func (b *Builder) Build(target any) error {
	if b.err != nil {
		return fmt.Errorf("error occured during building config: %w", b.err)
	}

	root := TableValue(NewTable())

	for _, source := range b.sources {
		entries, err := source.Entries()
		if err != nil {
			b.err = errors.Join(b.err, err)
			continue
		}

		for _, entry := range entries {
			MergeAtPath(root, entry.Path, entry.Value)
		}
		b.log.Debug().
			Type("source", source).
			Int("entries", len(entries)).
			Msg("merged config source")
	}

	if b.err != nil {
		return fmt.Errorf("error collecting config sources: %w", b.err)
	}

	if err := ResolveReferences(root); err != nil {
		return fmt.Errorf("error resolving config references: %w", err)
	}
	b.log.Debug().Msg("resolved config references")

	if err := decode(root, target); err != nil {
		return err
	}

	if b.defaults != nil {
		if err := mergo.Merge(target, b.defaults); err != nil {
			return fmt.Errorf("error merging default configs: %w", err)
		}
	}

	return nil
}
