// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configtree

import "errors"

// ErrMissingConfig is returned by [ContextBuilder.Build] when no
// configuration was attached.
var ErrMissingConfig = errors.New("application context requires a configuration")

// AppContext is the central application context holding the configuration
// decoded once at build time.
//
// It is generic over the configuration type C. Once built, the context and
// its configuration are never mutated again, so they are safe to share
// read-only across concurrent readers without locking.
type AppContext[C any] struct {
	config *C
}

// Config returns the configuration. This is a plain pointer read; the
// configuration was decoded once when the context was built.
func (c *AppContext[C]) Config() *C {
	return c.config
}

// ContextBuilder constructs an [AppContext]. A context cannot be built
// without a configuration attached; Build enforces that at runtime with
// [ErrMissingConfig].
type ContextBuilder[C any] struct {
	config *C
}

// NewContextBuilder creates a builder with no configuration attached.
func NewContextBuilder[C any]() *ContextBuilder[C] {
	return &ContextBuilder[C]{}
}

// WithConfig attaches the configuration, typically the struct populated by
// the config package's builder.
func (b *ContextBuilder[C]) WithConfig(config *C) *ContextBuilder[C] {
	b.config = config
	return b
}

// Build returns the finished context, or ErrMissingConfig if WithConfig was
// never called.
func (b *ContextBuilder[C]) Build() (*AppContext[C], error) {
	if b.config == nil {
		return nil, ErrMissingConfig
	}

	return &AppContext[C]{config: b.config}, nil
}
