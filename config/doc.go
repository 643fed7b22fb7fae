// Package config assembles a single configuration tree from multiple ordered
// sources and resolves ${path} references inside it before decoding the
// result into a typed struct.
//
// Sources (files, environment variables, static values, or custom [Source]
// implementations) contribute (path, value) entries. The builder merges the
// entries in registration order — later sources override earlier ones, with
// nested tables deep-merged and everything else replaced — then rewrites
// string values containing ${dotted.path} references until a fixed point is
// reached.
//
// Typical usage:
//
//	var cfg AppConfig
//	err := config.NewBuilder().
//		WithFile("config/default.toml", true).
//		WithFile("config/local.toml", false).
//		WithEnv("MYAPP", "__").
//		Build(&cfg)
//
// Reference syntax inside string values: ${segment.segment} substitutes the
// scalar at that path, $$ produces a literal $, and a bare $ not followed by
// { or a second $ is passed through verbatim.
package config
