// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Demo is a non-interactive loader showing the full configuration pipeline:
// layered file sources, environment overrides, ${path} references, and the
// typed application context.
package main

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	configtree "github.com/MKhiriev/go-config-tree"
	"github.com/MKhiriev/go-config-tree/config"
	"github.com/MKhiriev/go-config-tree/logger"
)

// options controls the demo itself (not the loaded configuration).
type options struct {
	// ConfigFile is the required base configuration file.
	// Env: DEMO_CONFIG
	ConfigFile string `env:"CONFIG"`

	// OverrideFile is an optional overlay merged on top of ConfigFile.
	// Env: DEMO_OVERRIDE
	OverrideFile string `env:"OVERRIDE"`

	// EnvPrefix identifies environment variables that override file values,
	// e.g. DEMOAPP__DATABASE__HOST.
	// Env: DEMO_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX" envDefault:"DEMOAPP"`

	// Verbose enables debug logging of the merge and resolution steps.
	// Env: DEMO_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// AppConfig is the schema the demo decodes the resolved tree into.
type AppConfig struct {
	App struct {
		Name  string `mapstructure:"name"`
		Debug bool   `mapstructure:"debug"`
	} `mapstructure:"app"`

	Database struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
		Name string `mapstructure:"name"`
		URL  string `mapstructure:"url"`
	} `mapstructure:"database"`

	Server struct {
		Address        string        `mapstructure:"address"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
	} `mapstructure:"server"`
}

func main() {
	opts, err := parseOptions()
	log := logger.NewLogger("demo", logLevel(opts))
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing demo options")
	}

	var cfg AppConfig
	err = config.NewBuilder().
		WithFile(opts.ConfigFile, true).
		WithFile(opts.OverrideFile, false).
		WithEnv(opts.EnvPrefix, "__").
		WithLogger(log).
		Build(&cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error building config")
	}

	ctx, err := configtree.NewContextBuilder[AppConfig]().
		WithConfig(&cfg).
		Build()
	if err != nil {
		log.Fatal().Err(err).Msg("error building app context")
	}

	loaded := ctx.Config()
	log.Info().
		Str("app", loaded.App.Name).
		Bool("debug", loaded.App.Debug).
		Str("database_url", loaded.Database.URL).
		Str("server_address", loaded.Server.Address).
		Dur("request_timeout", loaded.Server.RequestTimeout).
		Msg("configuration loaded")
}

// parseOptions reads demo options from DEMO_* environment variables, then
// lets flags override them.
func parseOptions() (*options, error) {
	opts := &options{}
	if err := env.ParseWithOptions(opts, env.Options{Prefix: "DEMO_"}); err != nil {
		return opts, err
	}

	flag.StringVar(&opts.ConfigFile, "c", orDefault(opts.ConfigFile, "config/default.toml"), "Base config file path")
	flag.StringVar(&opts.OverrideFile, "o", orDefault(opts.OverrideFile, "config/dev.toml"), "Optional override config file path")
	flag.StringVar(&opts.EnvPrefix, "env-prefix", opts.EnvPrefix, "Env var prefix for config overrides")
	flag.BoolVar(&opts.Verbose, "v", opts.Verbose, "Enable debug logging")
	flag.Parse()

	return opts, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func logLevel(opts *options) zerolog.Level {
	if opts != nil && opts.Verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
