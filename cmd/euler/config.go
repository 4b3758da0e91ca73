package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/govalues/bignum/internal/powcache"
)

// Config is the runner configuration.
// It is read from a TOML file and then overridden by command line flags.
type Config struct {
	Verbosity  string `toml:"verbosity"`   // logrus level name
	Jobs       int    `toml:"jobs"`        // problems solved concurrently
	Color      string `toml:"color"`       // auto, always or never
	CacheBytes int    `toml:"cache_bytes"` // capacity of the power cache
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var errInvalidConfig = errors.New("invalid config")

func defaultConfig() Config {
	return Config{
		Verbosity:  logrus.InfoLevel.String(),
		Jobs:       runtime.GOMAXPROCS(0),
		Color:      colorAuto,
		CacheBytes: powcache.DefaultMaxBytes,
	}
}

// loadConfig decodes a TOML file on top of cfg.
// Unknown keys are rejected so that typos do not go unnoticed.
func loadConfig(file string, cfg *Config) error {
	md, err := toml.DecodeFile(file, cfg)
	if err != nil {
		return fmt.Errorf("%v: %w", file, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%v: unknown keys %v: %w", file, strings.Join(keys, ", "), errInvalidConfig)
	}
	return nil
}

// validate checks that all fields of cfg have sensible values.
func (cfg Config) validate() error {
	if _, err := logrus.ParseLevel(cfg.Verbosity); err != nil {
		return fmt.Errorf("verbosity %q: %w", cfg.Verbosity, errInvalidConfig)
	}
	if cfg.Jobs < 1 {
		return fmt.Errorf("jobs %v: %w", cfg.Jobs, errInvalidConfig)
	}
	switch cfg.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("color %q: %w", cfg.Color, errInvalidConfig)
	}
	if cfg.CacheBytes < 0 {
		return fmt.Errorf("cache_bytes %v: %w", cfg.CacheBytes, errInvalidConfig)
	}
	return nil
}

// makeConfig builds the configuration from defaults, the config file and flags.
func makeConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return Config{}, err
		}
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Verbosity = ctx.String(verbosityFlag.Name)
	}
	if ctx.IsSet(jobsFlag.Name) {
		cfg.Jobs = ctx.Int(jobsFlag.Name)
	}
	if ctx.IsSet(colorFlag.Name) {
		cfg.Color = ctx.String(colorFlag.Name)
	}
	if ctx.IsSet(cacheFlag.Name) {
		cfg.CacheBytes = ctx.Int(cacheFlag.Name)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var dumpConfigCommand = &cli.Command{
	Action:      dumpConfig,
	Name:        "dumpconfig",
	Usage:       "Export configuration values in a TOML format",
	ArgsUsage:   " ",
	Description: `Export configuration values in TOML format (to stdout by default).`,
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	return toml.NewEncoder(ctx.App.Writer).Encode(cfg)
}
