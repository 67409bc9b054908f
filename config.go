package jsonx

import (
	"fmt"

	"github.com/hengadev/errsx"
)

// Config holds declarative engine configuration.
//
// This struct contains only data, no behavior. Configuration can be loaded
// from any source (a YAML file, environment variables, code) and expanded
// into engine options with Options. Handlers and formatters are code, not
// data, and are registered through options directly.
//
// Example usage:
//
//	cfg, err := jsonx.LoadConfig("jsonx.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine, err := jsonx.New(cfg.Options()...)
type Config struct {
	// Version installs a version ceiling: members declaring a greater
	// minimum version are excluded. Zero with HasVersion false means no
	// ceiling.
	Version    float64 `yaml:"version"`
	HasVersion bool    `yaml:"has_version"`

	// IncludeNulls renders null-valued fields as explicit JSON nulls
	// instead of omitting their keys.
	IncludeNulls bool `yaml:"include_nulls"`

	// ExcludeModifiers replaces the default modifier mask when non-empty.
	// Recognised names: "transient", "unexported".
	ExcludeModifiers []string `yaml:"exclude_modifiers,omitempty"`

	// LogLevel names a log level: debug, info, warn or error. Validate
	// checks it and fills in the default; Options does not apply it, so the
	// engine's logger keeps its own level.
	LogLevel string `yaml:"log_level"`
}

// Validate checks the configuration and applies defaults. Problems are
// aggregated so every misconfigured field surfaces at once.
func (c *Config) Validate() error {
	var errs errsx.Map

	if c.HasVersion && c.Version < 0 {
		errs.Set("version", fmt.Errorf("version ceiling must be non-negative, got %g", c.Version))
	}
	for _, name := range c.ExcludeModifiers {
		if _, ok := modifierNames[name]; !ok {
			errs.Set("exclude_modifiers", fmt.Errorf("unknown modifier %q", name))
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		errs.Set("log_level", fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	if !errs.IsEmpty() {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, errs.AsError())
	}
	return nil
}

// Options expands the configuration into engine options. Call Validate
// first.
func (c *Config) Options() []Option {
	var opts []Option
	if c.HasVersion {
		opts = append(opts, WithVersion(c.Version))
	}
	if c.IncludeNulls {
		opts = append(opts, WithIncludeNulls())
	}
	if len(c.ExcludeModifiers) > 0 {
		var mask Modifier
		for _, name := range c.ExcludeModifiers {
			mask |= modifierNames[name]
		}
		opts = append(opts, WithExcludedModifiers(mask))
	}
	return opts
}

var modifierNames = map[string]Modifier{
	"transient":  ModifierTransient,
	"unexported": ModifierUnexported,
}
