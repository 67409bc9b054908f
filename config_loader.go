package jsonx

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads engine configuration from a YAML file and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse config file: %v", ErrInvalidConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes a configuration to a YAML file.
func SaveConfig(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// LoadConfigFromEnvironment reads configuration from environment variables,
// following the 12-factor convention. All variables are optional:
//
//   - JSONX_VERSION: version ceiling (float)
//   - JSONX_INCLUDE_NULLS: "true" to render explicit nulls
//   - JSONX_LOG_LEVEL: debug, info, warn or error
func LoadConfigFromEnvironment() (Config, error) {
	var cfg Config

	if raw := os.Getenv(EnvVersion); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, EnvVersion, err)
		}
		cfg.Version = v
		cfg.HasVersion = true
	}

	if raw := os.Getenv(EnvIncludeNulls); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, EnvIncludeNulls, err)
		}
		cfg.IncludeNulls = b
	}

	cfg.LogLevel = getEnvOrDefault(EnvLogLevel, DefaultLogLevel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
