package jsonx

// Environment variable names recognised by LoadConfigFromEnvironment.
const (
	EnvVersion      = "JSONX_VERSION"
	EnvIncludeNulls = "JSONX_INCLUDE_NULLS"
	EnvLogLevel     = "JSONX_LOG_LEVEL"
)

// Default configuration values.
const (
	DefaultConfigFile = "jsonx.yaml"
	DefaultLogLevel   = "info"
)

// Recognised log level names.
var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}
