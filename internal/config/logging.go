package config

import (
	"os"

	"github.com/rshade/pagenav/internal/logging"
)

// Environment overrides for the logging section.
const (
	EnvLogLevel  = "PAGENAV_LOG_LEVEL"
	EnvLogFormat = "PAGENAV_LOG_FORMAT"
)

// ApplyEnv overrides the logging section from PAGENAV_LOG_LEVEL and
// PAGENAV_LOG_FORMAT.
func (lc *LoggingConfig) ApplyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		lc.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		lc.Format = format
	}
}

// ToLoggingConfig converts the section to a logging.Config. A configured
// file selects file output, otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global logging section.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
