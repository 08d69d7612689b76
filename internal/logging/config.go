// Package logging builds the zerolog loggers used by the pagenav tool.
package logging

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Log outputs.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Config describes where and how to log.
type Config struct {
	// Level is a zerolog level name. Unknown names select info.
	Level string

	// Format is FormatConsole or FormatJSON.
	Format string

	// Output is OutputStderr or OutputFile.
	Output string

	// File is the log file path, used when Output is OutputFile.
	File string

	// Caller adds the calling file and line to each event.
	Caller bool
}

// DefaultConfig returns info-level console logging to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatConsole,
		Output: OutputStderr,
	}
}
