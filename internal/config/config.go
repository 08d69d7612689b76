// Package config loads the YAML configuration of the pagenav preview tool.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/rshade/pagenav/pkg/pagination"
	"github.com/rshade/pagenav/pkg/pagination/view"
)

// ConfigFileName is the configuration file name inside the config directory.
const ConfigFileName = "config.yaml"

// Config is the preview tool configuration.
type Config struct {
	Pagination PaginationConfig `yaml:"pagination"`
	Theme      view.ThemeSpec   `yaml:"theme"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PaginationConfig holds the defaults for rendered navigations.
type PaginationConfig struct {
	PerPage   int    `yaml:"per_page"   validate:"gte=1"`
	Neighbors int    `yaml:"neighbors"  validate:"gte=1"`
	PageParam string `yaml:"page_param" validate:"required,excludesall=&?#"`
}

// LoggingConfig selects the log level, format and optional log file.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	File   string `yaml:"file,omitempty"`
}

//nolint:gochecknoglobals // validator caches struct metadata; one instance per process
var validate = validator.New(validator.WithRequiredStructEnabled())

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Pagination: PaginationConfig{
			PerPage:   pagination.DefaultPerPage,
			Neighbors: pagination.DefaultNeighbors,
			PageParam: view.DefaultPageParam,
		},
		Theme: view.ThemeSpec{Preset: view.PresetBootstrap4},
		Logging: LoggingConfig{
			Level:  zerolog.InfoLevel.String(),
			Format: "console",
		},
	}
}

// Load returns the defaults overlaid with the file at path. A missing file
// is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the config file from the config directory.
func LoadDefault() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Validate checks field constraints and that the theme resolves.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]
			return fmt.Errorf("invalid %s: %q fails %q",
				first.Namespace(), fmt.Sprint(first.Value()), first.Tag())
		}
		return err
	}

	if _, err := c.Theme.Build(); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	return nil
}

// BuildTheme resolves the configured theme.
func (c *Config) BuildTheme() (*view.DefaultTheme, error) {
	return c.Theme.Build()
}
