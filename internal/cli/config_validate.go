package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/pkg/pagination"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- Pagination defaults (per_page, neighbors, page_param)
- Theme preset and overrides, including tag names
- Logging level and format`,
		Example: `  # Validate current configuration
  pagenav config validate

  # Validate a specific file and show the resolved settings
  pagenav --config ./pagenav.yaml config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Per page: %d\n", cfg.Pagination.PerPage)
	cmd.Printf("  Neighbors: %d\n", cfg.Pagination.Neighbors)
	cmd.Printf("  Page param: %s\n", cfg.Pagination.PageParam)
	cmd.Printf("  Theme preset: %s\n", displayPreset(cfg.Theme.Preset))
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)

	printTagOverrides(cmd, cfg)
}

func displayPreset(name string) string {
	if name == "" {
		return "bootstrap4 (default)"
	}
	return name
}

// printTagOverrides lists tag overrides in canonical tag order.
func printTagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if len(cfg.Theme.Tags) == 0 {
		cmd.Println("  No tag overrides")
		return
	}

	cmd.Printf("  Tag overrides: %d\n", len(cfg.Theme.Tags))
	seen := make(map[pagination.Tag]bool, len(cfg.Theme.Tags))
	for name := range cfg.Theme.Tags {
		if tag, err := pagination.ParseTag(name); err == nil {
			seen[tag] = true
		}
	}
	for _, tag := range pagination.AllTags {
		if seen[tag] {
			cmd.Printf("    - %s\n", tag)
		}
	}
}
