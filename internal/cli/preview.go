package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/tui"
	"github.com/rshade/pagenav/pkg/pagination/view"
)

// ErrNotTerminal is returned by preview when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("preview requires an interactive terminal")

// newPreviewCmd creates the interactive preview command.
func newPreviewCmd() *cobra.Command {
	var (
		total     int
		perPage   int
		current   int
		neighbors int
	)

	cmd := &cobra.Command{
		Use:     "preview",
		Short:   "Browse a page navigation interactively",
		Example: `  pagenav preview --total 5000 --per-page 25 --current 40`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}

			cfg := config.GetGlobalConfig()
			if !cmd.Flags().Changed("per-page") {
				perPage = cfg.Pagination.PerPage
			}
			if !cmd.Flags().Changed("neighbors") {
				neighbors = cfg.Pagination.Neighbors
			}
			theme, err := cfg.BuildTheme()
			if err != nil {
				return fmt.Errorf("invalid theme: %w", err)
			}

			model, err := tui.NewPreviewModel(tui.PreviewConfig{
				TotalItems:  total,
				PerPage:     perPage,
				CurrentPage: current,
				Neighbors:   neighbors,
				URL:         view.QueryURL{Param: cfg.Pagination.PageParam, Query: url.Values{}},
				Theme:       theme,
			})
			if err != nil {
				return err
			}

			logger.Debug().Ctx(cmd.Context()).Int("total_items", total).Msg("starting preview")
			if _, err = tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("failed to run interactive preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "total number of items")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "items per page (default from config)")
	cmd.Flags().IntVar(&current, "current", 1, "starting page")
	cmd.Flags().IntVar(&neighbors, "neighbors", 0, "pages shown on each side of the current page (default from config)")

	return cmd
}
