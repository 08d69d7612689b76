package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/pagenav/internal/cli/params"
	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/tui"
	"github.com/rshade/pagenav/pkg/pagenav"
	"github.com/rshade/pagenav/pkg/pagination"
	"github.com/rshade/pagenav/pkg/pagination/view"
)

// renderResult is one rendered navigation in JSON output.
type renderResult struct {
	RequestedPage int                   `json:"requested_page"`
	Meta          pagination.Meta       `json:"meta"`
	Positions     []pagination.Position `json:"positions"`
	Markup        string                `json:"markup"`
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	p := params.NewRenderParams()
	var rawQuery string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a page navigation",
		Long: `Renders the navigation bar for a collection.

Each --current value is rendered separately. Values outside the valid
range are clamped. Unset --per-page, --neighbors and --page-param come from
the configuration file.`,
		Example: `  # HTML for page 3 of 95 items
  pagenav render --total 95 --current 3

  # Keep other query parameters in links
  pagenav render --total 95 --current 3 --query "q=go&sort=name"

  # Plain text, located by item offset
  pagenav render --total 500 --offset 240 --format text`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, p, rawQuery)
		},
	}

	cmd.Flags().IntVar(&p.TotalItems, "total", 0, "total number of items")
	cmd.Flags().IntVar(&p.PerPage, "per-page", p.PerPage, "items per page")
	cmd.Flags().IntSliceVar(&p.Pages, "current", nil, "current page (repeatable)")
	cmd.Flags().IntVar(&p.Offset, "offset", p.Offset, "zero-based item offset selecting the current page")
	cmd.Flags().IntVar(&p.Neighbors, "neighbors", p.Neighbors, "pages shown on each side of the current page")
	cmd.Flags().StringVar(&p.Format, "format", p.Format, "output format: html, text or json")
	cmd.Flags().StringVar(&p.PageParam, "page-param", p.PageParam, "query parameter carrying the page number")
	cmd.Flags().StringVar(&rawQuery, "query", "", "query string preserved in page links")

	return cmd
}

// applyConfigDefaults fills flags the user did not set from cfg.
func applyConfigDefaults(cmd *cobra.Command, p *params.RenderParams, cfg *config.Config) {
	if !cmd.Flags().Changed("per-page") {
		p.PerPage = cfg.Pagination.PerPage
	}
	if !cmd.Flags().Changed("neighbors") {
		p.Neighbors = cfg.Pagination.Neighbors
	}
	if !cmd.Flags().Changed("page-param") {
		p.PageParam = cfg.Pagination.PageParam
	}
}

func runRender(cmd *cobra.Command, p *params.RenderParams, rawQuery string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	applyConfigDefaults(cmd, p, cfg)
	if err := p.Validate(); err != nil {
		return err
	}
	format, _ := params.ParseFormat(p.Format)

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	base := pagenav.Options{
		URL:    view.QueryURL{Param: p.PageParam, Query: query},
		Logger: log,
	}
	if format == params.FormatText {
		base.Theme = tui.TerminalTheme()
		base.Markup = tui.NewTerminal(lipgloss.NewRenderer(cmd.OutOrStdout()))
	} else {
		theme, themeErr := cfg.BuildTheme()
		if themeErr != nil {
			return fmt.Errorf("invalid theme: %w", themeErr)
		}
		base.Theme = theme
	}

	pages := p.CurrentPages()
	log.Debug().Ctx(ctx).
		Int("total_items", p.TotalItems).
		Ints("pages", pages).
		Str("format", format).
		Msg("rendering navigation")

	results, err := renderPages(ctx, *p, pages, base)
	if err != nil {
		return err
	}

	return writeResults(cmd.OutOrStdout(), format, results)
}

// renderPages renders each page concurrently. Results keep the order of
// pages. Each goroutine builds its own Sequence; the collaborators in base
// are shared read-only.
func renderPages(
	ctx context.Context,
	p params.RenderParams,
	pages []int,
	base pagenav.Options,
) ([]renderResult, error) {
	results := make([]renderResult, len(pages))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, page := range pages {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			opts := base
			cfg := p.Config(page)
			opts.TotalItems = cfg.TotalItems
			opts.PerPage = cfg.PerPage
			opts.CurrentPage = cfg.CurrentPage
			opts.Neighbors = cfg.Neighbors

			nav, err := pagenav.New(opts)
			if err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}

			results[i] = renderResult{
				RequestedPage: page,
				Markup:        nav.Render(),
				Meta:          nav.Meta(),
				Positions:     nav.Sequence().Positions(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeResults prints results. HTML and text outputs separate navigations
// with a blank line; JSON is a single array.
func writeResults(w io.Writer, format string, results []renderResult) error {
	if format == params.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	}

	markups := make([]string, len(results))
	for i, r := range results {
		markups[i] = r.Markup
	}
	_, err := fmt.Fprintln(w, strings.Join(markups, "\n\n"))
	return err
}
