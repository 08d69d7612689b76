package pagenav

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/pagenav/pkg/pagination"
	"github.com/rshade/pagenav/pkg/pagination/view"
)

// Nav is a configured navigation: one Sequence plus the Renderer that draws
// it. A Nav is not safe for concurrent use because rendering advances its
// Sequence; build one Nav per request.
type Nav struct {
	seq      *pagination.Sequence
	renderer *view.Renderer
	logger   zerolog.Logger
}

// New fills nil collaborators, validates opts and returns a Nav.
//
// Returns a *pagination.ConfigurationError when TotalItems is negative or
// PerPage or Neighbors is below 1.
func New(opts Options) (*Nav, error) {
	opts = opts.withDefaults()

	seq, err := pagination.NewSequence(opts.config())
	if err != nil {
		return nil, fmt.Errorf("building page sequence: %w", err)
	}

	logger := opts.Logger.With().Str("component", "pagenav").Logger()
	if seq.Clamped() {
		logger.Debug().
			Int("requested_page", seq.RequestedPage()).
			Int("current_page", seq.CurrentPage()).
			Int("total_pages", seq.TotalPages()).
			Msg("current page clamped to valid range")
	}

	return &Nav{
		seq:      seq,
		renderer: view.NewRenderer(opts.URL, opts.Theme, opts.Markup),
		logger:   logger,
	}, nil
}

// Sequence returns the underlying page sequence.
func (n *Nav) Sequence() *pagination.Sequence { return n.seq }

// Meta returns the page metadata for API responses.
func (n *Nav) Meta() pagination.Meta { return n.seq.Meta() }

// Items returns the rendered list items without the container.
func (n *Nav) Items() []string { return n.renderer.RenderItems(n.seq) }

// Render returns the navigation markup, or "" when there are no pages.
func (n *Nav) Render() string {
	out := n.renderer.Render(n.seq)
	n.logger.Debug().
		Int("current_page", n.seq.CurrentPage()).
		Int("total_pages", n.seq.TotalPages()).
		Int("bytes", len(out)).
		Msg("rendered navigation")
	return out
}

// String implements fmt.Stringer by rendering.
func (n *Nav) String() string { return n.Render() }

// Render builds a Nav from opts and renders it.
func Render(opts Options) (string, error) {
	nav, err := New(opts)
	if err != nil {
		return "", err
	}
	return nav.Render(), nil
}
