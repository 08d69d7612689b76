package pagenav

import (
	"net/url"

	"github.com/rs/zerolog"

	"github.com/rshade/pagenav/pkg/pagination"
	"github.com/rshade/pagenav/pkg/pagination/view"
)

// Options configures a navigation render.
//
// PerPage and Neighbors are passed to the sequence as given: New rejects
// values below 1, zero included. Start from Defaults to get the package
// defaults. A zero CurrentPage is clamped to page 1.
type Options struct {
	TotalItems  int
	PerPage     int
	CurrentPage int
	Neighbors   int

	// URL builds page links. Defaults to DefaultURL(nil).
	URL view.URLBuilder

	// Theme supplies attributes and content. Defaults to DefaultTheme().
	Theme view.Theme

	// Markup builds the output. Defaults to DefaultMarkup().
	Markup view.MarkupBuilder

	// Logger receives debug events. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// DefaultURL returns a builder that sets the "page" parameter on a copy of
// query. Pass the current request's query to preserve filters and sorting.
func DefaultURL(query url.Values) view.URLBuilder {
	return view.NewQueryURL(query)
}

// DefaultTheme returns a fresh Bootstrap 4 theme.
func DefaultTheme() view.Theme {
	return view.NewDefaultTheme()
}

// DefaultMarkup returns the HTML markup builder.
func DefaultMarkup() view.MarkupBuilder {
	return view.HTML{}
}

// Defaults returns Options with every collaborator set to its default and
// the numeric fields set to the package defaults.
func Defaults() Options {
	nop := zerolog.Nop()
	return Options{
		PerPage:     pagination.DefaultPerPage,
		CurrentPage: pagination.DefaultCurrentPage,
		Neighbors:   pagination.DefaultNeighbors,
		URL:         DefaultURL(nil),
		Theme:       DefaultTheme(),
		Markup:      DefaultMarkup(),
		Logger:      &nop,
	}
}

// withDefaults fills nil collaborators from Defaults.
func (o Options) withDefaults() Options {
	d := Defaults()
	if o.URL == nil {
		o.URL = d.URL
	}
	if o.Theme == nil {
		o.Theme = d.Theme
	}
	if o.Markup == nil {
		o.Markup = d.Markup
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}

// config returns the sequence configuration for o.
func (o Options) config() pagination.Config {
	return pagination.Config{
		TotalItems:  o.TotalItems,
		PerPage:     o.PerPage,
		CurrentPage: o.CurrentPage,
		Neighbors:   o.Neighbors,
	}
}
