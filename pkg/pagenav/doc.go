// Package pagenav wires a pagination.Sequence to a view.Renderer.
//
// It is the one-call entry point for the common case:
//
//	opts := pagenav.Defaults()
//	opts.TotalItems = total
//	opts.CurrentPage = page
//	opts.URL = pagenav.DefaultURL(r.URL.Query())
//	html, err := pagenav.Render(opts)
//
// Collaborators left nil in Options are filled from the explicit default
// factories in this package. PerPage and Neighbors are never defaulted; a
// zero value is a configuration error. Nothing is read from global request
// state.
package pagenav
