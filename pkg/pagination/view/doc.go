// Package view renders a pagination.Sequence into navigation markup.
//
// The Renderer walks the tagged sequence and asks three collaborators for
// help:
//   - URLBuilder maps a page number to a link target
//   - Theme supplies attributes and content for each kind of item
//   - MarkupBuilder turns content and attributes into markup
//
// Defaults reproduce a Bootstrap 4 pagination list: HTML markup, the
// DefaultTheme and a QueryURL that preserves the caller's query string.
//
// # Escaping
//
// HTML escapes every attribute value, href included, so query strings and
// caller-supplied attributes cannot break out of the tag. Content is
// written verbatim: themes supply markup such as
// <span aria-hidden="true">&laquo;</span>, and page numbers need no
// escaping. Callers passing untrusted text as content must escape it first.
package view
