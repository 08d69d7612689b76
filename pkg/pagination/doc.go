// Package pagination computes which page numbers a navigation control shows.
//
// Given a total item count, a page size, the requested page and a neighbor
// window, a Sequence yields the ordered page positions to display:
//   - Page 1, always
//   - A dense window of pages around the current page
//   - The last page, always
//
// Runs of pages outside the window are compressed away and the pages at
// the window edges are tagged so a renderer can insert gap markers. Every
// position carries a TagSet describing its role (first, last, current,
// before/after current, gap boundary).
//
// The package only works with counts and page numbers. It never sees the
// underlying item collection. Rendering lives in the view subpackage.
package pagination
