package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagenav/pkg/pagination"
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats n with thousand separators, e.g. 12,340.
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatStatus summarises meta as "Page 3 of 1,234 · items 21–30 of 12,340".
// An empty collection reads "No items".
func FormatStatus(meta pagination.Meta) string {
	if meta.TotalPages == 0 {
		return "No items"
	}

	first := meta.Offset + 1
	last := meta.Offset + min(meta.PageSize, meta.TotalItems-meta.Offset)
	return printer.Sprintf("Page %d of %d · items %d–%d of %d",
		meta.CurrentPage, meta.TotalPages, first, last, meta.TotalItems)
}
