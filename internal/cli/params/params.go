package params

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/pagenav/pkg/pagination"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults and limits.
const (
	DefaultFormat = FormatHTML
	MaxPages      = 64
)

// pageParamForbidden lists characters that would break the query string.
const pageParamForbidden = "&=?# "

// Common validation errors.
var (
	ErrInvalidTotal     = errors.New("total must be >= 0")
	ErrInvalidPerPage   = errors.New("per-page must be >= 1")
	ErrInvalidNeighbors = errors.New("neighbors must be >= 1")
	ErrInvalidOffset    = errors.New("offset must be non-negative")
	ErrInvalidFormat    = errors.New("format must be 'html', 'text' or 'json'")
	ErrMixedPageModes   = errors.New("cannot use both --current and --offset")
	ErrTooManyPages     = fmt.Errorf("at most %d --current values are allowed", MaxPages)
	ErrInvalidPageParam = errors.New("page-param must be a non-empty query key")
)

// RenderParams holds the render command flags.
type RenderParams struct {
	// TotalItems is the size of the collection.
	TotalItems int

	// PerPage is the number of items on a page.
	PerPage int

	// Pages are the requested current pages. Each is rendered separately.
	Pages []int

	// Offset selects the page containing the item at this zero-based index.
	// A negative value means unset.
	Offset int

	// Neighbors is the number of pages shown on each side of the current one.
	Neighbors int

	// Format is FormatHTML, FormatText or FormatJSON.
	Format string

	// PageParam is the query key carrying the page number in links.
	PageParam string
}

// NewRenderParams returns RenderParams with default values.
func NewRenderParams() *RenderParams {
	return &RenderParams{
		PerPage:   pagination.DefaultPerPage,
		Offset:    -1,
		Neighbors: pagination.DefaultNeighbors,
		Format:    DefaultFormat,
		PageParam: "page",
	}
}

// Validate checks that the parameters are valid and consistent.
func (p RenderParams) Validate() error {
	if p.TotalItems < 0 {
		return ErrInvalidTotal
	}
	if p.PerPage < 1 {
		return ErrInvalidPerPage
	}
	if p.Neighbors < 1 {
		return ErrInvalidNeighbors
	}
	if p.Offset < -1 {
		return ErrInvalidOffset
	}
	if p.IsOffsetBased() && len(p.Pages) > 0 {
		return ErrMixedPageModes
	}
	if len(p.Pages) > MaxPages {
		return ErrTooManyPages
	}
	if _, err := ParseFormat(p.Format); err != nil {
		return err
	}
	if p.PageParam == "" || strings.ContainsAny(p.PageParam, pageParamForbidden) {
		return fmt.Errorf("%w: %q", ErrInvalidPageParam, p.PageParam)
	}
	return nil
}

// ParseFormat normalizes a format name.
func ParseFormat(s string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(s))
	switch format {
	case "":
		return DefaultFormat, nil
	case FormatHTML, FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
	}
}

// IsOffsetBased reports whether the current page comes from Offset.
func (p RenderParams) IsOffsetBased() bool {
	return p.Offset >= 0
}

// CurrentPages returns the pages to render in order. Offset mode yields the
// single page containing Offset; with neither mode set it is page 1.
// Duplicates are kept so output lines up with the flags given.
func (p RenderParams) CurrentPages() []int {
	if p.IsOffsetBased() {
		if p.PerPage < 1 {
			return []int{pagination.DefaultCurrentPage}
		}
		return []int{p.Offset/p.PerPage + 1}
	}
	if len(p.Pages) == 0 {
		return []int{pagination.DefaultCurrentPage}
	}
	return slices.Clone(p.Pages)
}

// Config returns the sequence configuration for page.
func (p RenderParams) Config(page int) pagination.Config {
	return pagination.Config{
		TotalItems:  p.TotalItems,
		PerPage:     p.PerPage,
		CurrentPage: page,
		Neighbors:   p.Neighbors,
	}
}
