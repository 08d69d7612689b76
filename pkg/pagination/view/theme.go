package view

import (
	"fmt"
	"strings"

	"github.com/rshade/pagenav/pkg/pagination"
)

// Theme supplies the attributes and content templates used for each kind
// of item. Implementations must be read-only with respect to rendering so
// a single Theme can serve concurrent renders.
type Theme interface {
	// Skip returns the content of an ellipsis item.
	Skip() string

	// Item returns the attributes every list item receives.
	Item() Attributes

	// Anchor returns the attributes every link receives.
	Anchor() Attributes

	// Disabled returns the attributes marking an item as non-actionable.
	Disabled() Attributes

	// Current returns the content of the current page's link.
	Current(page int) string

	// Previous describes the link to the previous page.
	Previous() RelLink

	// Next describes the link to the next page.
	Next() RelLink

	// Attr returns the item attributes for a page with the given tags.
	Attr(tags pagination.TagSet) Attributes

	// Menu returns the attributes of the list container.
	Menu() Attributes
}

// RelLink is the canned data for a previous or next item.
type RelLink struct {
	// Content is the visible link content.
	Content string

	// Anchor holds extra link attributes such as aria-label.
	Anchor Attributes

	// Item holds extra list item attributes.
	Item Attributes
}

func (r RelLink) clone() RelLink {
	return RelLink{Content: r.Content, Anchor: r.Anchor.Clone(), Item: r.Item.Clone()}
}

// Theme preset names.
const (
	PresetBootstrap4 = "bootstrap4"
	PresetBootstrap5 = "bootstrap5"
)

// DefaultTheme is a data-driven Theme. Accessors return copies, so callers
// may modify what they receive without affecting the theme.
type DefaultTheme struct {
	SkipContent   string
	ItemAttrs     Attributes
	AnchorAttrs   Attributes
	DisabledAttrs Attributes
	MenuAttrs     Attributes
	PreviousLink  RelLink
	NextLink      RelLink
	TagAttrs      map[pagination.Tag]Attributes

	// CurrentTemplate is a fmt format with a single %d verb for the page.
	CurrentTemplate string
}

// NewDefaultTheme returns the Bootstrap 4 theme.
func NewDefaultTheme() *DefaultTheme {
	return &DefaultTheme{
		SkipContent:     "&hellip;",
		ItemAttrs:       Class("page-item"),
		AnchorAttrs:     Class("page-link"),
		DisabledAttrs:   Class("disabled"),
		MenuAttrs:       Class("pagination"),
		CurrentTemplate: `%d <span class="sr-only">(current)</span>`,
		PreviousLink: RelLink{
			Content: `<span aria-hidden="true">&laquo;</span>`,
			Anchor:  Attributes{"aria-label": Text("Previous")},
			Item:    Class("page-rel-previous"),
		},
		NextLink: RelLink{
			Content: `<span aria-hidden="true">&raquo;</span>`,
			Anchor:  Attributes{"aria-label": Text("Next")},
			Item:    Class("page-rel-next"),
		},
		TagAttrs: map[pagination.Tag]Attributes{
			pagination.TagFirst:      Class("pager_first"),
			pagination.TagLast:       Class("pager_last"),
			pagination.TagHead:       Class("pager_head"),
			pagination.TagTail:       Class("pager_tail"),
			pagination.TagCurrent:    Class("pager_current", "active"),
			pagination.TagSkipBefore: Class("pager_ceiling"),
			pagination.TagSkipAfter:  Class("pager_floor"),
		},
	}
}

// NewBootstrap5Theme returns the Bootstrap 5 variant: visually-hidden
// replaces sr-only and the current page link is marked aria-current.
func NewBootstrap5Theme() *DefaultTheme {
	t := NewDefaultTheme()
	t.CurrentTemplate = `%d <span class="visually-hidden">(current)</span>`
	t.DisabledAttrs = Merge(t.DisabledAttrs, Attributes{"aria-disabled": Text("true")})
	t.TagAttrs[pagination.TagCurrent] = Merge(
		t.TagAttrs[pagination.TagCurrent],
		Attributes{"aria-current": Text("page")},
	)
	return t
}

// Preset returns a fresh copy of the named theme.
func Preset(name string) (*DefaultTheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PresetBootstrap4:
		return NewDefaultTheme(), nil
	case PresetBootstrap5:
		return NewBootstrap5Theme(), nil
	default:
		return nil, fmt.Errorf("unknown theme preset %q", name)
	}
}

// Skip implements Theme.
func (t *DefaultTheme) Skip() string { return t.SkipContent }

// Item implements Theme.
func (t *DefaultTheme) Item() Attributes { return t.ItemAttrs.Clone() }

// Anchor implements Theme.
func (t *DefaultTheme) Anchor() Attributes { return t.AnchorAttrs.Clone() }

// Disabled implements Theme.
func (t *DefaultTheme) Disabled() Attributes { return t.DisabledAttrs.Clone() }

// Menu implements Theme.
func (t *DefaultTheme) Menu() Attributes { return t.MenuAttrs.Clone() }

// Current implements Theme.
func (t *DefaultTheme) Current(page int) string {
	return fmt.Sprintf(t.CurrentTemplate, page)
}

// Previous implements Theme.
func (t *DefaultTheme) Previous() RelLink { return t.PreviousLink.clone() }

// Next implements Theme.
func (t *DefaultTheme) Next() RelLink { return t.NextLink.clone() }

// Attr implements Theme. Per-tag attributes are merged in canonical tag
// order, so the result does not depend on map iteration.
func (t *DefaultTheme) Attr(tags pagination.TagSet) Attributes {
	out := Attributes{}
	for _, tag := range pagination.AllTags {
		if tags.Has(tag) {
			out = Merge(out, t.TagAttrs[tag])
		}
	}
	return out
}

// Clone returns a deep copy of the theme.
func (t *DefaultTheme) Clone() *DefaultTheme {
	out := *t
	out.ItemAttrs = t.ItemAttrs.Clone()
	out.AnchorAttrs = t.AnchorAttrs.Clone()
	out.DisabledAttrs = t.DisabledAttrs.Clone()
	out.MenuAttrs = t.MenuAttrs.Clone()
	out.PreviousLink = t.PreviousLink.clone()
	out.NextLink = t.NextLink.clone()
	out.TagAttrs = make(map[pagination.Tag]Attributes, len(t.TagAttrs))
	for tag, attrs := range t.TagAttrs {
		out.TagAttrs[tag] = attrs.Clone()
	}
	return &out
}
