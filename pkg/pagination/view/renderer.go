package view

import (
	"strconv"

	"github.com/rshade/pagenav/pkg/pagination"
)

// Renderer turns a pagination.Sequence into markup. It holds only its
// collaborators, so one Renderer may serve any number of concurrent
// renders as long as each render has its own Sequence.
type Renderer struct {
	url    URLBuilder
	theme  Theme
	markup MarkupBuilder
}

// NewRenderer returns a Renderer. All collaborators are required.
func NewRenderer(url URLBuilder, theme Theme, markup MarkupBuilder) *Renderer {
	return &Renderer{url: url, theme: theme, markup: markup}
}

// Render walks seq from the start and returns the complete navigation
// markup. An empty sequence (no pages) renders as the empty string.
func (r *Renderer) Render(seq *pagination.Sequence) string {
	items := r.RenderItems(seq)
	if len(items) == 0 {
		return ""
	}
	return r.markup.Menu(items, r.theme.Menu())
}

// RenderItems returns the ordered list items without the container.
func (r *Renderer) RenderItems(seq *pagination.Sequence) []string {
	p := pass{Renderer: r, seq: seq}
	for page, tags := range seq.All() {
		p.add(page, tags)
	}
	return p.items
}

// pass accumulates the items of one render.
type pass struct {
	*Renderer
	seq   *pagination.Sequence
	items []string
}

func (p *pass) add(page int, tags pagination.TagSet) {
	if tags.Has(pagination.TagFirst) {
		prev, ok := p.seq.PreviousPage()
		p.addRel(prev, ok, p.theme.Previous())
	}
	if tags.Has(pagination.TagSkipBefore) {
		p.addSkip()
	}

	p.addPage(page, tags)

	if tags.Has(pagination.TagSkipAfter) {
		p.addSkip()
	}
	if tags.Has(pagination.TagLast) {
		next, ok := p.seq.NextPage()
		p.addRel(next, ok, p.theme.Next())
	}
}

func (p *pass) addRel(page int, ok bool, link RelLink) {
	href := p.url.Generate(page)
	anchor := p.anchor(link.Content, href, link.Anchor)

	attrs := link.Item
	if !ok {
		attrs = Merge(attrs, p.theme.Disabled())
	}
	p.item(anchor, attrs)
}

func (p *pass) addPage(page int, tags pagination.TagSet) {
	content := strconv.Itoa(page)
	if tags.Has(pagination.TagCurrent) {
		content = p.theme.Current(page)
	}

	anchor := p.anchor(content, p.url.Generate(page), nil)
	p.item(anchor, p.theme.Attr(tags))
}

func (p *pass) addSkip() {
	anchor := p.anchor(p.theme.Skip(), Placeholder, nil)
	p.item(anchor, p.theme.Disabled())
}

func (p *pass) anchor(content, href string, attrs Attributes) string {
	return p.markup.Anchor(content, href, Merge(attrs, p.theme.Anchor()))
}

func (p *pass) item(content string, attrs Attributes) {
	p.items = append(p.items, p.markup.Item(content, Merge(attrs, p.theme.Item())))
}
