package view

import (
	"html"
	"strings"
)

// MarkupBuilder turns content and attributes into markup.
type MarkupBuilder interface {
	// Anchor renders a link to href.
	Anchor(content, href string, attrs Attributes) string

	// Item renders a single list entry.
	Item(content string, attrs Attributes) string

	// Menu wraps the rendered items in a list container.
	Menu(items []string, attrs Attributes) string
}

// HTML renders items as an HTML unordered list.
//
// See the package documentation for what is escaped.
type HTML struct{}

// Anchor implements MarkupBuilder.
func (h HTML) Anchor(content, href string, attrs Attributes) string {
	withHref := attrs.Clone()
	if withHref == nil {
		withHref = Attributes{}
	}
	withHref["href"] = Text(href)
	return h.element("a", content, withHref)
}

// Item implements MarkupBuilder.
func (h HTML) Item(content string, attrs Attributes) string {
	return h.element("li", content, attrs)
}

// Menu implements MarkupBuilder.
func (h HTML) Menu(items []string, attrs Attributes) string {
	return h.element("ul", "\n"+strings.Join(items, "\n")+"\n", attrs)
}

func (h HTML) element(tag, content string, attrs Attributes) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	if rendered := RenderAttributes(attrs); rendered != "" {
		sb.WriteString(" ")
		sb.WriteString(rendered)
	}
	sb.WriteString(">")
	sb.WriteString(content)
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
	return sb.String()
}

// RenderAttributes renders attrs as HTML attributes in sorted key order.
// Values are HTML-escaped. Token lists are space-joined; a true flag
// renders as the bare name and a false flag is omitted.
func RenderAttributes(attrs Attributes) string {
	parts := make([]string, 0, len(attrs))
	for _, key := range attrs.Keys() {
		switch v := attrs[key].(type) {
		case Flag:
			if v {
				parts = append(parts, key)
			}
		case Tokens:
			parts = append(parts, key+`="`+html.EscapeString(strings.Join(v, " "))+`"`)
		case Text:
			parts = append(parts, key+`="`+html.EscapeString(string(v))+`"`)
		}
	}
	return strings.Join(parts, " ")
}
