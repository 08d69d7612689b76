package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	h := HTML{}

	t.Run("anchor adds href", func(t *testing.T) {
		attrs := Class("page-link")
		got := h.Anchor("2", "?page=2&q=a", attrs)
		assert.Equal(t, `<a class="page-link" href="?page=2&amp;q=a">2</a>`, got)
		assert.NotContains(t, attrs, "href")
	})

	t.Run("anchor without attributes", func(t *testing.T) {
		assert.Equal(t, `<a href="#">x</a>`, h.Anchor("x", "#", nil))
	})

	t.Run("item", func(t *testing.T) {
		assert.Equal(t, `<li class="a b" hidden>c</li>`, h.Item("c", Attributes{"class": Tokens{"a", "b"}, "hidden": Flag(true)}))
	})

	t.Run("menu", func(t *testing.T) {
		assert.Equal(t, "<ul class=\"pagination\">\n<li>1</li>\n<li>2</li>\n</ul>",
			h.Menu([]string{"<li>1</li>", "<li>2</li>"}, Class("pagination")))
	})

	t.Run("values escaped content verbatim", func(t *testing.T) {
		got := h.Item(`<span aria-hidden="true">&laquo;</span>`, Attributes{"title": Text(`"x" <y>`)})
		assert.Equal(t, `<li title="&#34;x&#34; &lt;y&gt;"><span aria-hidden="true">&laquo;</span></li>`, got)
	})

	t.Run("bare element", func(t *testing.T) {
		assert.Equal(t, "<li>x</li>", h.Item("x", Attributes{}))
	})
}
