package view

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLBuilders(t *testing.T) {
	query := url.Values{"sort": {"name"}, "page": {"3"}}

	tests := []struct {
		name    string
		builder URLBuilder
		page    int
		want    string
	}{
		{name: "query absent page", builder: NewQueryURL(query), page: 0, want: "#"},
		{name: "query negative page", builder: NewQueryURL(query), page: -2, want: "#"},
		{name: "query replaces page", builder: NewQueryURL(query), page: 4, want: "?page=4&sort=name"},
		{name: "query custom param", builder: QueryURL{Param: "p", Query: query}, page: 2, want: "?p=2&page=3&sort=name"},
		{name: "query empty param", builder: QueryURL{Query: nil}, page: 2, want: "?page=2"},
		{name: "simple", builder: SimpleURL{}, page: 12, want: "?page=12"},
		{name: "simple absent", builder: SimpleURL{}, page: 0, want: "#"},
		{name: "path", builder: PathURL{Prefix: "/posts/page/"}, page: 5, want: "/posts/page/5"},
		{name: "path absent", builder: PathURL{Prefix: "/posts/page/"}, page: 0, want: "#"},
		{
			name:    "func",
			builder: URLFunc(func(page int) string { return "/p/" + string(rune('0'+page)) }),
			page:    7,
			want:    "/p/7",
		},
		{name: "func absent", builder: URLFunc(func(int) string { return "never" }), page: 0, want: "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.builder.Generate(tt.page))
		})
	}
}

func TestQueryURL_DoesNotModifyQuery(t *testing.T) {
	query := url.Values{"q": {"go"}}
	u := NewQueryURL(query)

	_ = u.Generate(2)
	_ = u.Generate(3)

	assert.Equal(t, url.Values{"q": {"go"}}, query)
}
