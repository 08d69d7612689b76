package view

import (
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"
)

// Placeholder is the link target used when there is no page to link to.
const Placeholder = "#"

// DefaultPageParam is the query parameter carrying the page number.
const DefaultPageParam = "page"

// URLBuilder maps a page number to a link target. A page of 0 or less means
// there is no page and must produce Placeholder.
type URLBuilder interface {
	Generate(page int) string
}

// URLFunc adapts a function to URLBuilder. The function is only called for
// positive pages.
type URLFunc func(page int) string

// Generate implements URLBuilder.
func (f URLFunc) Generate(page int) string {
	if page <= 0 {
		return Placeholder
	}
	return f(page)
}

// QueryURL sets the page parameter on a copy of an existing query string,
// so filters and sort options survive navigation.
type QueryURL struct {
	// Param is the page parameter name; DefaultPageParam when empty.
	Param string

	// Query is the caller's current query. It is never modified.
	Query url.Values
}

// NewQueryURL returns a QueryURL using DefaultPageParam.
func NewQueryURL(q url.Values) QueryURL {
	return QueryURL{Param: DefaultPageParam, Query: q}
}

// Generate implements URLBuilder.
func (u QueryURL) Generate(page int) string {
	if page <= 0 {
		return Placeholder
	}

	param := u.Param
	if param == "" {
		param = DefaultPageParam
	}

	q := make(url.Values, len(u.Query)+1)
	for k, v := range u.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Set(param, strconv.Itoa(page))
	return "?" + q.Encode()
}

// pageQuery is the query shape emitted by SimpleURL.
type pageQuery struct {
	Page int `url:"page"`
}

// SimpleURL links to "?page=N" and drops any other query parameters.
type SimpleURL struct{}

// Generate implements URLBuilder.
func (SimpleURL) Generate(page int) string {
	if page <= 0 {
		return Placeholder
	}
	v, err := query.Values(pageQuery{Page: page})
	if err != nil {
		return Placeholder
	}
	return "?" + v.Encode()
}

// PathURL appends the page number to a path prefix, e.g. "/posts/page/".
type PathURL struct {
	Prefix string
}

// Generate implements URLBuilder.
func (u PathURL) Generate(page int) string {
	if page <= 0 {
		return Placeholder
	}
	return u.Prefix + strconv.Itoa(page)
}
