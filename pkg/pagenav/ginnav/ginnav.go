// Package ginnav builds pagenav options from a gin request.
package ginnav

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rshade/pagenav/pkg/pagenav"
	"github.com/rshade/pagenav/pkg/pagination"
	"github.com/rshade/pagenav/pkg/pagination/view"
)

// Options returns base with TotalItems, CurrentPage and URL taken from c.
//
// The page parameter is "page" unless base.URL is a view.QueryURL with its
// own Param, in which case that name is used. A missing or unparseable page
// selects page 1. When base.URL is nil or a view.QueryURL, the links keep
// the request's other query parameters. Any other URLBuilder is kept as is.
func Options(c *gin.Context, totalItems int, base pagenav.Options) pagenav.Options {
	param := view.DefaultPageParam
	queryURL, isQuery := base.URL.(view.QueryURL)
	if isQuery && queryURL.Param != "" {
		param = queryURL.Param
	}

	opts := base
	opts.TotalItems = totalItems
	opts.CurrentPage = parsePage(c, param)

	if base.URL == nil || isQuery {
		opts.URL = view.QueryURL{Param: param, Query: c.Request.URL.Query()}
	}
	return opts
}

// Render renders the navigation for the request in c.
func Render(c *gin.Context, totalItems int, base pagenav.Options) (string, error) {
	return pagenav.Render(Options(c, totalItems, base))
}

func parsePage(c *gin.Context, param string) int {
	val := c.Query(param)
	if val == "" {
		return pagination.DefaultCurrentPage
	}
	page, err := strconv.Atoi(val)
	if err != nil {
		return pagination.DefaultCurrentPage
	}
	return page
}
