// Package params holds the flag parameters of the render command and their
// validation.
//
// The current page is given either directly (--current, repeatable) or as
// an item offset (--offset) that is converted to the page containing it.
// The two modes are mutually exclusive.
package params
