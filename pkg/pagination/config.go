package pagination

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Pagination defaults used when the caller does not specify a value.
const (
	DefaultPerPage     = 10
	DefaultCurrentPage = 1
	DefaultNeighbors   = 4
)

// Config holds the inputs of a single pagination render request.
// It is a plain value: build it once, validate it once, never mutate it.
//
// Field order matters: validation reports the first failing field, so
// PerPage is checked before Neighbors.
type Config struct {
	// TotalItems is the size of the underlying collection.
	TotalItems int `json:"total_items" yaml:"total_items" validate:"gte=0"`

	// PerPage is the number of items on one page.
	PerPage int `json:"per_page" yaml:"per_page" validate:"gte=1"`

	// CurrentPage is the 1-based page being displayed. Out-of-range values
	// are clamped rather than rejected.
	CurrentPage int `json:"current_page" yaml:"current_page"`

	// Neighbors is how many pages to show on each side of the current page
	// before a gap marker appears.
	Neighbors int `json:"neighbors" yaml:"neighbors" validate:"gte=1"`
}

// NewConfig returns a Config with the default current page and neighbor window.
func NewConfig(totalItems, perPage int) Config {
	return Config{
		TotalItems:  totalItems,
		PerPage:     perPage,
		CurrentPage: DefaultCurrentPage,
		Neighbors:   DefaultNeighbors,
	}
}

// validate is safe for concurrent use and caches struct metadata.
//
//nolint:gochecknoglobals // validator.Validate is designed to be shared.
var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps Config fields to the sentinel reported for them.
//
//nolint:gochecknoglobals // Fixed lookup table.
var fieldErrors = map[string]error{
	"TotalItems": ErrInvalidTotalItems,
	"PerPage":    ErrInvalidPerPage,
	"Neighbors":  ErrInvalidNeighbors,
}

// Validate checks the structural constraints of the configuration.
// It returns a *ConfigurationError for the first failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	first := validationErrs[0]
	value, _ := first.Value().(int)
	return &ConfigurationError{
		Field: first.StructField(),
		Value: value,
		Err:   fieldErrors[first.StructField()],
	}
}

// TotalPages returns ceil(TotalItems / PerPage). It returns 0 for a
// configuration with a non-positive PerPage. The result is exact for any
// TotalItems up to math.MaxInt.
func (c Config) TotalPages() int {
	if c.PerPage <= 0 || c.TotalItems <= 0 {
		return 0
	}
	return (c.TotalItems-1)/c.PerPage + 1
}
