package pagination

// Meta summarizes a sequence for machine-readable output.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	Offset      int  `json:"offset"       yaml:"offset"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// Meta returns the pagination metadata for the clamped current page.
func (s *Sequence) Meta() Meta {
	_, hasPrevious := s.PreviousPage()
	_, hasNext := s.NextPage()

	return Meta{
		CurrentPage: s.current,
		PageSize:    s.cfg.PerPage,
		TotalPages:  s.totalPages,
		TotalItems:  s.cfg.TotalItems,
		Offset:      s.Offset(),
		HasPrevious: hasPrevious,
		HasNext:     hasNext,
	}
}
