package pagination

import "iter"

// firstPage is the page every non-empty sequence starts on.
const firstPage = 1

// minFloor is the smallest window floor worth a gap marker. A floor of 2
// would elide nothing between page 1 and the floor.
const minFloor = 3

// maxPrealloc caps the capacity Positions reserves up front.
const maxPrealloc = 1 << 10

// Position is a page number paired with its tags.
type Position struct {
	Page int    `json:"page" yaml:"page"`
	Tags TagSet `json:"tags" yaml:"tags"`
}

// Sequence is the compressed, tagged traversal of the pages to display.
//
// The traversal has three zones: page 1 alone, a dense window from the
// floor to the ceiling around the current page, and the last page alone.
// When the floor or ceiling is absent the corresponding zone is dense.
//
// A Sequence holds a single traversal cursor and must not be traversed by
// more than one caller at a time. Reset restarts the traversal; the
// computed range and tags never change after construction.
type Sequence struct {
	cfg        Config
	totalPages int
	current    int

	// floor and ceiling are 0 when absent.
	floor   int
	ceiling int

	pos     int
	started bool
}

// New validates the parameters and computes the page range.
func New(totalItems, perPage, currentPage, neighbors int) (*Sequence, error) {
	return NewSequence(Config{
		TotalItems:  totalItems,
		PerPage:     perPage,
		CurrentPage: currentPage,
		Neighbors:   neighbors,
	})
}

// NewSequence validates cfg and computes the page range. It returns a
// *ConfigurationError when PerPage or Neighbors is below 1. Any CurrentPage
// is accepted: values below 1 become 1 and values past the last page
// become the last page.
func NewSequence(cfg Config) (*Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sequence{cfg: cfg}
	s.calculate()
	return s, nil
}

func (s *Sequence) calculate() {
	s.current = s.cfg.CurrentPage
	if s.current < firstPage {
		s.current = firstPage
	}

	s.totalPages = s.cfg.TotalPages()
	if s.current > s.totalPages {
		s.current = s.totalPages
	}

	// Compare before forming the thresholds: Neighbors may be math.MaxInt.
	s.floor, s.ceiling = 0, 0
	if s.cfg.Neighbors <= s.current-1-minFloor {
		s.floor = s.current - s.cfg.Neighbors - 1
	}
	if s.cfg.Neighbors < s.totalPages-s.current-1 {
		s.ceiling = s.current + s.cfg.Neighbors + 1
	}
}

// Config returns the configuration the sequence was built from.
func (s *Sequence) Config() Config { return s.cfg }

// TotalPages returns the number of pages.
func (s *Sequence) TotalPages() int { return s.totalPages }

// CurrentPage returns the clamped current page. It is 0 only for an empty
// collection.
func (s *Sequence) CurrentPage() int { return s.current }

// RequestedPage returns the current page as supplied, before clamping.
func (s *Sequence) RequestedPage() int { return s.cfg.CurrentPage }

// Clamped reports whether the requested page had to be corrected.
func (s *Sequence) Clamped() bool { return s.current != s.cfg.CurrentPage }

// PreviousPage returns the page before the current one, if any.
func (s *Sequence) PreviousPage() (int, bool) {
	prev := s.current - 1
	if prev > 0 {
		return prev, true
	}
	return 0, false
}

// NextPage returns the page after the current one, if any.
func (s *Sequence) NextPage() (int, bool) {
	if s.current < s.totalPages {
		return s.current + 1, true
	}
	return 0, false
}

// Floor returns the first page of the dense window when pages are elided
// before it.
func (s *Sequence) Floor() (int, bool) { return s.floor, s.floor != 0 }

// Ceiling returns the last page of the dense window when pages are elided
// after it.
func (s *Sequence) Ceiling() (int, bool) { return s.ceiling, s.ceiling != 0 }

// Offset returns the number of items preceding the current page.
func (s *Sequence) Offset() int {
	if s.current < firstPage {
		return 0
	}
	return (s.current - 1) * s.cfg.PerPage
}

// Tags classifies page p against the computed range.
func (s *Sequence) Tags(p int) TagSet {
	var tags TagSet
	if p == firstPage {
		tags = tags.With(TagFirst)
	}
	if p == s.totalPages {
		tags = tags.With(TagLast)
	}
	if p == s.current {
		tags = tags.With(TagCurrent)
	}
	if s.floor != 0 && p == s.floor {
		tags = tags.With(TagSkipBefore)
	}
	if s.ceiling != 0 && p == s.ceiling {
		tags = tags.With(TagSkipAfter)
	}

	switch {
	case p < s.current:
		tags = tags.With(TagHead)
	case p > s.current:
		tags = tags.With(TagTail)
	}
	return tags
}

// Reset rewinds the traversal to its initial state.
func (s *Sequence) Reset() {
	s.pos = 0
	s.started = false
}

// Next advances to the next page position and reports whether one exists.
// The first call positions the cursor on page 1.
func (s *Sequence) Next() bool {
	if !s.started {
		s.started = true
		s.pos = firstPage
		return s.valid()
	}
	// The cursor stays on the last page once exhausted, so pos never
	// increments past totalPages.
	if s.pos >= s.totalPages {
		return false
	}

	s.pos++
	switch {
	case s.floor != 0 && s.pos < s.floor:
		s.pos = s.floor
	case s.ceiling != 0 && s.pos > s.ceiling && s.pos < s.totalPages:
		s.pos = s.totalPages
	}
	return s.valid()
}

func (s *Sequence) valid() bool {
	return s.pos <= s.totalPages
}

// Position returns the position under the cursor. It is only meaningful
// after Next has returned true.
func (s *Sequence) Position() Position {
	return Position{Page: s.pos, Tags: s.Tags(s.pos)}
}

// All resets the sequence and returns an iterator over its page numbers
// and tags in traversal order.
func (s *Sequence) All() iter.Seq2[int, TagSet] {
	return func(yield func(int, TagSet) bool) {
		s.Reset()
		for s.Next() {
			p := s.Position()
			if !yield(p.Page, p.Tags) {
				return
			}
		}
	}
}

// Positions resets the sequence and collects a full traversal.
func (s *Sequence) Positions() []Position {
	positions := make([]Position, 0, min(s.estimateLen(), maxPrealloc))
	for page, tags := range s.All() {
		positions = append(positions, Position{Page: page, Tags: tags})
	}
	return positions
}

// estimateLen bounds the traversal length: page 1, the floor, the
// neighbours on either side of the current page, the ceiling and the last
// page. It never exceeds totalPages.
func (s *Sequence) estimateLen() int {
	const edges = 4
	if s.cfg.Neighbors >= (s.totalPages-edges)/2 {
		return max(s.totalPages, 0)
	}
	return 2*s.cfg.Neighbors + 1 + edges
}
