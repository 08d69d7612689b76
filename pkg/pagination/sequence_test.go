package pagination

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pages extracts the page numbers from a traversal.
func pages(positions []Position) []int {
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		out = append(out, p.Page)
	}
	return out
}

func TestNewSequence_TotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		perPage    int
		want       int
	}{
		{name: "exact multiple", totalItems: 100, perPage: 10, want: 10},
		{name: "partial last page", totalItems: 101, perPage: 10, want: 11},
		{name: "fewer items than page size", totalItems: 3, perPage: 10, want: 1},
		{name: "single item per page", totalItems: 7, perPage: 1, want: 7},
		{name: "empty collection", totalItems: 0, perPage: 10, want: 0},
		{name: "max items", totalItems: math.MaxInt, perPage: 10, want: math.MaxInt/10 + 1},
		{name: "max items single per page", totalItems: math.MaxInt, perPage: 1, want: math.MaxInt},
		{name: "max page size", totalItems: math.MaxInt, perPage: math.MaxInt, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.totalItems, tt.perPage, 1, DefaultNeighbors)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seq.TotalPages())
		})
	}
}

func TestNewSequence_ClampsCurrentPage(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "above last page", requested: 999, want: 10},
		{name: "zero", requested: 0, want: 1},
		{name: "negative", requested: -5, want: 1},
		{name: "in range", requested: 4, want: 4},
		{name: "last page", requested: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(100, 10, tt.requested, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seq.CurrentPage())
			assert.Equal(t, tt.requested, seq.RequestedPage())
			assert.Equal(t, tt.requested != tt.want, seq.Clamped())
		})
	}
}

func TestNewSequence_ConfigurationError(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
		wantErr   error
	}{
		{
			name:      "zero per page",
			cfg:       Config{TotalItems: 100, PerPage: 0, CurrentPage: 1, Neighbors: 4},
			wantField: "PerPage",
			wantErr:   ErrInvalidPerPage,
		},
		{
			name:      "negative per page",
			cfg:       Config{TotalItems: 0, PerPage: -3, CurrentPage: 50, Neighbors: 4},
			wantField: "PerPage",
			wantErr:   ErrInvalidPerPage,
		},
		{
			name:      "zero neighbors",
			cfg:       Config{TotalItems: 100, PerPage: 10, CurrentPage: 1, Neighbors: 0},
			wantField: "Neighbors",
			wantErr:   ErrInvalidNeighbors,
		},
		{
			name:      "zero neighbors with out of range page",
			cfg:       Config{TotalItems: 5, PerPage: 10, CurrentPage: -1, Neighbors: 0},
			wantField: "Neighbors",
			wantErr:   ErrInvalidNeighbors,
		},
		{
			name:      "per page checked before neighbors",
			cfg:       Config{TotalItems: 100, PerPage: 0, CurrentPage: 1, Neighbors: 0},
			wantField: "PerPage",
			wantErr:   ErrInvalidPerPage,
		},
		{
			name:      "negative total items",
			cfg:       Config{TotalItems: -1, PerPage: 10, CurrentPage: 1, Neighbors: 4},
			wantField: "TotalItems",
			wantErr:   ErrInvalidTotalItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := NewSequence(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, seq)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.Contains(t, err.Error(), "invalid pagination configuration")
		})
	}
}

func TestSequence_GapThresholds(t *testing.T) {
	seq, err := New(200, 10, 10, 2)
	require.NoError(t, err)

	floor, ok := seq.Floor()
	require.True(t, ok)
	assert.Equal(t, 7, floor)

	ceiling, ok := seq.Ceiling()
	require.True(t, ok)
	assert.Equal(t, 13, ceiling)

	positions := seq.Positions()
	assert.Equal(t, []int{1, 7, 8, 9, 10, 11, 12, 13, 20}, pages(positions))

	want := map[int]TagSet{
		1:  NewTagSet(TagFirst, TagHead),
		7:  NewTagSet(TagSkipBefore, TagHead),
		8:  NewTagSet(TagHead),
		10: NewTagSet(TagCurrent),
		12: NewTagSet(TagTail),
		13: NewTagSet(TagSkipAfter, TagTail),
		20: NewTagSet(TagLast, TagTail),
	}
	for _, p := range positions {
		if tags, ok := want[p.Page]; ok {
			assert.Equal(t, tags, p.Tags, "page %d: got %s want %s", p.Page, p.Tags, tags)
		}
	}
}

func TestSequence_NoGaps(t *testing.T) {
	seq, err := New(50, 10, 3, 4)
	require.NoError(t, err)

	_, hasFloor := seq.Floor()
	_, hasCeiling := seq.Ceiling()
	assert.False(t, hasFloor)
	assert.False(t, hasCeiling)

	positions := seq.Positions()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pages(positions))
	for _, p := range positions {
		assert.False(t, p.Tags.Has(TagSkipBefore), "page %d", p.Page)
		assert.False(t, p.Tags.Has(TagSkipAfter), "page %d", p.Page)
	}
}

func TestSequence_Traversals(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    []int
		current int
	}{
		{
			name:    "clamped to last page",
			cfg:     Config{TotalItems: 100, PerPage: 10, CurrentPage: 999, Neighbors: 4},
			want:    []int{1, 5, 6, 7, 8, 9, 10},
			current: 10,
		},
		{
			name:    "first page",
			cfg:     Config{TotalItems: 100, PerPage: 10, CurrentPage: 1, Neighbors: 2},
			want:    []int{1, 2, 3, 4, 10},
			current: 1,
		},
		{
			name:    "single page",
			cfg:     Config{TotalItems: 10, PerPage: 10, CurrentPage: 1, Neighbors: 1},
			want:    []int{1},
			current: 1,
		},
		{
			name:    "deep middle",
			cfg:     Config{TotalItems: 1000, PerPage: 10, CurrentPage: 50, Neighbors: 1},
			want:    []int{1, 48, 49, 50, 51, 52, 100},
			current: 50,
		},
		{
			name:    "smallest floor",
			cfg:     Config{TotalItems: 120, PerPage: 10, CurrentPage: 6, Neighbors: 2},
			want:    []int{1, 3, 4, 5, 6, 7, 8, 9, 12},
			current: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := NewSequence(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.current, seq.CurrentPage())
			assert.Equal(t, tt.want, pages(seq.Positions()))
		})
	}
}

func TestSequence_SinglePageCarriesAllEdgeTags(t *testing.T) {
	seq, err := New(10, 10, 1, 1)
	require.NoError(t, err)

	require.True(t, seq.Next())
	pos := seq.Position()
	assert.Equal(t, 1, pos.Page)
	assert.Equal(t, NewTagSet(TagFirst, TagLast, TagCurrent), pos.Tags)
	assert.False(t, seq.Next())
}

func TestSequence_HeadTailCombineWithSkipTags(t *testing.T) {
	seq, err := New(1000, 10, 50, 1)
	require.NoError(t, err)

	floor, _ := seq.Floor()
	ceiling, _ := seq.Ceiling()

	floorTags := seq.Tags(floor)
	assert.True(t, floorTags.Has(TagSkipBefore))
	assert.True(t, floorTags.Has(TagHead))
	assert.False(t, floorTags.Has(TagTail))

	ceilingTags := seq.Tags(ceiling)
	assert.True(t, ceilingTags.Has(TagSkipAfter))
	assert.True(t, ceilingTags.Has(TagTail))
	assert.False(t, ceilingTags.Has(TagHead))

	current := seq.Tags(50)
	assert.False(t, current.Has(TagHead))
	assert.False(t, current.Has(TagTail))
}

func TestSequence_ResetIsDeterministic(t *testing.T) {
	seq, err := New(200, 10, 10, 2)
	require.NoError(t, err)

	first := seq.Positions()

	// Partially consume, then restart.
	seq.Reset()
	require.True(t, seq.Next())
	require.True(t, seq.Next())

	second := seq.Positions()
	third := seq.Positions()

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
}

func TestSequence_AllStopsEarly(t *testing.T) {
	seq, err := New(200, 10, 10, 2)
	require.NoError(t, err)

	var seen []int
	for page := range seq.All() {
		seen = append(seen, page)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 7, 8}, seen)
}

func TestSequence_NextAfterExhaustion(t *testing.T) {
	seq, err := New(30, 10, 2, 4)
	require.NoError(t, err)

	count := 0
	for seq.Next() {
		count++
	}
	assert.Equal(t, 3, count)
	assert.False(t, seq.Next())
	assert.False(t, seq.Next())
}

func TestSequence_Neighbours(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		perPage    int
		current    int
		neighbors  int
		wantPrev   int
		hasPrev    bool
		wantNext   int
		hasNext    bool
	}{
		{name: "first page", totalItems: 100, perPage: 10, current: 1, neighbors: 4,
			hasPrev: false, wantNext: 2, hasNext: true},
		{name: "middle page", totalItems: 100, perPage: 10, current: 5, neighbors: 4,
			wantPrev: 4, hasPrev: true, wantNext: 6, hasNext: true},
		{name: "last page", totalItems: 100, perPage: 10, current: 10, neighbors: 4,
			wantPrev: 9, hasPrev: true, hasNext: false},
		{name: "huge neighbors", totalItems: 100, perPage: 10, current: 5, neighbors: math.MaxInt,
			wantPrev: 4, hasPrev: true, wantNext: 6, hasNext: true},
		{name: "last of max pages", totalItems: math.MaxInt, perPage: 1, current: math.MaxInt, neighbors: 2,
			wantPrev: math.MaxInt - 1, hasPrev: true, hasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.totalItems, tt.perPage, tt.current, tt.neighbors)
			require.NoError(t, err)

			prev, ok := seq.PreviousPage()
			assert.Equal(t, tt.hasPrev, ok)
			assert.Equal(t, tt.wantPrev, prev)

			next, ok := seq.NextPage()
			assert.Equal(t, tt.hasNext, ok)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestSequence_ExtremeInputs(t *testing.T) {
	maxPages := math.MaxInt/10 + 1

	tests := []struct {
		name        string
		totalItems  int
		perPage     int
		current     int
		neighbors   int
		want        []int
		wantFloor   bool
		wantCeiling bool
	}{
		{
			name:       "max items near the start",
			totalItems: math.MaxInt, perPage: 10, current: 3, neighbors: 2,
			want:        []int{1, 2, 3, 4, 5, 6, maxPages},
			wantCeiling: true,
		},
		{
			name:       "max items on the last page",
			totalItems: math.MaxInt, perPage: 1, current: math.MaxInt, neighbors: 2,
			want: []int{
				1, math.MaxInt - 3, math.MaxInt - 2, math.MaxInt - 1, math.MaxInt,
			},
			wantFloor: true,
		},
		{
			name:       "huge neighbors keep the window dense",
			totalItems: 100, perPage: 10, current: 5, neighbors: math.MaxInt,
			want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:       "huge neighbors with max items",
			totalItems: math.MaxInt, perPage: math.MaxInt, current: 1, neighbors: math.MaxInt,
			want: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.totalItems, tt.perPage, tt.current, tt.neighbors)
			require.NoError(t, err)

			positions := seq.Positions()
			assert.Equal(t, tt.want, pages(positions))

			_, hasFloor := seq.Floor()
			_, hasCeiling := seq.Ceiling()
			assert.Equal(t, tt.wantFloor, hasFloor)
			assert.Equal(t, tt.wantCeiling, hasCeiling)
		})
	}
}

func TestSequence_AlwaysYieldsCurrentPage(t *testing.T) {
	totals := []int{1, 9, 10, 11, 95, 1000, math.MaxInt}
	perPages := []int{1, 10, math.MaxInt}
	currents := []int{math.MinInt, -1, 0, 1, 2, 5, 50, math.MaxInt}
	neighbors := []int{1, 2, 4, 100, math.MaxInt / 2, math.MaxInt}

	for _, total := range totals {
		for _, perPage := range perPages {
			for _, current := range currents {
				for _, n := range neighbors {
					seq, err := New(total, perPage, current, n)
					require.NoError(t, err)
					if n > 1000 && seq.TotalPages() > 1000 {
						// The window would cover billions of pages.
						continue
					}

					found, last, count := false, 0, 0
					for page, tags := range seq.All() {
						if page <= last || page > seq.TotalPages() {
							t.Fatalf("page %d out of order: total=%d perPage=%d current=%d neighbors=%d",
								page, total, perPage, current, n)
						}
						last = page
						count++
						if tags.Has(TagCurrent) {
							found = page == seq.CurrentPage()
						}
					}
					if n <= 1000 {
						assert.LessOrEqual(t, count, 2*n+5)
					}
					assert.True(t, found,
						"current page missing: total=%d perPage=%d current=%d neighbors=%d",
						total, perPage, current, n)
				}
			}
		}
	}
}

func TestSequence_EmptyCollection(t *testing.T) {
	seq, err := New(0, 10, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, 0, seq.TotalPages())
	assert.Equal(t, 0, seq.CurrentPage())
	assert.Empty(t, seq.Positions())

	_, hasPrev := seq.PreviousPage()
	_, hasNext := seq.NextPage()
	assert.False(t, hasPrev)
	assert.False(t, hasNext)
	assert.Equal(t, 0, seq.Offset())
}

func TestSequence_Meta(t *testing.T) {
	seq, err := New(95, 10, 3, 4)
	require.NoError(t, err)

	meta := seq.Meta()
	assert.Equal(t, Meta{
		CurrentPage: 3,
		PageSize:    10,
		TotalPages:  10,
		TotalItems:  95,
		Offset:      20,
		HasPrevious: true,
		HasNext:     true,
	}, meta)
}

func TestSequence_EstimateLenBounds(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		perPage    int
		neighbors  int
		want       int
	}{
		{name: "empty", totalItems: 0, perPage: 10, neighbors: 4, want: 0},
		{name: "few pages", totalItems: 30, perPage: 10, neighbors: 4, want: 3},
		{name: "window smaller than range", totalItems: 1000, perPage: 10, neighbors: 2, want: 9},
		{name: "max neighbors", totalItems: 100, perPage: 10, neighbors: math.MaxInt, want: 10},
		{name: "max items", totalItems: math.MaxInt, perPage: 1, neighbors: math.MaxInt, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.totalItems, tt.perPage, 1, tt.neighbors)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seq.estimateLen())
		})
	}
}
