package pagination

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tag classifies the role of a page position in the rendered sequence.
type Tag uint8

const (
	// TagFirst marks page 1.
	TagFirst Tag = iota
	// TagLast marks the final page.
	TagLast
	// TagHead marks pages before the current page.
	TagHead
	// TagTail marks pages after the current page.
	TagTail
	// TagCurrent marks the current page.
	TagCurrent
	// TagSkipBefore marks the window floor; pages are elided before it.
	TagSkipBefore
	// TagSkipAfter marks the window ceiling; pages are elided after it.
	TagSkipAfter

	numTags = 7
)

// AllTags lists every tag in canonical order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var AllTags = [numTags]Tag{
	TagFirst, TagLast, TagHead, TagTail, TagCurrent, TagSkipBefore, TagSkipAfter,
}

//nolint:gochecknoglobals // Fixed lookup table.
var tagNames = [numTags]string{
	"FIRST", "LAST", "HEAD", "TAIL", "CURRENT", "SKIP_BEFORE", "SKIP_AFTER",
}

// String returns the upper-case tag name, e.g. "SKIP_BEFORE".
func (t Tag) String() string {
	if int(t) < numTags {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", t)
}

// ParseTag resolves a tag name. Matching ignores case and accepts '-' in
// place of '_', so "skip-before" and "SKIP_BEFORE" are the same tag.
func ParseTag(name string) (Tag, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i, n := range tagNames {
		if n == normalized {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so tags can be used as
// map keys in YAML and JSON documents.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TagSet is a set of tags. The zero value is the empty set.
type TagSet uint8

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...Tag) TagSet {
	var s TagSet
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	return s&(1<<t) != 0
}

// With returns the set with t added.
func (s TagSet) With(t Tag) TagSet {
	return s | 1<<t
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	n := 0
	for _, t := range AllTags {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Tags returns the members in canonical order.
func (s TagSet) Tags() []Tag {
	tags := make([]Tag, 0, numTags)
	for _, t := range AllTags {
		if s.Has(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

// String renders the set as "{FIRST,CURRENT}".
func (s TagSet) String() string {
	names := make([]string, 0, numTags)
	for _, t := range s.Tags() {
		names = append(names, t.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// MarshalJSON encodes the set as a list of tag names.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}

// UnmarshalJSON decodes a list of tag names.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []Tag
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}

// MarshalYAML encodes the set as a list of tag names.
func (s TagSet) MarshalYAML() (any, error) {
	names := make([]string, 0, numTags)
	for _, t := range s.Tags() {
		names = append(names, t.String())
	}
	return names, nil
}
