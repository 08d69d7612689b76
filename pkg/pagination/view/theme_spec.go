package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/pagenav/pkg/pagination"
)

// ErrInvalidCurrentTemplate is returned for a current-page template that
// does not contain exactly one %d verb.
var ErrInvalidCurrentTemplate = errors.New("current template must contain exactly one %d verb")

// RelLinkSpec overrides parts of a RelLink. Nil fields are left alone.
type RelLinkSpec struct {
	Content *string        `yaml:"content,omitempty" json:"content,omitempty"`
	Anchor  map[string]any `yaml:"anchor,omitempty"  json:"anchor,omitempty"`
	Item    map[string]any `yaml:"item,omitempty"    json:"item,omitempty"`
}

// ThemeSpec is the YAML/JSON form of a theme: a preset plus overrides.
// Attribute maps replace the preset's attributes for that slot entirely.
//
//	theme:
//	  preset: bootstrap5
//	  skip: "..."
//	  tags:
//	    current: {class: "active", aria-current: page}
type ThemeSpec struct {
	Preset   string                    `yaml:"preset,omitempty"   json:"preset,omitempty"`
	Skip     *string                   `yaml:"skip,omitempty"     json:"skip,omitempty"`
	Current  *string                   `yaml:"current,omitempty"  json:"current,omitempty"`
	Item     map[string]any            `yaml:"item,omitempty"     json:"item,omitempty"`
	Anchor   map[string]any            `yaml:"anchor,omitempty"   json:"anchor,omitempty"`
	Disabled map[string]any            `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Menu     map[string]any            `yaml:"menu,omitempty"     json:"menu,omitempty"`
	Previous *RelLinkSpec              `yaml:"previous,omitempty" json:"previous,omitempty"`
	Next     *RelLinkSpec              `yaml:"next,omitempty"     json:"next,omitempty"`
	Tags     map[string]map[string]any `yaml:"tags,omitempty"     json:"tags,omitempty"`
}

// Build resolves the preset and applies the overrides to it.
func (s ThemeSpec) Build() (*DefaultTheme, error) {
	base, err := Preset(s.Preset)
	if err != nil {
		return nil, err
	}
	return s.Apply(base)
}

// Apply returns a copy of base with the overrides applied.
func (s ThemeSpec) Apply(base *DefaultTheme) (*DefaultTheme, error) {
	t := base.Clone()

	if s.Skip != nil {
		t.SkipContent = *s.Skip
	}
	if s.Current != nil {
		if err := checkCurrentTemplate(*s.Current); err != nil {
			return nil, fmt.Errorf("theme current %q: %w", *s.Current, err)
		}
		t.CurrentTemplate = *s.Current
	}

	slots := []struct {
		name   string
		raw    map[string]any
		target *Attributes
	}{
		{"item", s.Item, &t.ItemAttrs},
		{"anchor", s.Anchor, &t.AnchorAttrs},
		{"disabled", s.Disabled, &t.DisabledAttrs},
		{"menu", s.Menu, &t.MenuAttrs},
	}
	for _, slot := range slots {
		if slot.raw == nil {
			continue
		}
		attrs, err := ParseAttributes(slot.raw)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", slot.name, err)
		}
		*slot.target = attrs
	}

	if err := s.Previous.apply("previous", &t.PreviousLink); err != nil {
		return nil, err
	}
	if err := s.Next.apply("next", &t.NextLink); err != nil {
		return nil, err
	}

	for name, raw := range s.Tags {
		tag, err := pagination.ParseTag(name)
		if err != nil {
			return nil, fmt.Errorf("theme tags: %w", err)
		}
		attrs, err := ParseAttributes(raw)
		if err != nil {
			return nil, fmt.Errorf("theme tags %s: %w", tag, err)
		}
		t.TagAttrs[tag] = attrs
	}

	return t, nil
}

func (r *RelLinkSpec) apply(name string, link *RelLink) error {
	if r == nil {
		return nil
	}
	if r.Content != nil {
		link.Content = *r.Content
	}
	if r.Anchor != nil {
		attrs, err := ParseAttributes(r.Anchor)
		if err != nil {
			return fmt.Errorf("theme %s anchor: %w", name, err)
		}
		link.Anchor = attrs
	}
	if r.Item != nil {
		attrs, err := ParseAttributes(r.Item)
		if err != nil {
			return fmt.Errorf("theme %s item: %w", name, err)
		}
		link.Item = attrs
	}
	return nil
}

// checkCurrentTemplate accepts templates whose only verb is a single %d,
// optionally with flags and a width. %% is a literal percent sign.
func checkCurrentTemplate(tmpl string) error {
	verbs := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		i++
		if i < len(tmpl) && tmpl[i] == '%' {
			continue
		}
		for i < len(tmpl) && strings.IndexByte("+-# 0123456789", tmpl[i]) >= 0 {
			i++
		}
		if i >= len(tmpl) || tmpl[i] != 'd' {
			return ErrInvalidCurrentTemplate
		}
		verbs++
	}
	if verbs != 1 {
		return ErrInvalidCurrentTemplate
	}
	return nil
}
