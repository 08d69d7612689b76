package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/pkg/pagination/view"
)

// newDefaultTarget returns a Config with known non-default values so tests
// can verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	skip := "..."
	return &config.Config{
		Pagination: config.PaginationConfig{PerPage: 25, Neighbors: 2, PageParam: "p"},
		Theme: view.ThemeSpec{
			Preset: view.PresetBootstrap5,
			Skip:   &skip,
			Tags:   map[string]map[string]any{"current": {"class": "is-current"}},
		},
		Logging: config.LoggingConfig{Level: "warn", Format: "json"},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
pagination:
  per_page: 50
  neighbors: 3
  page_param: page
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, config.PaginationConfig{PerPage: 50, Neighbors: 3, PageParam: "page"}, target.Pagination)
	assert.Equal(t, view.PresetBootstrap5, target.Theme.Preset)
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_SectionReplacedWhole(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
theme:
  tags:
    first:
      class: edge
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Empty(t, target.Theme.Preset)
	assert.Nil(t, target.Theme.Skip)
	assert.Equal(t, map[string]map[string]any{"first": {"class": "edge"}}, target.Theme.Tags)
}

func TestShallowMergeYAML_PartialSectionZeroesMissingFields(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "logging:\n  level: debug\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, config.LoggingConfig{Level: "debug"}, target.Logging)
}

func TestShallowMergeYAML_EmptyAndUnknown(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "comments only", content: "# nothing here\n"},
		{name: "unknown keys", content: "plugins:\n  aws: {}\nextra: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newDefaultTarget()
			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, tt.content)))
			assert.Equal(t, newDefaultTarget(), target)
		})
	}
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "unused"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "pagination: [unclosed\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("wrong section shape", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "pagination:\n  per_page: lots\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "pagination"`)
	})
}
