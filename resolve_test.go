package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"default/pages/home.html": "home",
		"default/index.html":      "index",
		"other/pages/home.html":   "other",
	})
	literal := filepath.Join(t.TempDir(), "one-off.gohtml")
	require.NoError(t, os.WriteFile(literal, []byte("x"), 0o644))

	e := New(root, "default")

	tests := []struct {
		name string
		want string
	}{
		{"pages.home", filepath.Join(root, "default", "pages", "home.html")},
		{"pages/home", filepath.Join(root, "default", "pages", "home.html")},
		{"index", filepath.Join(root, "default", "index.html")},
		{literal, literal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := e.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"default/pages/home.html": "home",
	})
	e := New(root, "default")

	for _, name := range []string{"pages.missing", "missing", filepath.Join(root, "nope.html"), ""} {
		_, err := e.Resolve(name)
		assert.ErrorIs(t, err, ErrTemplateNotFound, name)
	}
}

func TestResolve_DirectoryIsNotATemplate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "default", "pages.html"), 0o755))
	e := New(root, "default")

	_, err := e.Resolve("pages")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestResolve_FollowsActiveTheme(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"other/pages/home.html": "other",
	})
	e := New(root, "default")

	_, err := e.Resolve("pages.home")
	require.ErrorIs(t, err, ErrTemplateNotFound)

	e.SetTheme("other")
	got, err := e.Resolve("pages.home")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "other", "pages", "home.html"), got)
}
