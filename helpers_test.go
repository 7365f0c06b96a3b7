package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFiles creates files (relative path -> content) under dir.
func writeFiles(tb testing.TB, dir string, files map[string]string) {
	tb.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0o644))
	}
}

// newTestEngine writes files into <tmp>/default and returns an engine on it.
func newTestEngine(tb testing.TB, files map[string]string, opts ...Option) *Engine {
	tb.Helper()
	root := tb.TempDir()
	writeFiles(tb, filepath.Join(root, "default"), files)
	return New(root, "default", opts...)
}
