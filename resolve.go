package theme

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve maps a dotted or slashed template name to a file under the active
// theme ("pages.home" -> <root>/<theme>/pages/home.html). If no such file
// exists but name itself is an existing file path, name is returned as is.
func (e *Engine) Resolve(name string) (string, error) {
	rel := strings.ReplaceAll(name, ".", string(filepath.Separator))
	candidate := filepath.Join(e.themesRoot, e.Theme(), filepath.FromSlash(rel)+e.ext)
	if isFile(candidate) {
		e.logger.Debug("template resolved", "name", name, "path", candidate)
		return candidate, nil
	}
	if isFile(name) {
		e.logger.Debug("template resolved as literal path", "name", name)
		return name, nil
	}
	return "", &NotFoundError{Name: name, Candidate: candidate}
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}
