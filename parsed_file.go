package theme

import (
	"fmt"
	"html/template"
	"maps"
	"time"
)

// ParsedFile is a parsed template source. Its template is never executed
// directly; each render runs on a clone bound to the render's Context.
type ParsedFile struct {
	// Path is the file the template was read from
	Path string
	// Raw is the raw file content
	Raw string
	// ModTime is the file modification time at parse time
	ModTime time.Time
	// Size is the file size at parse time
	Size int64

	tmpl *template.Template
}

func parseFile(path, raw string, modTime time.Time, extra template.FuncMap) (*ParsedFile, error) {
	funcs := template.FuncMap{}
	maps.Copy(funcs, extra)
	maps.Copy(funcs, (*Context)(nil).funcMap(nil))

	tmpl, err := template.New(path).Funcs(funcs).Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return &ParsedFile{
		Path:    path,
		Raw:     raw,
		ModTime: modTime,
		Size:    int64(len(raw)),
		tmpl:    tmpl,
	}, nil
}

// Instance returns an executable clone of the template with funcs bound.
func (p *ParsedFile) Instance(funcs template.FuncMap) (*template.Template, error) {
	t, err := p.tmpl.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone template %s: %w", p.Path, err)
	}
	return t.Funcs(funcs), nil
}
