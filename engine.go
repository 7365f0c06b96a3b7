package theme

import (
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultExtension is the file extension appended to resolved template names.
const DefaultExtension = ".html"

// DefaultCacheDirName is the directory created under os.TempDir() when caching
// is enabled without an explicit path.
const DefaultCacheDirName = "themeengine_cache"

// Engine resolves and renders templates of the active theme.
// It is safe for concurrent use; every render gets its own Context.
type Engine struct {
	themesRoot  string
	activeTheme string
	ext         string
	baseURL     string
	cache       *CacheStore
	cacheDir    string
	useCache    bool
	funcs       template.FuncMap
	logger      *slog.Logger

	mu       sync.RWMutex
	compiled map[string]*ParsedFile
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache enables the on-disk cache store. An empty dir selects
// <os.TempDir()>/themeengine_cache.
func WithCache(dir string) Option {
	return func(e *Engine) {
		e.useCache = true
		e.cacheDir = dir
	}
}

// WithExtension overrides the template file extension (default ".html").
func WithExtension(ext string) Option {
	return func(e *Engine) {
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		e.ext = ext
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithBaseURL sets the base URL used by asset when no explicit one is passed.
func WithBaseURL(baseURL string) Option {
	return func(e *Engine) {
		e.baseURL = baseURL
	}
}

// WithFuncs adds extra template functions. Built-in names (extend, start,
// stop, yield, partial, get, asset, escape, dict) cannot be overridden.
func WithFuncs(funcs template.FuncMap) Option {
	return func(e *Engine) {
		for name, fn := range funcs {
			e.funcs[name] = fn
		}
	}
}

// New creates an engine rendering templates from themesRoot/activeTheme.
//
// When caching is requested the cache directory is created if missing. A
// failure to create it is logged and leaves the cache disabled; check
// CacheAvailable.
func New(themesRoot, activeTheme string, opts ...Option) *Engine {
	e := &Engine{
		themesRoot:  themesRoot,
		activeTheme: activeTheme,
		ext:         DefaultExtension,
		funcs:       template.FuncMap{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		compiled:    map[string]*ParsedFile{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.useCache {
		dir := e.cacheDir
		if dir == "" {
			dir = filepath.Join(os.TempDir(), DefaultCacheDirName)
		}
		cache, err := NewCacheStore(dir)
		if err != nil {
			e.logger.Warn("template cache disabled", "dir", dir, "error", err)
		} else {
			cache.SetLogger(e.logger)
			e.cache = cache
		}
	}

	e.logger.Debug("theme engine initialized",
		"themes_root", themesRoot,
		"theme", activeTheme,
		"cache", e.cache != nil,
	)
	return e
}

// CacheAvailable reports whether rendered sources go through the cache store.
func (e *Engine) CacheAvailable() bool {
	return e.cache != nil
}

// Cache returns the cache store, or nil when caching is off.
func (e *Engine) Cache() *CacheStore {
	return e.cache
}

// Theme returns the active theme name.
func (e *Engine) Theme() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.activeTheme
}

// ThemesRoot returns the directory holding all themes.
func (e *Engine) ThemesRoot() string {
	return e.themesRoot
}

// Extension returns the template file extension, including the dot.
func (e *Engine) Extension() string {
	return e.ext
}

// SetTheme switches the active theme. Renders started afterwards resolve
// against the new theme; output already captured is unaffected.
func (e *Engine) SetTheme(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.activeTheme = name
	e.logger.Info("active theme changed", "theme", name)
}

// Render executes the named template with params and returns the output,
// wrapped in its layout if the template called extend.
func (e *Engine) Render(name string, params Params, opts ...RenderOption) (string, error) {
	ctx := e.NewContext(params, opts...)
	return ctx.render(name)
}

// RenderTo renders like Render and writes the result to w. Nothing is written
// when rendering fails.
func (e *Engine) RenderTo(w io.Writer, name string, params Params, opts ...RenderOption) error {
	out, err := e.Render(name, params, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// load returns a parsed, never-executed template for path, parsing it again
// only when the file changed since the last parse.
func (e *Engine) load(path string) (*ParsedFile, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	p, ok := e.compiled[path]
	e.mu.RUnlock()
	if ok && p.ModTime.Equal(stat.ModTime()) && p.Size == stat.Size() {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err = parseFile(path, string(raw), stat.ModTime(), e.funcs)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.compiled[path] = p
	e.mu.Unlock()
	e.logger.Debug("template parsed", "path", path)
	return p, nil
}
