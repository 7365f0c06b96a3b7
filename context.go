package theme

import (
	"errors"
	"fmt"
	"html/template"
	"maps"
	"net/http"
	"strings"
)

// Params are the named values bound to a template. Inside a template they are
// the dot value, so {{ .title }} reads params["title"].
type Params map[string]any

// Get returns params[key], or def when the key is absent.
func (p Params) Get(key string, def any) any {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Merge returns a copy of p overlaid with other. Keys of other win.
func (p Params) Merge(other Params) Params {
	out := make(Params, len(p)+len(other))
	maps.Copy(out, p)
	maps.Copy(out, other)
	return out
}

// RenderOption configures a single render.
type RenderOption func(*Context)

// WithRequest binds request metadata so asset can guess the base URL.
func WithRequest(r *http.Request) RenderOption {
	return func(c *Context) {
		info := RequestInfoFromHTTP(r)
		c.request = &info
	}
}

// WithRequestInfo binds already extracted request metadata.
func WithRequestInfo(info RequestInfo) RenderOption {
	return func(c *Context) {
		c.request = &info
	}
}

// frame is one output capture scope: either a template execution or an open block.
type frame struct {
	buf   strings.Builder
	block string
	open  bool
}

// Context is the state of one render: params, captured blocks, the capture
// stack and the pending layout. A Context must not be shared between
// concurrent renders.
type Context struct {
	engine   *Engine
	root     Params
	params   Params
	blocks   map[string]string
	frames   []*frame
	layout   string
	inLayout bool
	request  *RequestInfo
}

// NewContext returns a fresh render context bound to params.
func (e *Engine) NewContext(params Params, opts ...RenderOption) *Context {
	c := &Context{engine: e}
	for _, opt := range opts {
		opt(c)
	}
	if params == nil {
		params = Params{}
	}
	c.root = params
	c.reset()
	return c
}

func (c *Context) reset() {
	c.params = c.root
	c.blocks = map[string]string{}
	c.frames = nil
	c.layout = ""
	c.inLayout = false
}

// Render resets the context and renders name. If the template extends a
// layout, the layout is rendered with the template output as "content".
// Only one layout level is applied.
func (c *Context) Render(name string) (string, error) {
	c.reset()
	return c.render(name)
}

func (c *Context) render(name string) (string, error) {
	content, err := c.execute(name, c.params)
	if err != nil {
		return "", err
	}
	if c.layout == "" {
		return content, nil
	}

	layout := c.layout
	c.layout = ""
	c.inLayout = true
	defer func() { c.inLayout = false }()

	c.params = c.params.Merge(Params{"content": template.HTML(content)})
	return c.execute(layout, c.params)
}

// Partial renders name with the context params overlaid by params. Blocks
// started in the partial are shared with the enclosing render.
func (c *Context) Partial(name string, params Params) (string, error) {
	return c.execute(name, c.params.Merge(params))
}

// Extend records the layout for the current render. The last call wins.
// Calls made while the layout itself renders are ignored.
func (c *Context) Extend(layout string) {
	if c.inLayout {
		c.engine.logger.Warn("nested extend ignored", "layout", layout)
		return
	}
	c.layout = layout
}

// Layout returns the pending layout name.
func (c *Context) Layout() string {
	return c.layout
}

// Start opens a block; output is captured until the matching End.
func (c *Context) Start(name string) {
	c.frames = append(c.frames, &frame{block: name, open: true})
}

// End closes the innermost open block and appends its output to the block's
// content. It fails with ErrEmptyBlockStack when the current template has no
// open block.
func (c *Context) End() error {
	if len(c.frames) == 0 || !c.frames[len(c.frames)-1].open {
		return ErrEmptyBlockStack
	}
	top := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	c.blocks[top.block] += top.buf.String()
	return nil
}

// Yield returns the content of block name, or def if it was never started.
func (c *Context) Yield(name string, def ...string) string {
	if v, ok := c.blocks[name]; ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// OpenBlocks lists open block names, innermost last.
func (c *Context) OpenBlocks() []string {
	var names []string
	for _, f := range c.frames {
		if f.open {
			names = append(names, f.block)
		}
	}
	return names
}

// Get returns the render param key, or def.
func (c *Context) Get(key string, def any) any {
	return c.params.Get(key, def)
}

// Asset builds a theme asset URL, guessing the base URL from the bound
// request when none is configured or passed.
func (c *Context) Asset(p string, baseURL ...string) string {
	return AssetURL(c.engine.assetBase(c.request, baseURL), c.engine.Theme(), p)
}

// Write appends to the innermost capture scope.
func (c *Context) Write(b []byte) (int, error) {
	if len(c.frames) == 0 {
		return 0, errors.New("theme: write outside template execution")
	}
	return c.frames[len(c.frames)-1].buf.Write(b)
}

// execute resolves name, runs it with params and returns its captured output.
// On failure the captured output is dropped.
func (c *Context) execute(name string, params Params) (string, error) {
	path, err := c.engine.Resolve(name)
	if err != nil {
		return "", err
	}
	if cache := c.engine.cache; cache != nil {
		if path, err = cache.Materialize(path); err != nil {
			return "", err
		}
	}
	parsed, err := c.engine.load(path)
	if err != nil {
		return "", err
	}
	tmpl, err := parsed.Instance(c.funcMap(params))
	if err != nil {
		return "", err
	}

	base := len(c.frames)
	c.frames = append(c.frames, &frame{})
	if err := tmpl.Execute(c, params); err != nil {
		c.frames = c.frames[:base]
		return "", err
	}
	if len(c.frames) > base+1 {
		open := c.frames[len(c.frames)-1].block
		c.frames = c.frames[:base]
		return "", fmt.Errorf(`%w: "%s" in template "%s"`, ErrUnclosedBlock, open, name)
	}
	out := c.frames[base].buf.String()
	c.frames = c.frames[:base]
	return out, nil
}
