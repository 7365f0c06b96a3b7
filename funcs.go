package theme

import (
	"fmt"
	"html/template"
)

// funcMap returns the template functions bound to c, with get reading scope.
// A nil c yields placeholders that only satisfy parsing. These names take
// precedence over functions registered with WithFuncs.
func (c *Context) funcMap(scope Params) template.FuncMap {
	return template.FuncMap{
		"extend": func(layout string) string {
			c.Extend(layout)
			return ""
		},
		"start": func(name string) string {
			c.Start(name)
			return ""
		},
		"stop": func() (string, error) {
			return "", c.End()
		},
		"yield": func(name string, def ...string) template.HTML {
			return template.HTML(c.Yield(name, def...))
		},
		"partial": func(name string, args ...any) (template.HTML, error) {
			params, err := partialParams(args)
			if err != nil {
				return "", err
			}
			out, err := c.Partial(name, params)
			return template.HTML(out), err
		},
		"get": func(key string, def ...any) any {
			var d any
			if len(def) > 0 {
				d = def[0]
			}
			return scope.Get(key, d)
		},
		"asset": func(p string, baseURL ...string) string {
			return c.Asset(p, baseURL...)
		},
		"escape": func(v any) template.HTML {
			return template.HTML(Escape(v))
		},
		"dict": dict,
	}
}

// partialParams accepts either a single map or key/value pairs.
func partialParams(args []any) (Params, error) {
	if len(args) == 1 {
		if args[0] == nil {
			return nil, nil
		}
		if p, ok := asParams(args[0]); ok {
			return p, nil
		}
	}
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("partial: expected a map or key/value pairs, got %d arguments", len(args))
	}
	return dict(args...), nil
}

func dict(v ...any) Params {
	d := Params{}
	for i := 0; i < len(v); i += 2 {
		key := fmt.Sprint(v[i])
		if i+1 >= len(v) {
			d[key] = ""
			continue
		}
		d[key] = v[i+1]
	}
	return d
}
