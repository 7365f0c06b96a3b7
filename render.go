package theme

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

var _ render.HTMLRender = (*HTMLRender)(nil)

// HTMLRender makes an Engine usable as gin's HTML renderer:
//
//	r.HTMLRender = theme.NewHTMLRender(engine)
//	c.HTML(http.StatusOK, "pages.home", gin.H{"title": "Home"})
type HTMLRender struct {
	e *Engine
}

// NewHTMLRender creates a gin HTMLRender backed by e.
func NewHTMLRender(e *Engine) *HTMLRender {
	return &HTMLRender{e: e}
}

// Instance returns a render.Render for the named template.
func (h *HTMLRender) Instance(name string, data any) render.Render {
	return &Render{e: h.e, name: name, params: ToParams(data)}
}

// Render renders a themed template as a gin response.
type Render struct {
	e       *Engine
	name    string
	params  Params
	request *http.Request
}

// Render renders the template and writes it to w. Nothing is written on failure.
func (r *Render) Render(w http.ResponseWriter) error {
	var opts []RenderOption
	if r.request != nil {
		opts = append(opts, WithRequest(r.request))
	}
	out, err := r.e.Render(r.name, r.params, opts...)
	if err != nil {
		return err
	}
	r.WriteContentType(w)
	_, err = w.Write([]byte(out))
	return err
}

// WriteContentType writes an HTML content type to the response header if not set.
func (r *Render) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}

// HTML renders the named template as the response of c. The request is bound
// to the render so asset can derive the base URL from it.
func (e *Engine) HTML(c *gin.Context, code int, name string, params Params) {
	c.Render(code, &Render{e: e, name: name, params: params, request: c.Request})
}

// ToParams converts template data to Params. Maps with string keys are used
// as is; any other non-nil value is exposed under the "data" key.
func ToParams(data any) Params {
	if data == nil {
		return Params{}
	}
	if p, ok := asParams(data); ok {
		return p
	}
	return Params{"data": data}
}

// asParams converts the string-keyed map types templates commonly receive.
func asParams(data any) (Params, bool) {
	switch v := data.(type) {
	case Params:
		return v, true
	case gin.H:
		return Params(v), true
	case map[string]any:
		return v, true
	case map[string]string:
		p := make(Params, len(v))
		for k, s := range v {
			p[k] = s
		}
		return p, true
	default:
		return nil, false
	}
}
