package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHTMLRender(t *testing.T) {
	e := newTestEngine(t, map[string]string{
		"layout.html":     `<main>{{ .content }}</main>`,
		"pages/home.html": `{{ extend "layout" }}Hi {{ .name }} <a href="{{ asset "x.css" }}">x</a>`,
	})

	r := gin.New()
	r.HTMLRender = NewHTMLRender(e)
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "pages.home", gin.H{"name": "Ann"})
	})
	r.GET("/req", func(c *gin.Context) {
		e.HTML(c, http.StatusCreated, "pages.home", Params{"name": "Bob"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `<main>Hi Ann <a href="http://localhost/themes/default/x.css">x</a></main>`, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://shop.test/req", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `<main>Hi Bob <a href="http://shop.test/themes/default/x.css">x</a></main>`, w.Body.String())
}

func TestRender_WriteContentTypeKeepsExisting(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("Content-Type", "text/plain")
	(&Render{}).WriteContentType(w)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
}

func TestToParams(t *testing.T) {
	type page struct{ Title string }

	assert.Equal(t, Params{}, ToParams(nil))
	assert.Equal(t, Params{"a": 1}, ToParams(gin.H{"a": 1}))
	assert.Equal(t, Params{"a": 1}, ToParams(map[string]any{"a": 1}))
	assert.Equal(t, Params{"a": "b"}, ToParams(map[string]string{"a": "b"}))
	assert.Equal(t, Params{"data": page{Title: "x"}}, ToParams(page{Title: "x"}))

	p := Params{"k": "v"}
	require.Equal(t, p, ToParams(p))
}
