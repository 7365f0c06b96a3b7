package theme

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetURL(t *testing.T) {
	assert.Equal(t, "http://cdn/themes/t/x.css", AssetURL("http://cdn/", "t", "x.css"))
	assert.Equal(t, "http://cdn/themes/t/css/x.css", AssetURL("http://cdn", "t", "/css/x.css/"))
}

func TestEngine_Asset(t *testing.T) {
	e := New(t.TempDir(), "t")
	assert.Equal(t, "http://cdn/themes/t/x.css", e.Asset("x.css", "http://cdn/"))
	assert.Equal(t, "http://localhost/themes/t/x.css", e.Asset("x.css"))

	e = New(t.TempDir(), "t", WithBaseURL("https://static.example.com/"))
	assert.Equal(t, "https://static.example.com/themes/t/x.css", e.Asset("x.css"))
	assert.Equal(t, "http://cdn/themes/t/x.css", e.Asset("x.css", "http://cdn"))
}

func TestRequestInfo_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		info RequestInfo
		want string
	}{
		{"no host", RequestInfo{}, DefaultBaseURL},
		{"http", RequestInfo{Host: "example.com", ScriptPath: "/index.php"}, "http://example.com"},
		{"https", RequestInfo{HTTPS: "on", Host: "example.com"}, "https://example.com"},
		{"https off", RequestInfo{HTTPS: "off", Host: "example.com"}, "http://example.com"},
		{"https OFF", RequestInfo{HTTPS: "OFF", Host: "example.com"}, "http://example.com"},
		{"subdir", RequestInfo{Host: "example.com:8080", ScriptPath: "/app/index.php"}, "http://example.com:8080/app"},
		{"relative script", RequestInfo{Host: "example.com", ScriptPath: "index.php"}, "http://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.BaseURL())
		})
	}
}

func TestRequestInfoFromHTTP(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/pages/home", nil)
	info := RequestInfoFromHTTP(r)
	assert.Equal(t, "", info.HTTPS)
	assert.Equal(t, "http://example.com", info.BaseURL())

	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://example.com", RequestInfoFromHTTP(r).BaseURL())

	r = httptest.NewRequest("GET", "http://example.com/", nil)
	r.Header.Set("HTTPS", "on")
	assert.Equal(t, "https://example.com", RequestInfoFromHTTP(r).BaseURL())
	r.Header.Set("HTTPS", "off")
	assert.Equal(t, "http://example.com", RequestInfoFromHTTP(r).BaseURL())

	r = httptest.NewRequest("GET", "http://example.com/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	r.Header.Set("X-Forwarded-Prefix", "/shop/")
	assert.Equal(t, "https://example.com/shop", RequestInfoFromHTTP(r).BaseURL())
}

func TestRender_AssetFromRequest(t *testing.T) {
	e := newTestEngine(t, map[string]string{
		"page.html": `{{ asset "app.js" }} {{ asset "app.js" "http://cdn" }}`,
	})

	r := httptest.NewRequest("GET", "http://shop.test/", nil)
	out, err := e.Render("page", nil, WithRequest(r))
	assert.NoError(t, err)
	assert.Equal(t, "http://shop.test/themes/default/app.js http://cdn/themes/default/app.js", out)

	out, err = e.Render("page", nil, WithRequestInfo(RequestInfo{HTTPS: "on", Host: "secure.test"}))
	assert.NoError(t, err)
	assert.Equal(t, "https://secure.test/themes/default/app.js http://cdn/themes/default/app.js", out)

	out, err = e.Render("page", nil)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost/themes/default/app.js http://cdn/themes/default/app.js", out)
}
