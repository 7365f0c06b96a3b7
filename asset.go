package theme

import (
	"net/http"
	"path"
	"strings"
)

// DefaultBaseURL is used by asset when no base URL is given or detectable.
const DefaultBaseURL = "http://localhost"

// RequestInfo is the request metadata used to guess a base URL.
type RequestInfo struct {
	// HTTPS marks a secure transport when non-empty and not "off".
	HTTPS string
	// Host is the Host header value.
	Host string
	// ScriptPath is the path of the entry point; its directory becomes the URL prefix.
	ScriptPath string
}

// RequestInfoFromHTTP extracts RequestInfo from r. The HTTPS header is taken
// as the secure flag; a TLS connection or an X-Forwarded-Proto of https marks
// the request secure regardless. X-Forwarded-Prefix becomes the directory prefix.
func RequestInfoFromHTTP(r *http.Request) RequestInfo {
	info := RequestInfo{
		HTTPS:      r.Header.Get("HTTPS"),
		Host:       r.Host,
		ScriptPath: strings.TrimRight(r.Header.Get("X-Forwarded-Prefix"), "/") + "/",
	}
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		info.HTTPS = "on"
	}
	return info
}

// BaseURL builds scheme://host/dir from the request metadata. It falls back
// to DefaultBaseURL when the host is unknown. Development use only.
func (r RequestInfo) BaseURL() string {
	if r.Host == "" {
		return DefaultBaseURL
	}
	scheme := "http"
	if r.HTTPS != "" && !strings.EqualFold(r.HTTPS, "off") {
		scheme = "https"
	}
	dir := ""
	if r.ScriptPath != "" {
		dir = path.Dir(r.ScriptPath)
		if dir == "." || dir == "/" {
			dir = ""
		}
	}
	return scheme + "://" + r.Host + dir
}

// AssetURL joins baseURL with themes/<theme>/<p>, trimming slashes at the seams.
func AssetURL(baseURL, theme, p string) string {
	return strings.Trim(baseURL, "/") + "/" + strings.Trim("themes/"+theme+"/"+p, "/")
}

// Asset returns the URL of a static file of the active theme. Without an
// explicit baseURL the engine's configured base URL is used, else DefaultBaseURL.
func (e *Engine) Asset(p string, baseURL ...string) string {
	return AssetURL(e.assetBase(nil, baseURL), e.Theme(), p)
}

func (e *Engine) assetBase(req *RequestInfo, baseURL []string) string {
	if len(baseURL) > 0 && baseURL[0] != "" {
		return baseURL[0]
	}
	if e.baseURL != "" {
		return e.baseURL
	}
	if req != nil {
		return req.BaseURL()
	}
	return DefaultBaseURL
}
