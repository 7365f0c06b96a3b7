package main

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	theme "github.com/dangdungcntt/go-theme"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the active theme over HTTP",
	Long: "Serve the active theme over HTTP.\n\n" +
		"GET /a/b renders template a.b (\"/\" renders index) with the query string as params.\n" +
		"Static files of the active theme are served from /themes/<theme>/; template sources are not.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = flagAddr
		}
		e, logger := newEngine(cfg)
		logger.Info("serving theme", "addr", cfg.Addr, "theme", e.Theme())
		return newRouter(e).Run(cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
}

func newRouter(e *theme.Engine) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	dir := filepath.Join(e.ThemesRoot(), e.Theme())
	r.StaticFS("/themes/"+e.Theme(), assetFS{fs: gin.Dir(dir, false), ext: e.Extension()})
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.AbortWithStatus(http.StatusMethodNotAllowed)
			return
		}
		name, ok := templateName(c.Request.URL.Path)
		if ok {
			ok = inTheme(e, name)
		}
		if !ok {
			c.String(http.StatusNotFound, "not found")
			return
		}
		params := theme.Params{}
		for k, v := range c.Request.URL.Query() {
			params[k] = v[len(v)-1]
		}
		out, err := e.Render(name, params, theme.WithRequest(c.Request))
		if err != nil {
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, "render error")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
	})
	return r
}

// templateName maps a URL path to a dotted template name. Paths containing
// dots are refused so requests cannot reach files outside the theme.
func templateName(urlPath string) (string, bool) {
	p := strings.Trim(path.Clean("/"+urlPath), "/")
	if p == "" {
		return "index", true
	}
	if strings.Contains(p, ".") {
		return "", false
	}
	return strings.ReplaceAll(p, "/", "."), true
}

// inTheme reports whether name resolves to a file of the active theme rather
// than to a literal path.
func inTheme(e *theme.Engine, name string) bool {
	p, err := e.Resolve(name)
	if err != nil {
		return false
	}
	dir := filepath.Clean(filepath.Join(e.ThemesRoot(), e.Theme()))
	return strings.HasPrefix(filepath.Clean(p), dir+string(filepath.Separator))
}

// assetFS hides template sources from the static file server.
type assetFS struct {
	fs  http.FileSystem
	ext string
}

func (a assetFS) Open(name string) (http.File, error) {
	if strings.EqualFold(path.Ext(name), a.ext) {
		return nil, os.ErrNotExist
	}
	return a.fs.Open(name)
}
