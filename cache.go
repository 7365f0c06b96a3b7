package theme

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// CacheExtension is the extension of mirrored template files.
const CacheExtension = ".tmpl"

// CacheStore mirrors template sources into a cache directory. Entries are
// named by a hash of the source path and refreshed when the source is newer.
// Entries are never evicted.
type CacheStore struct {
	dir    string
	logger *slog.Logger
}

// NewCacheStore returns a store rooted at dir, creating the directory if needed.
func NewCacheStore(dir string) (*CacheStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &CacheStore{
		dir:    dir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger used for hit and refresh decisions.
func (c *CacheStore) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Dir returns the cache directory.
func (c *CacheStore) Dir() string {
	return c.dir
}

// Path returns the cache file path for source. It depends only on the path
// string, never on file content.
func (c *CacheStore) Path(source string) string {
	sum := sha1.Sum([]byte(source))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+CacheExtension)
}

// Materialize returns the cache file for source, copying source over it first
// when the cache file is missing or older than source. The copy is written to
// a temp file and renamed into place, then stamped with the source mtime.
func (c *CacheStore) Materialize(source string) (string, error) {
	srcStat, err := os.Stat(source)
	if err != nil {
		return "", fmt.Errorf("stat template source: %w", err)
	}
	dst := c.Path(source)

	dstStat, err := os.Stat(dst)
	switch {
	case err == nil && !dstStat.ModTime().Before(srcStat.ModTime()):
		c.logger.Debug("template cache hit", "source", source, "cache", dst)
		return dst, nil
	case err != nil && !os.IsNotExist(err):
		return "", fmt.Errorf("stat cache file: %w", err)
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("read template source: %w", err)
	}
	if err := atomic.WriteFile(dst, bytes.NewReader(raw)); err != nil {
		return "", fmt.Errorf("write cache file %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, srcStat.ModTime(), srcStat.ModTime()); err != nil {
		return "", fmt.Errorf("stamp cache file %s: %w", dst, err)
	}
	c.logger.Debug("template cache refreshed", "source", source, "cache", dst)
	return dst, nil
}
