package serve

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"garner/internal/domain"
)

const (
	indexHTML = "index.html"
	indexTXT  = "index.txt"
)

// contentTypes is the full extension table this server speaks.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
}

// Router resolves request paths against a docroot.
type Router struct {
	root string
}

// NewRouter builds a router over root. The root must exist; callers
// check that at startup.
func NewRouter(root string) *Router {
	return &Router{root: root}
}

// Resolve maps a request path to the file to serve and its content
// type. It returns domain.ErrNotFound for paths outside the table and
// for traversal attempts, decided before touching the filesystem.
func (r *Router) Resolve(requestPath string) (file, contentType string, err error) {
	if escapesRoot(requestPath) {
		return "", "", fmt.Errorf("%w: path escapes docroot", domain.ErrNotFound)
	}

	switch path.Clean("/" + requestPath) {
	case "/":
		for _, name := range []string{indexHTML, indexTXT} {
			candidate := filepath.Join(r.root, name)
			if _, statErr := os.Stat(candidate); statErr == nil {
				return candidate, contentTypes[filepath.Ext(name)], nil
			}
		}
		return "", "", fmt.Errorf("%w: no index document", domain.ErrNotFound)
	case "/" + indexHTML:
		return filepath.Join(r.root, indexHTML), contentTypes[".html"], nil
	case "/" + indexTXT:
		return filepath.Join(r.root, indexTXT), contentTypes[".txt"], nil
	default:
		return "", "", domain.ErrNotFound
	}
}

// escapesRoot reports whether the raw request path could resolve
// outside the docroot. Checked on the raw path, so a traversal never
// reaches Clean-based normalization or the filesystem.
func escapesRoot(requestPath string) bool {
	for _, seg := range strings.Split(requestPath, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}
