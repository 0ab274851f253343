package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"garner/internal/domain"
)

const (
	sessionsDir = "sessions"
	cacheDir    = "cache"
	dirMode     = 0o700
)

// Session owns one invocation-exclusive state directory and references
// the shared cache directory. Close removes the private directory only.
type Session struct {
	private string
	shared  string

	mu     sync.Mutex
	closed bool
}

// Open allocates a session under the default per-user data directory.
func Open() (*Session, error) {
	base, err := defaultBaseDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	return OpenAt(base)
}

// OpenAt allocates a session under base: a fresh private scope at
// base/sessions/<random> and the shared scope at base/cache. The shared
// scope is created if absent and never locked.
func OpenAt(base string) (*Session, error) {
	name, err := scopeName()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(base, sessionsDir), dirMode); err != nil {
		return nil, err
	}
	shared := filepath.Join(base, cacheDir)
	if err := os.MkdirAll(shared, dirMode); err != nil {
		return nil, err
	}
	return open(base, name, shared)
}

// open creates the private scope. Mkdir (not MkdirAll) so an existing
// directory fails loudly instead of silently aliasing another
// invocation's scope.
func open(base, name, shared string) (*Session, error) {
	private := filepath.Join(base, sessionsDir, name)
	if err := os.Mkdir(private, dirMode); err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionCollision, private)
		}
		return nil, err
	}
	return &Session{private: private, shared: shared}, nil
}

// PrivateDir is the invocation-exclusive state directory.
func (s *Session) PrivateDir() string { return s.private }

// CacheDir is the shared, cross-invocation cache directory.
func (s *Session) CacheDir() string { return s.shared }

// Close removes the private scope. Safe to call more than once; the
// shared scope is left untouched.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return os.RemoveAll(s.private)
}

// scopeName returns a 128-bit random hex name.
func scopeName() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("allocating session name: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

// defaultBaseDir resolves the per-user data directory for this program:
// $XDG_DATA_HOME/garner, else ~/.local/share/garner, with the platform
// location on macOS.
func defaultBaseDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "garner"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "garner"), nil
	}
	return filepath.Join(home, ".local", "share", "garner"), nil
}
