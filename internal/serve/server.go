package serve

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"garner/internal/domain"
	"garner/internal/ui"
)

// Server answers HTTP requests for documents resolved by a Router.
type Server struct {
	router *Router
	logger *zap.Logger
	http   *http.Server
}

// New builds a server over the docroot.
func New(docroot string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{router: NewRouter(docroot), logger: logger}
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 30 * time.Second,
	}
	return s
}

// Handler returns the request handler: GET only, fixed route table,
// Common Log Format lines on completion. The client address is always
// "-" since the network layer hides it.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, size := s.handle(w, r)
		s.logger.Info("- - - [" + ui.CLFTimestamp(time.Now()) + "] \"" + r.Method + " " + r.URL.Path + " " + r.Proto + "\" " +
			strconv.Itoa(status) + " " + strconv.Itoa(size))
	})
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) (status, size int) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed, len("Method Not Allowed\n")
	}

	file, contentType, err := s.router.Resolve(r.URL.Path)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("resolve failed", zap.String("path", r.URL.Path), zap.Error(err))
		}
		http.Error(w, "Not Found", http.StatusNotFound)
		return http.StatusNotFound, len("Not Found\n")
	}

	body, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return http.StatusNotFound, len("Not Found\n")
		}
		s.logger.Error("reading document", zap.String("file", file), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return http.StatusInternalServerError, len("Internal Server Error\n")
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	n, _ := w.Write(body)
	return http.StatusOK, n
}

// Serve answers requests on l until Shutdown or a listener error.
func (s *Server) Serve(l net.Listener) error {
	err := s.http.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and closes the listener, which
// unpublishes the service on the network side.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
