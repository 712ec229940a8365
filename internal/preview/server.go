// Package preview serves the rendered site locally, receives page
// activation beacons and regenerates the site when sources change.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	th "git.home.luguber.info/inful/docsite/internal/theme"
)

// Server is the preview HTTP server.
type Server struct {
	addr      string
	publicDir string
	theme     th.Theme
	gatherer  prom.Gatherer
	srv       *http.Server
}

// NewServer creates a server for publicDir. Mount beacons are dispatched
// to theme; gatherer backs /metrics and may be nil.
func NewServer(addr, publicDir string, theme th.Theme, gatherer prom.Gatherer) *Server {
	if theme == nil {
		theme = th.NullTheme{}
	}
	return &Server{addr: addr, publicDir: publicDir, theme: theme, gatherer: gatherer}
}

// Handler returns the request multiplexer.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(th.MountPath, s.handleMount)
	if s.gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	}
	mux.Handle("/", http.FileServer(http.Dir(s.publicDir)))
	return mux
}

// handleMount turns a beacon into a theme page activation. Requests marked
// with the render header come from server-side rendering.
func (s *Server) handleMount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	mc := th.MountContext{
		Path: r.URL.Query().Get("path"),
		SSR:  r.Header.Get(th.RenderHeader) == "server",
	}
	slog.Debug("Page mounted", logfields.Path(mc.Path), "ssr", mc.SSR)
	s.theme.OnPageMount(mc)
	w.WriteHeader(http.StatusNoContent)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryNetwork, "failed to listen").
			WithContext("addr", s.addr).Build()
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", logfields.Addr(ln.Addr().String()))
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return ferrors.WrapError(err, ferrors.CategoryNetwork, "preview server failed").Build()
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	slog.Info("Shutting down preview server")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
	<-errCh
	return nil
}
