package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"clubhouse/internal/platform/config"
	"clubhouse/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server
}

// Option tweaks a Server before it is built
type Option func(*Server)

// WithAddr overrides API_PORT, e.g. "127.0.0.1:0" in tests
func WithAddr(addr string) Option { return func(s *Server) { s.addr = addr } }

// WithMux lets callers mount on the raw *chi.Mux
func WithMux(fn func(*chi.Mux)) Option { return func(s *Server) { fn(s.mux) } }

// NewServer reads API_PORT (default :4000), READ_TIMEOUT, WRITE_TIMEOUT and
// SHUTDOWN_GRACE from cfg
func NewServer(cfg config.Conf, opts ...Option) *Server {
	s := &Server{
		addr:  cfg.MayPort("API_PORT", ":4000"),
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		mux:   chi.NewRouter(),
	}
	for _, o := range opts {
		o(s)
	}
	s.srv = &stdhttp.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 30*time.Second),
	}
	return s
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is done, then drains in-flight requests for up to the
// shutdown grace. A clean shutdown returns nil
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
