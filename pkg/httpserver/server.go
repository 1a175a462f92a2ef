package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
)

// Server runs a handler until its context is cancelled and then drains
// in-flight requests.
type Server struct {
	cfg Config
	log *slog.Logger
	ln  net.Listener

	mu   sync.Mutex
	srv  *http.Server
	addr net.Addr
	once sync.Once
}

// New returns a Server for cfg.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		cfg: cfg.withDefaults(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr returns the bound address once Run has started listening.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves h and blocks until ctx is done or Shutdown is called.
// Listen and serve failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, h http.Handler) error {
	if h == nil {
		h = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	ln := s.ln
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.cfg.Addr); err != nil {
			s.mu.Unlock()
			return errors.Join(ErrStart, err)
		}
	}
	srv := &http.Server{
		Handler:           h,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.addr = ln.Addr()
	s.mu.Unlock()

	s.log.Info("http server starting", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Join(ErrStart, err)
	case <-ctx.Done():
		err := s.Shutdown(context.Background())
		<-errCh
		return err
	}
}

// Shutdown stops accepting connections and waits up to
// Config.ShutdownTimeout for active requests. Only the first call has an
// effect; calling it before Run is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		s.log.Info("http server stopped", slog.String("addr", s.Addr().String()))
	})
	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
