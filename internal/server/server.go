// Package server exposes the synthetic user collection over HTTP.
//
// Routes:
//
//	GET /users          a page of users (offset, limit, total, delay)
//	GET /users/{id}     one user (total, delay)
//	GET /info           the accepted parameters and their bounds
//	GET /health         liveness for process managers
//
// Every response is JSON and carries CORS headers. OPTIONS is answered with
// an empty success response and any other method with a 405 error.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/conneroisu/vlistdata/internal/config"
	"github.com/conneroisu/vlistdata/internal/errors"
	"github.com/conneroisu/vlistdata/internal/logging"
	"github.com/conneroisu/vlistdata/internal/validation"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the user API.
type Server struct {
	config    *config.Config
	limits    validation.Limits
	logger    logging.Logger
	handler   http.Handler
	info      Info
	startedAt time.Time

	// sleep performs the artificial delay; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error

	// baseCtx is the parent of every request context and is cancelled on
	// shutdown so pending delays end early.
	baseCtx    context.Context
	cancelBase context.CancelFunc

	serverMutex sync.RWMutex
	httpServer  *http.Server
	listener    net.Listener
	isShutdown  bool
}

// New creates a server for cfg. A nil logger discards all output.
func New(cfg *config.Config, logger logging.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server: config cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	baseCtx, cancel := context.WithCancel(context.Background())

	s := &Server{
		config:     cfg,
		limits:     cfg.Limits(),
		logger:     logger.WithComponent("server"),
		startedAt:  time.Now(),
		sleep:      sleepContext,
		baseCtx:    baseCtx,
		cancelBase: cancel,
	}
	s.info = buildInfo(s.limits)

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.handler = chain(mux,
		s.recoverMiddleware,
		s.requestIDMiddleware,
		s.loggingMiddleware,
		securityHeadersMiddleware,
		s.corsMiddleware,
		methodGuardMiddleware,
	)

	return s, nil
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/users", s.handleUsers)
	mux.HandleFunc("/users/{id}", s.handleUser)
	mux.HandleFunc("/info", s.handleInfo)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleNotFound)
}

// Handler returns the complete handler including middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Listen binds the configured address. Port 0 picks a free port.
func (s *Server) Listen() error {
	s.serverMutex.Lock()
	defer s.serverMutex.Unlock()

	if s.isShutdown {
		return fmt.Errorf("server: already shut down")
	}
	if s.listener != nil {
		return nil
	}

	addr := net.JoinHostPort(s.config.Server.Host, strconv.Itoa(s.config.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.NewEnhancedError(
			fmt.Sprintf("Failed to listen on %s", addr),
			err,
			errors.ServerStartError(err, s.config.Server.Port),
		)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.baseCtx },
	}
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	s.serverMutex.RLock()
	defer s.serverMutex.RUnlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve accepts connections until Shutdown. It returns nil after a clean
// shutdown.
func (s *Server) Serve() error {
	s.serverMutex.RLock()
	srv, ln := s.httpServer, s.listener
	s.serverMutex.RUnlock()

	if srv == nil || ln == nil {
		return fmt.Errorf("server: Serve called before Listen")
	}

	s.logger.Info(context.Background(), "Listening",
		"addr", ln.Addr().String(),
		"environment", s.config.Server.Environment)

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: serve failed: %w", err)
	}
	return nil
}

// Run listens and serves until ctx is done, then shuts down within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(s.Serve)

	eg.Go(func() error {
		<-ctx.Done()

		timeout := s.config.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Pending artificial delays are cut short. Calling it again is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.serverMutex.Lock()
	defer s.serverMutex.Unlock()

	if s.isShutdown {
		return nil
	}
	s.isShutdown = true
	s.cancelBase()

	if s.httpServer == nil {
		return nil
	}

	s.logger.Info(ctx, "Shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown failed: %w", err)
	}
	return nil
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
