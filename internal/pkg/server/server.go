package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/logger"
)

// GracefulServer runs an Echo server until its context is cancelled, then
// drains in-flight requests and runs the registered shutdown hooks
type GracefulServer struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	hooks           *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, addr string, shutdownTimeout time.Duration, hooks *ShutdownManager) *GracefulServer {
	if hooks == nil {
		hooks = NewShutdownManager()
	}
	return &GracefulServer{
		echo:            e,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		hooks:           hooks,
	}
}

// Run blocks until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.hooks.Shutdown(context.Background())
			return err
		}
		return nil
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones, then runs the hooks
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down HTTP server", logger.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}

	s.hooks.Shutdown(ctx)
	return err
}

// ShutdownManager runs named cleanup functions in registration order
type ShutdownManager struct {
	mu    sync.Mutex
	names []string
	fns   []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.names = append(sm.names, name)
	sm.fns = append(sm.fns, fn)
}

// Shutdown runs every hook once; a failing hook does not stop the rest
func (sm *ShutdownManager) Shutdown(ctx context.Context) {
	sm.mu.Lock()
	names, fns := sm.names, sm.fns
	sm.names, sm.fns = nil, nil
	sm.mu.Unlock()

	for i, fn := range fns {
		if err := fn(ctx); err != nil {
			logger.Error("Error during component shutdown",
				logger.String("component", names[i]),
				logger.Err(err))
			continue
		}
		logger.Info("Component shut down", logger.String("component", names[i]))
	}
}
