package daemon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/marmos91/finfo/internal/logger"
)

// DefaultShutdownTimeout is the default timeout for graceful shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// AuxiliaryServer is an interface for the daemon's HTTP servers (API, Metrics).
type AuxiliaryServer interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Port() int
}

// Daemon orchestrates server startup and graceful shutdown.
type Daemon struct {
	shutdownTimeout time.Duration
	apiServer       AuxiliaryServer
	metricsServer   AuxiliaryServer

	// serveOnce ensures Serve() is only called once
	serveOnce sync.Once
	served    bool
}

// New creates a new daemon.
func New(shutdownTimeout time.Duration) *Daemon {
	if shutdownTimeout == 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &Daemon{
		shutdownTimeout: shutdownTimeout,
	}
}

// SetAPIServer sets the REST API HTTP server.
// Must be called before Serve().
func (d *Daemon) SetAPIServer(server AuxiliaryServer) {
	if d.served {
		panic("cannot set API server after Serve() has been called")
	}
	d.apiServer = server
	if server != nil {
		logger.Info("API server registered", "port", server.Port())
	}
}

// SetMetricsServer sets the Prometheus metrics HTTP server.
// Must be called before Serve().
func (d *Daemon) SetMetricsServer(server AuxiliaryServer) {
	if d.served {
		panic("cannot set metrics server after Serve() has been called")
	}
	d.metricsServer = server
	if server != nil {
		logger.Info("Metrics server registered", "port", server.Port())
	}
}

// Serve starts all servers and blocks until the context is cancelled or a
// server fails, then performs graceful shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	var err error

	d.serveOnce.Do(func() {
		d.served = true
		err = d.serve(ctx)
	})

	return err
}

// serve is the internal implementation of Serve().
func (d *Daemon) serve(ctx context.Context) error {
	logger.Info("Starting finfod")

	errChan := make(chan error, 2)

	// Start metrics server first so collection metrics are visible from the
	// moment the API starts answering
	if d.metricsServer != nil {
		go func() {
			if err := d.metricsServer.Start(ctx); err != nil {
				logger.Error("Metrics server error", "error", err)
				errChan <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	if d.apiServer != nil {
		go func() {
			if err := d.apiServer.Start(ctx); err != nil {
				logger.Error("API server error", "error", err)
				errChan <- fmt.Errorf("API server error: %w", err)
			}
		}()
	}

	// Wait for shutdown signal or server error
	var shutdownErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received", "reason", ctx.Err())
		shutdownErr = ctx.Err()

	case err := <-errChan:
		logger.Error("Server failed - initiating shutdown", "error", err)
		shutdownErr = err
	}

	d.shutdown()

	logger.Info("finfod stopped")
	return shutdownErr
}

// shutdown stops the servers, sharing the shutdown timeout as the total
// budget. The API server stops first so in-flight collections drain while
// metrics stay scrapeable.
func (d *Daemon) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer cancel()

	if d.apiServer != nil {
		logger.Debug("Stopping API server")
		if err := d.apiServer.Stop(ctx); err != nil {
			logger.Error("API server shutdown error", "error", err)
		}
	}

	if d.metricsServer != nil {
		logger.Debug("Stopping metrics server")
		if err := d.metricsServer.Stop(ctx); err != nil {
			logger.Error("Metrics server shutdown error", "error", err)
		}
	}
}
