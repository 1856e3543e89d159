package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// Shutdown listens for SIGINT and SIGTERM signals,
// gracefully shuts down the HTTP server,
// performs cleanup and informs the main goroutine when done.
func (a *App) Shutdown(done chan<- struct{}) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Blocks until an interruption signal is received
	<-ctx.Done()

	a.logger.Info("Shutting down gracefully, press Ctrl+C again to force...")

	// Stop watching for termination signals,
	// a second Ctrl+C kills the process immediately
	stop()

	// In-flight requests get a few seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.WithError(err).Error("Server forced to shutdown")
	}

	if a.cleanup != nil {
		a.logger.Info("Closing Redis connections...")
		if err := a.cleanup(); err != nil {
			a.logger.WithError(err).Error("Error during cleanup")
		}
	}

	a.logger.Info("Server exiting...")

	// Notify the main goroutine that the shutdown is complete
	done <- struct{}{}
}
