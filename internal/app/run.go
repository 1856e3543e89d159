package app

import (
	"errors"
	"net/http"
)

// Run runs the app by making the HTTP server listen and serve
func (a *App) Run() error {

	// Create a notification channel to receive a signal
	// from when a shutdown is complete
	done := make(chan struct{})

	// Listen for SIGINT SIGTERM in a separate goroutine
	// Gracefully shut down the server there if needed.
	go a.Shutdown(done)

	a.logger.WithField("addr", a.server.Addr).Infof(
		"%s %s running on: http://%s",
		a.config.Service.Title, a.config.Service.Version, a.server.Addr,
	)

	// If the HTTP server was shut down, meaning
	// Shutdown(ctx) method was called,
	// ListenAndServe will return ErrServerClosed.
	err := a.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done // Wait for the graceful shutdown to complete
	a.logger.Info("Graceful shutdown complete.")

	return nil
}
