package httpserver

import (
	"context"
	"net/http"
	"time"
)

// New returns an *http.Server with sane timeouts for a small API gateway.
// Handler timeouts for long uploads are governed by the router middleware.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Shutdown gracefully stops the server, waiting up to timeout for in-flight
// requests to finish.
func Shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
