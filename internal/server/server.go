package server

import (
	"context"
	"net/http"
)

// Handler defines the interface for HTTP request handlers served during login.
// Implementations handle specific endpoints (the OAuth callback).
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the path patterns this handler serves
}

// Callback is the short-lived localhost server that receives the identity
// provider's redirect. It serves exactly the routes its handler declares and
// is shut down by the caller once a result is delivered.
type Callback struct {
	server *http.Server
}

// NewCallback creates a callback server on addr serving handler's routes.
func NewCallback(addr string, handler Handler) *Callback {
	mux := http.NewServeMux()
	for _, route := range handler.Routes() {
		mux.Handle(route, handler)
	}

	return &Callback{
		server: &http.Server{Addr: addr, Handler: mux},
	}
}

// Start begins serving in the background.
//
// The returned channel receives at most one listener failure; a graceful
// shutdown produces nothing.
func (c *Callback) Start() <-chan error {
	errs := make(chan error, 1)
	go func() {
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()
	return errs
}

// Shutdown stops the server, waiting for in-flight requests up to ctx's deadline.
func (c *Callback) Shutdown(ctx context.Context) error {
	return c.server.Shutdown(ctx)
}
