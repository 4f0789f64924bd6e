package server

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	actx "github.com/Pigges/json-extractor/app/context"
	"github.com/Pigges/json-extractor/web/client"
	"github.com/Pigges/json-extractor/web/server/api"
	"github.com/Pigges/json-extractor/web/server/middleware"
)

// Server is a wrapper around http.Server with some custom behavior.
type Server struct {
	*http.Server
	logger *slog.Logger
	ready  chan string
}

// New returns a new web Server instance that will listen on addr, and serve
// extraction requests authenticated with secretKey.
func New(appCtx *actx.Context, addr, secretKey string) *Server {
	logger := appCtx.Logger.With("component", "web-server")
	srv := &Server{
		Server: &http.Server{
			Handler:           SetupHandlers(secretKey, logger),
			Addr:              addr,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      5 * time.Minute,
		},
		logger: logger,
		ready:  make(chan string, 1),
	}

	return srv
}

// ListenAndServe starts the HTTP server. It stores the actual listen address,
// which is convenient when the address is dynamically determined by the
// system (e.g. ':0'), and sends it on the channel returned by Ready.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	s.Addr = ln.Addr().String()
	s.logger.Info("started listener", "address", s.Addr)
	s.ready <- s.Addr

	//nolint:wrapcheck // This is fine.
	return s.Serve(ln)
}

// Ready returns a channel that receives the listen address once the server
// is accepting connections.
func (s *Server) Ready() <-chan string {
	return s.ready
}

// SetupHandlers configures the server HTTP handlers.
func SetupHandlers(secretKey string, logger *slog.Logger) http.Handler {
	fetcher := client.New(nil, logger)
	mux := api.SetupHandlers(secretKey, fetcher, logger)

	return middleware.Chain(mux, middleware.RequestID(), middleware.Logger(logger))
}
