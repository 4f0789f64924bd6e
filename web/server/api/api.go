package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Pigges/json-extractor/web/server/handler"
)

// Fetcher retrieves and decodes a remote JSON document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (any, error)
}

// Handler is the API endpoint handler.
type Handler struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// New returns a new API handler that fetches documents with fetcher.
func New(fetcher Fetcher, logger *slog.Logger) *Handler {
	return &Handler{fetcher: fetcher, logger: logger}
}

// SetupHandlers configures the web API handlers. Requests are authenticated
// with the shared secret key.
func SetupHandlers(secretKey string, fetcher Fetcher, logger *slog.Logger) http.Handler {
	h := New(fetcher, logger)
	mux := http.NewServeMux()

	extractPipeline := handler.NewPipeline().
		Auth(handler.SharedKeyAuth(secretKey)).
		Serialize(handler.QueryText()).
		Logger(logger)
	extract := handler.Handle(h.Extract, extractPipeline)

	mux.Handle("/api/extract", extract)
	mux.Handle("/{$}", extract)

	return mux
}
