package client

import (
	"log/slog"
	"net/http"
)

// Client fetches JSON documents from remote HTTP endpoints.
type Client struct {
	*http.Client
	logger *slog.Logger
}

// New returns a new client. If httpClient is nil, a client with the default
// transport and no timeout is used, so requests are only bounded by the
// context passed to Fetch.
func New(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		Client: httpClient,
		logger: logger.With("component", "web-client"),
	}
}
