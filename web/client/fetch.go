package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Pigges/json-extractor/extract"
)

// UpstreamError is returned when the remote endpoint responds with a
// non-success status code.
type UpstreamError struct {
	StatusCode int
	StatusText string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Failed to fetch URL: %d %s", e.StatusCode, e.StatusText)
}

// Fetch performs a single GET request to url and decodes the response body as
// JSON with extract.Parse. A non-2xx response returns an *UpstreamError, and an
// empty body is a parse error. The request is aborted
// when ctx is done.
func (c *Client) Fetch(ctx context.Context, url string) (doc any, rerr error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		//nolint:wrapcheck // The error already includes the method and URL.
		return nil, err
	}
	defer func() {
		if err = resp.Body.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("failed closing response body: %w", err)
		}
	}()

	c.logger.Debug("fetched document", "url", url, "status", resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response body: %w", err)
	}

	doc, err = extract.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed parsing response body as JSON: %w", err)
	}

	return doc, nil
}

// statusText returns the reason phrase sent by the server, falling back to the
// standard text for the status code.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
