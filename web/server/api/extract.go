package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Pigges/json-extractor/extract"
	"github.com/Pigges/json-extractor/web/client"
	"github.com/Pigges/json-extractor/web/server/types"
)

// Extract fetches the JSON document at the requested URL, evaluates the
// requested JSONPath expression against it, and responds with the matched
// values as plain text.
func (h *Handler) Extract(ctx context.Context, req *types.ExtractRequest) (*types.ExtractResponse, error) {
	doc, err := h.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		var uerr *client.UpstreamError
		if errors.As(err, &uerr) {
			return nil, types.NewError(http.StatusBadGateway, uerr.Error())
		}
		return nil, err
	}

	body, err := extract.Extract(doc, req.Path)
	if err != nil {
		if errors.Is(err, extract.ErrNoMatch) {
			return nil, types.NewError(http.StatusNotFound, types.MsgNoResults)
		}
		return nil, err
	}

	h.logger.Debug("extracted values", "url", req.URL, "path", req.Path, "bytes", len(body))

	return types.NewExtractResponse(body), nil
}
