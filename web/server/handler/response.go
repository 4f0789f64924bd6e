package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Pigges/json-extractor/web/server/types"
)

const contentTypeText = "text/plain; charset=utf-8"

func writeResponse(ctx context.Context, w http.ResponseWriter, resp types.Response) error {
	data := getResponseData(ctx)

	// Error responses carry their message as the body.
	var terr *types.Error
	if errors.As(resp.GetError(), &terr) {
		data = []byte(terr.Message)
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", contentTypeText)
	}

	w.WriteHeader(resp.GetStatusCode())
	_, err := w.Write(data)

	return err //nolint:wrapcheck // Wrapped by caller.
}
