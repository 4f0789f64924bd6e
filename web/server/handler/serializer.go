package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pigges/json-extractor/web/server/types"
)

// Serializer is the interface for deserializing the raw request data into
// the typed request value, and for serializing the typed response value into
// the raw response data.
type Serializer interface {
	Deserialize(ctx context.Context, req types.Request) (context.Context, error)
	Serialize(ctx context.Context, resp types.Response) (context.Context, error)
}

// QueryTextSerializer reads requests from URL query parameters, and writes
// responses as plain text.
type QueryTextSerializer struct{}

var _ Serializer = (*QueryTextSerializer)(nil)

// QueryText returns a new query parameter and plain text serializer.
func QueryText() QueryTextSerializer {
	return QueryTextSerializer{}
}

// Deserialize decodes the URL query parameters into the request object, if it
// implements types.QueryDecoder.
func (QueryTextSerializer) Deserialize(ctx context.Context, req types.Request) (context.Context, error) {
	httpReq := req.GetHTTPRequest()
	if httpReq == nil || httpReq.URL == nil {
		return ctx, errors.New("empty request")
	}

	dec, ok := req.(types.QueryDecoder)
	if !ok {
		return ctx, nil
	}

	if err := dec.DecodeQuery(httpReq.URL.Query()); err != nil {
		return ctx, fmt.Errorf("failed decoding query parameters: %w", err)
	}

	return ctx, nil
}

// Serialize renders the response as plain text and stores it in the context
// for writing. Error responses are rendered from their error message when
// written, so they're skipped here.
func (QueryTextSerializer) Serialize(ctx context.Context, resp types.Response) (context.Context, error) {
	resp.GetHeader().Set("Content-Type", contentTypeText)

	if resp.GetError() != nil {
		return ctx, nil
	}

	enc, ok := resp.(types.TextEncoder)
	if !ok {
		return ctx, fmt.Errorf("response type %T can't be encoded as text", resp)
	}

	return setResponseData(ctx, []byte(enc.EncodeText())), nil
}
