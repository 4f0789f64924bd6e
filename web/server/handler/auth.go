package handler

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/Pigges/json-extractor/web/server/types"
)

// Authenticator validates a request and returns an updated context or an error.
type Authenticator func(context.Context, types.Request) (context.Context, error)

// SharedKeyAuth creates an authenticator that requires the "key" query
// parameter to be exactly equal to secret. A missing key and a wrong key fail
// in the same way.
func SharedKeyAuth(secret string) Authenticator {
	return func(ctx context.Context, req types.Request) (context.Context, error) {
		key, ok := types.QueryValue(req.GetHTTPRequest().URL.Query(), "key")
		if !ok || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			return ctx, types.NewError(http.StatusUnauthorized, types.MsgUnauthorized)
		}

		return ctx, nil
	}
}
