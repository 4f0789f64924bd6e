package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/Pigges/json-extractor/web/server/middleware"
	"github.com/Pigges/json-extractor/web/server/types"
)

// Handle creates an HTTP handler function that processes requests through a
// configurable pipeline. It supports generic request/response types and handles
// authentication, request/response serialization, validation and error
// handling automatically.
//
// Each stage either succeeds or stops the pipeline with an error, which is the
// single place where failures are turned into responses. Errors of type
// *types.Error keep their status code and message. Any other error, including
// a recovered panic, becomes a 500 response with the error message.
//
// It relies on reflection to create the request and response values, and on
// passing values between components using the request context.
//
//nolint:gocognit // The complexity is a bit high, but refactoring this would hurt legibility.
func Handle[Req types.Request, Resp types.Response](
	handlerFn func(context.Context, Req) (Resp, error),
	p *Pipeline,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			ctx  = r.Context()
			req  = createInstance[Req]()
			resp = createInstance[Resp]()
			err  error
		)

		req.SetHTTPRequest(r)

		handleErr := errorHandler(ctx, resp, p.logger)

		// Response handling is deferred, since it should happen in both success and
		// error scenarios.
		defer func() {
			if rec := recover(); rec != nil {
				handleErr(panicError(rec))
			}

			// Allow response handlers to modify headers.
			resp.SetHeader(w.Header())

			// 5. Response serialization (optional)
			if p.serializer != nil {
				var sctx context.Context
				if sctx, err = p.serializer.Serialize(ctx, resp); !handleErr(err) {
					ctx = sctx
				}
			}

			// 6. Write the response
			if err = writeResponse(ctx, w, resp); err != nil {
				p.logger.Error("failed writing response", "error", err.Error())
			}
		}()

		// 1. Authentication (optional)
		if p.auth != nil {
			if ctx, err = p.auth(ctx, req); handleErr(err) {
				return
			}
		}

		// 2. Request deserialization (optional)
		if p.serializer != nil {
			if ctx, err = p.serializer.Deserialize(ctx, req); handleErr(err) {
				return
			}
		}

		// 3. Request validation (optional)
		if reqV, ok := any(req).(interface{ Validate() error }); ok {
			if err = reqV.Validate(); handleErr(err) {
				return
			}
		}

		// 4. Run the handler
		handlerResp, handlerErr := handlerFn(ctx, req)
		if !isNilResponse(handlerResp) {
			resp = handlerResp
			handleErr = errorHandler(ctx, resp, p.logger)
		}
		handleErr(handlerErr)
	}
}

// createInstance returns a new instance of type T.
//
//nolint:ireturn,nolintlint // Required for generic functionality.
func createInstance[T any]() T {
	var zero T
	tType := reflect.TypeOf(zero)

	if tType == nil {
		panic("cannot create instance of nil interface type")
	}

	switch tType.Kind() {
	case reflect.Ptr:
		// Create new instance of the underlying type
		return reflect.New(tType.Elem()).Interface().(T) //nolint:errcheck,forcetypeassert // It's fine.
	case reflect.Interface:
		panic("cannot create instance of interface type - need concrete type")
	default:
		// For value types, return zero value directly
		return zero
	}
}

func isNilResponse(resp types.Response) bool {
	if resp == nil {
		return true
	}
	v := reflect.ValueOf(resp)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func errorHandler[Resp types.Response](ctx context.Context, resp Resp, logger *slog.Logger) func(error) bool {
	return func(err error) bool {
		if err == nil {
			return false
		}

		// Ensure that the response has a valid HTTP error and status code.
		var (
			terr       *types.Error
			statusCode = http.StatusInternalServerError
		)
		switch {
		case !errors.As(err, &terr) || terr == nil:
			terr = types.NewError(statusCode, fmt.Sprintf(types.MsgUnclassifiedFmt, err.Error()))
		case terr.StatusCode == 0:
			terr.StatusCode = statusCode
		default:
			statusCode = terr.StatusCode
		}

		logFn := logger.Warn
		if statusCode >= http.StatusInternalServerError {
			logFn = logger.Error
		}
		logFn("request failed",
			"status_code", statusCode, "error", terr.Message,
			"request_id", middleware.RequestIDFromContext(ctx))

		resp.SetStatusCode(statusCode)
		resp.SetError(terr)
		return true
	}
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}
