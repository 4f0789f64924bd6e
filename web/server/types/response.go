package types

import "net/http"

// Response defines the interface for HTTP response wrappers.
type Response interface {
	GetStatusCode() int
	SetStatusCode(int)
	GetError() error
	SetError(error)
	GetHeader() http.Header
	SetHeader(http.Header)
}

// TextEncoder is implemented by responses that render their body as plain
// text.
type TextEncoder interface {
	EncodeText() string
}

// BaseResponse provides a base implementation for HTTP responses.
type BaseResponse struct {
	StatusCode int
	Error      error
	header     http.Header
}

var _ Response = (*BaseResponse)(nil)

// NewBaseResponse returns a new response with the specified status code and
// optional error.
func NewBaseResponse(statusCode int, err error) BaseResponse {
	return BaseResponse{StatusCode: statusCode, Error: err}
}

// GetStatusCode returns the HTTP status code for the response.
func (r *BaseResponse) GetStatusCode() int {
	if r.StatusCode == 0 {
		return http.StatusOK
	}
	return r.StatusCode
}

// SetStatusCode sets the HTTP status code for the response.
func (r *BaseResponse) SetStatusCode(code int) {
	r.StatusCode = code
}

// GetError returns the error of the response, if any.
func (r *BaseResponse) GetError() error {
	return r.Error
}

// SetError sets the error of the response.
func (r *BaseResponse) SetError(err error) {
	r.Error = err
}

// GetHeader returns the response headers.
func (r *BaseResponse) GetHeader() http.Header {
	return r.header
}

// SetHeader sets the response headers. These are the headers of the
// underlying http.ResponseWriter, so changes are written with the response.
func (r *BaseResponse) SetHeader(h http.Header) {
	r.header = h
}
