package types

import (
	"net/http"
	"net/url"
)

// Request defines the interface for HTTP request wrappers.
type Request interface {
	SetHTTPRequest(*http.Request)
	GetHTTPRequest() *http.Request
}

// QueryDecoder is implemented by requests that read their fields from the URL
// query parameters.
type QueryDecoder interface {
	DecodeQuery(url.Values) error
}

// BaseRequest provides a base implementation for HTTP requests.
type BaseRequest struct {
	*http.Request
}

var _ Request = (*BaseRequest)(nil)

// GetHTTPRequest returns the underlying HTTP request.
func (r *BaseRequest) GetHTTPRequest() *http.Request {
	return r.Request
}

// SetHTTPRequest sets the underlying HTTP request.
func (r *BaseRequest) SetHTTPRequest(req *http.Request) {
	r.Request = req
}

// QueryValue returns the value of the query parameter name, and whether it was
// present at all. If the parameter is repeated, the last value wins.
func QueryValue(query url.Values, name string) (string, bool) {
	vals, ok := query[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}
