package types

import (
	"net/http"
	"net/url"
)

// Fixed response messages of the extract endpoint.
const (
	MsgUnauthorized    = "Unauthorized: invalid or missing key"
	MsgMissingParams   = "Missing required parameters: url and path"
	MsgNoResults       = "No results found for the given JSONPath"
	MsgUnclassifiedFmt = "Error: %s"
)

// ExtractRequest is the request to fetch a JSON document and extract values
// from it. The shared key is read by the authenticator before the request is
// decoded, so it isn't part of this type.
type ExtractRequest struct {
	BaseRequest
	URL  string
	Path string
}

var _ QueryDecoder = (*ExtractRequest)(nil)

// DecodeQuery reads the request fields from the URL query parameters.
func (r *ExtractRequest) DecodeQuery(query url.Values) error {
	r.URL, _ = QueryValue(query, "url")
	r.Path, _ = QueryValue(query, "path")
	return nil
}

// Validate checks that the request is valid and ready for processing.
// Returns an error if validation fails.
func (r *ExtractRequest) Validate() error {
	if r.URL == "" || r.Path == "" {
		return NewError(http.StatusBadRequest, MsgMissingParams)
	}

	return nil
}

// ExtractResponse is the formatted result of an extraction.
type ExtractResponse struct {
	BaseResponse
	Body string
}

var _ TextEncoder = (*ExtractResponse)(nil)

// NewExtractResponse creates a new ExtractResponse with HTTP 200 status.
func NewExtractResponse(body string) *ExtractResponse {
	return &ExtractResponse{
		BaseResponse: NewBaseResponse(http.StatusOK, nil),
		Body:         body,
	}
}

// EncodeText returns the response body.
func (r *ExtractResponse) EncodeText() string {
	return r.Body
}
