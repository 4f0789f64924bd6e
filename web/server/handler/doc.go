// Package handler assembles HTTP handlers from small pipeline stages:
// authentication, query decoding, validation and plain text response
// encoding. Endpoint handlers only implement their business logic, and return
// typed errors that the pipeline turns into status codes and response bodies.
package handler
