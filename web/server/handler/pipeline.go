package handler

import "log/slog"

// Pipeline defines the processing stages for HTTP requests and responses.
// It provides a fluent interface for configuring authentication and
// serialization.
type Pipeline struct {
	auth       Authenticator
	serializer Serializer
	logger     *slog.Logger
}

// NewPipeline creates a new empty pipeline for configuring request/response
// processing.
func NewPipeline() *Pipeline {
	return &Pipeline{logger: slog.Default()}
}

// Auth sets the authenticator for this pipeline.
func (p *Pipeline) Auth(auth Authenticator) *Pipeline {
	p.auth = auth
	return p
}

// Serialize sets the request and response serializer for this pipeline.
func (p *Pipeline) Serialize(s Serializer) *Pipeline {
	p.serializer = s
	return p
}

// Logger sets the logger used to report failed requests.
func (p *Pipeline) Logger(logger *slog.Logger) *Pipeline {
	p.logger = logger
	return p
}
