package types

// Error is an HTTP error with a status code. Its message is written as the
// response body.
type Error struct {
	StatusCode int
	Message    string
}

// Error returns the error message string.
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a new Error with the specified status code and message.
func NewError(statusCode int, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
	}
}
